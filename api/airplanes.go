package api

import (
	"net/http"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/avdku/airport-service/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AirplaneHandler struct {
	service catalog.FleetUseCase
}

type airplaneResponse struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	Rows       int                  `json:"rows"`
	SeatsInRow int                  `json:"seats_in_row"`
	Capacity   int                  `json:"capacity"`
	Type       airplaneTypeResponse `json:"airplane_type"`
}

func NewAirplaneHandler(service catalog.FleetUseCase) *AirplaneHandler {
	return &AirplaneHandler{service: service}
}

func (h *AirplaneHandler) Register(router *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	router.GET("/airplanes", h.list)
	router.GET("/airplanes/:id", h.get)
	router.POST("/airplanes", staffOnly, h.create)
}

func (h *AirplaneHandler) list(c *gin.Context) {
	airplanes, err := h.service.ListAirplanes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]airplaneResponse, 0, len(airplanes))
	for _, a := range airplanes {
		resp = append(resp, toAirplaneResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AirplaneHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airplane, err := h.service.GetAirplane(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirplaneResponse(*airplane))
}

func (h *AirplaneHandler) create(c *gin.Context) {
	var input catalog.AirplaneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "error", err.Error())
		return
	}
	if err := domain.ValidateAirplaneLayout(input.Rows, input.SeatsInRow); err != nil {
		respondError(c, err)
		return
	}
	airplane, err := h.service.CreateAirplane(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirplaneResponse(*airplane))
}

func toAirplaneResponse(a domain.Airplane) airplaneResponse {
	resp := airplaneResponse{
		ID:         a.ID,
		Name:       a.Name,
		Rows:       a.Rows,
		SeatsInRow: a.SeatsInRow,
		Capacity:   a.Capacity(),
	}
	if a.Type != nil {
		resp.Type = toAirplaneTypeResponse(*a.Type)
	}
	return resp
}

package api

import (
	"net/http"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/avdku/airport-service/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service catalog.AirportUseCase
}

type airportResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ClosestCity string `json:"closest_city"`
}

func NewAirportHandler(service catalog.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	router.GET("/airports", h.list)
	router.GET("/airports/:id", h.get)
	router.POST("/airports", staffOnly, h.create)
}

func (h *AirportHandler) list(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]airportResponse, 0, len(airports))
	for _, a := range airports {
		resp = append(resp, toAirportResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AirportHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airport, err := h.service.GetAirport(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirportResponse(*airport))
}

func (h *AirportHandler) create(c *gin.Context) {
	var input catalog.AirportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "error", err.Error())
		return
	}
	airport, err := h.service.CreateAirport(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirportResponse(*airport))
}

func toAirportResponse(a domain.Airport) airportResponse {
	return airportResponse{ID: a.ID, Name: a.Name, ClosestCity: a.ClosestCity}
}

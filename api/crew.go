package api

import (
	"net/http"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/avdku/airport-service/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CrewHandler struct {
	service catalog.CrewUseCase
}

type crewResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

func NewCrewHandler(service catalog.CrewUseCase) *CrewHandler {
	return &CrewHandler{service: service}
}

func (h *CrewHandler) Register(router *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	router.GET("/crew", h.list)
	router.GET("/crew/:id", h.get)
	router.POST("/crew", staffOnly, h.create)
}

func (h *CrewHandler) list(c *gin.Context) {
	members, err := h.service.ListCrew(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]crewResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, toCrewResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CrewHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	member, err := h.service.GetCrew(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCrewResponse(*member))
}

func (h *CrewHandler) create(c *gin.Context) {
	var input catalog.CrewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "error", err.Error())
		return
	}
	member, err := h.service.CreateCrew(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCrewResponse(*member))
}

func toCrewResponse(m domain.Crew) crewResponse {
	return crewResponse{ID: m.ID, FirstName: m.FirstName, LastName: m.LastName, FullName: m.FullName()}
}

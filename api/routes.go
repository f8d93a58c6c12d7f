package api

import (
	"net/http"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/avdku/airport-service/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service catalog.RouteUseCase
}

type routeResponse struct {
	ID          int64           `json:"id"`
	Source      airportResponse `json:"source"`
	Destination airportResponse `json:"destination"`
	Distance    int             `json:"distance"`
}

func NewRouteHandler(service catalog.RouteUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	router.GET("/routes", h.list)
	router.GET("/routes/:id", h.get)
	router.POST("/routes", staffOnly, h.create)
}

func (h *RouteHandler) list(c *gin.Context) {
	routes, err := h.service.ListRoutes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]routeResponse, 0, len(routes))
	for _, r := range routes {
		resp = append(resp, toRouteResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RouteHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	route, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRouteResponse(*route))
}

func (h *RouteHandler) create(c *gin.Context) {
	var input catalog.RouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "error", err.Error())
		return
	}
	// Same rule the service enforces; rejecting here keeps bad requests
	// from reaching storage at all.
	if err := domain.ValidateRouteAirports(input.SourceID, input.DestinationID); err != nil {
		respondError(c, err)
		return
	}
	route, err := h.service.CreateRoute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRouteResponse(*route))
}

func toRouteResponse(r domain.Route) routeResponse {
	resp := routeResponse{ID: r.ID, Distance: r.Distance}
	if r.Source != nil {
		resp.Source = toAirportResponse(*r.Source)
	}
	if r.Destination != nil {
		resp.Destination = toAirportResponse(*r.Destination)
	}
	return resp
}

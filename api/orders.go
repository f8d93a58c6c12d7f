package api

import (
	"net/http"
	"time"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/avdku/airport-service/internal/service/orders"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service orders.OrderUseCase
}

type orderResponse struct {
	ID        int64            `json:"id"`
	CreatedAt string           `json:"created_at"`
	Tickets   []ticketResponse `json:"tickets"`
	User      string           `json:"user,omitempty"`
}

type ticketResponse struct {
	ID     int64  `json:"id"`
	Row    int    `json:"row"`
	Seat   int    `json:"seat"`
	Flight string `json:"flight"`
}

type createdTicketResponse struct {
	ID     int64 `json:"id"`
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
	Flight int64 `json:"flight"`
}

type createdOrderResponse struct {
	ID        int64                   `json:"id"`
	CreatedAt string                  `json:"created_at"`
	Tickets   []createdTicketResponse `json:"tickets"`
}

func NewOrderHandler(service orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Register(router *gin.RouterGroup, authOnly gin.HandlerFunc) {
	router.GET("/orders", authOnly, h.list)
	router.GET("/orders/:id", authOnly, h.get)
	router.POST("/orders", authOnly, h.create)
}

func (h *OrderHandler) list(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	result, err := h.service.List(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]orderResponse, 0, len(result))
	for _, o := range result {
		resp = append(resp, toOrderResponse(o, false))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) get(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.service.Get(c.Request.Context(), principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, principal.IsStaff))
}

func (h *OrderHandler) create(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var input orders.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "error", err.Error())
		return
	}
	order, err := h.service.Create(c.Request.Context(), principal, input)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := createdOrderResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}
	for _, t := range order.Tickets {
		resp.Tickets = append(resp.Tickets, createdTicketResponse{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: t.FlightID})
	}
	c.JSON(http.StatusCreated, resp)
}

func toOrderResponse(o domain.Order, includeUser bool) orderResponse {
	resp := orderResponse{
		ID:        o.ID,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		Tickets:   make([]ticketResponse, 0, len(o.Tickets)),
	}
	if includeUser {
		resp.User = o.UserEmail
	}
	for _, t := range o.Tickets {
		resp.Tickets = append(resp.Tickets, ticketResponse{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: t.Flight})
	}
	return resp
}

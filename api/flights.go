package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/avdku/airport-service/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightListResponse struct {
	ID                int64    `json:"id"`
	Route             string   `json:"route"`
	AirplaneType      string   `json:"airplane_type"`
	AirplaneTypeImage string   `json:"airplane_type_image,omitempty"`
	AirplaneCapacity  int      `json:"airplane_capacity"`
	AvailableSeats    int      `json:"available_seats"`
	DepartureTime     string   `json:"departure_time"`
	ArrivalTime       string   `json:"arrival_time"`
	Crew              []string `json:"crew"`
}

type flightDetailResponse struct {
	ID             int64            `json:"id"`
	Route          string           `json:"route"`
	Airplane       airplaneResponse `json:"airplane"`
	DepartureTime  string           `json:"departure_time"`
	ArrivalTime    string           `json:"arrival_time"`
	Crew           []string         `json:"crew"`
	AvailableSeats int              `json:"available_seats"`
	TakenPlaces    []seatResponse   `json:"taken_places"`
}

type seatResponse struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	router.GET("/flights", h.list)
	router.GET("/flights/:id", h.get)
	router.POST("/flights", staffOnly, h.create)
	router.PUT("/flights/:id", staffOnly, h.update)
	router.DELETE("/flights/:id", staffOnly, h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	filter, ok := parseFlightFilter(c)
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]flightListResponse, 0, len(items))
	for _, item := range items {
		entry := flightListResponse{
			ID:               item.ID,
			Route:            item.Route,
			AirplaneType:     item.AirplaneType,
			AirplaneCapacity: item.AirplaneCapacity,
			AvailableSeats:   item.AvailableSeats,
			DepartureTime:    item.DepartureTime.Format(time.RFC3339),
			ArrivalTime:      item.ArrivalTime.Format(time.RFC3339),
			Crew:             item.Crew,
		}
		if item.AirplaneTypeImage != "" {
			entry.AirplaneTypeImage = mediaURL(item.AirplaneTypeImage)
		}
		resp = append(resp, entry)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detail, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightDetailResponse(detail))
}

func (h *FlightHandler) create(c *gin.Context) {
	var input flights.FlightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "error", err.Error())
		return
	}
	if err := domain.ValidateSchedule(input.DepartureTime, input.ArrivalTime); err != nil {
		respondError(c, err)
		return
	}
	detail, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlightDetailResponse(detail))
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input flights.FlightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "error", err.Error())
		return
	}
	detail, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightDetailResponse(detail))
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseFlightFilter reads the optional sources/destinations/date query
// parameters. City lists are comma separated, date is YYYY-MM-DD.
func parseFlightFilter(c *gin.Context) (domain.FlightFilter, bool) {
	var filter domain.FlightFilter
	if raw := c.Query("sources"); raw != "" {
		filter.SourceCities = splitCities(raw)
	}
	if raw := c.Query("destinations"); raw != "" {
		filter.DestinationCities = splitCities(raw)
	}
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondBadRequest(c, "date", "date must be in YYYY-MM-DD format")
			return filter, false
		}
		filter.DepartureDate = &parsed
	}
	return filter, true
}

func splitCities(raw string) []string {
	parts := strings.Split(raw, ",")
	cities := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cities = append(cities, trimmed)
		}
	}
	return cities
}

func toFlightDetailResponse(d *domain.FlightDetail) flightDetailResponse {
	taken := make([]seatResponse, 0, len(d.SoldTickets))
	for _, s := range d.SoldTickets {
		taken = append(taken, seatResponse{Row: s.Row, Seat: s.Seat})
	}
	return flightDetailResponse{
		ID:             d.ID,
		Route:          d.Route,
		Airplane:       toAirplaneResponse(d.Airplane),
		DepartureTime:  d.DepartureTime.Format(time.RFC3339),
		ArrivalTime:    d.ArrivalTime.Format(time.RFC3339),
		Crew:           d.Crew,
		AvailableSeats: d.AvailableSeats,
		TakenPlaces:    taken,
	}
}

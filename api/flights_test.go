package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/avdku/airport-service/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context, filter domain.FlightFilter) ([]domain.FlightListItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.FlightListItem), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDetail), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, input flights.FlightInput) (*domain.FlightDetail, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDetail), args.Error(1)
}

func (m *MockFlightUseCase) Update(ctx context.Context, id int64, input flights.FlightInput) (*domain.FlightDetail, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDetail), args.Error(1)
}

func (m *MockFlightUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights", nil)

	items := []domain.FlightListItem{
		{
			ID:               1,
			Route:            "Boryspil Intl (Kyiv city) -> Danylo Halytskyi (Lviv city)",
			AirplaneType:     "Boeing 737",
			AirplaneCapacity: 120,
			AvailableSeats:   118,
			DepartureTime:    time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
			ArrivalTime:      time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
			Crew:             []string{"Ivan Petrenko"},
		},
	}

	mockService.On("List", c.Request.Context(), domain.FlightFilter{}).Return(items, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 1)
	assert.Equal(t, float64(118), body[0]["available_seats"])
	assert.Equal(t, "Boeing 737", body[0]["airplane_type"])

	mockService.AssertExpectations(t)
}

func TestFlightHandler_list_WithFilters(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights?sources=Kyiv,Lviv&destinations=Odesa&date=2026-09-01", nil)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	expected := domain.FlightFilter{
		SourceCities:      []string{"Kyiv", "Lviv"},
		DestinationCities: []string{"Odesa"},
		DepartureDate:     &date,
	}

	mockService.On("List", c.Request.Context(), expected).Return([]domain.FlightListItem{}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_list_BadDate(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights?date=01-09-2026", nil)

	handler.list(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "date must be in YYYY-MM-DD format", body["date"])

	mockService.AssertNotCalled(t, "List")
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/flights/1", nil)

	detail := &domain.FlightDetail{
		ID:             1,
		Route:          "Boryspil Intl (Kyiv city) -> Danylo Halytskyi (Lviv city)",
		Airplane:       domain.Airplane{ID: 2, Name: "AN-10", Rows: 20, SeatsInRow: 6},
		DepartureTime:  time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		ArrivalTime:    time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
		AvailableSeats: 118,
		SoldTickets:    []domain.SeatRef{{Row: 1, Seat: 1}, {Row: 1, Seat: 2}},
	}

	mockService.On("GetByID", c.Request.Context(), int64(1)).Return(detail, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	taken := body["taken_places"].([]interface{})
	assert.Len(t, taken, 2)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	c.Request = httptest.NewRequest("GET", "/flights/99", nil)

	mockService.On("GetByID", c.Request.Context(), int64(99)).Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlightHandler_create_BadSchedule(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/flights", jsonBody(`{
		"route": 1,
		"airplane": 2,
		"departure_time": "2026-09-01T12:00:00Z",
		"arrival_time": "2026-09-01T10:00:00Z"
	}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "departure time must be earlier than arrival time", body["departure_time"])

	mockService.AssertNotCalled(t, "Create")
}

package flights

import (
	"context"
	"testing"
	"time"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context, filter domain.FlightFilter) ([]domain.FlightListItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.FlightListItem), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDetail), args.Error(1)
}

func (m *MockFlightRepository) GetAirplaneForFlight(ctx context.Context, flightID int64) (*domain.Airplane, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context, key string) ([]domain.FlightListItem, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightListItem), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, key string, flights []domain.FlightListItem) error {
	args := m.Called(ctx, key, flights)
	return args.Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	filter := domain.FlightFilter{SourceCities: []string{"Kyiv"}}
	cached := []domain.FlightListItem{{ID: 1, Route: "Kyiv Intl (Kyiv city) - Lviv Intl (Lviv city)"}}

	mockCache.On("GetFlights", ctx, filter.CacheKey()).Return(cached, nil).Once()

	result, err := service.List(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, cached, result)
	mockRepo.AssertNotCalled(t, "List")
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	filter := domain.FlightFilter{}
	items := []domain.FlightListItem{{ID: 1, AvailableSeats: 120}}

	mockCache.On("GetFlights", ctx, filter.CacheKey()).Return(nil, nil).Once()
	mockRepo.On("List", ctx, filter).Return(items, nil).Once()
	mockCache.On("SetFlights", ctx, filter.CacheKey(), items).Return(nil).Once()

	result, err := service.List(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, items, result)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Create_RejectsBadSchedule(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	departure := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	input := FlightInput{
		RouteID:       1,
		AirplaneID:    1,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(-time.Hour),
	}

	detail, err := service.Create(context.Background(), input)

	assert.Nil(t, detail)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "departure time must be earlier than arrival time")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestFlightService_Create_InvalidatesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	departure := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	input := FlightInput{
		RouteID:       1,
		AirplaneID:    2,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
		CrewIDs:       []int64{1, 2},
	}

	detail := &domain.FlightDetail{ID: 10, AvailableSeats: 120}
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Flight).ID = 10
	}).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()
	mockRepo.On("GetByID", ctx, int64(10)).Return(detail, nil).Once()

	result, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, detail, result)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Delete_InvalidatesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(3)).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()

	err := service.Delete(ctx, 3)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

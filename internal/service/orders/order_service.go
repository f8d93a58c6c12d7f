package orders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/avdku/airport-service/internal/kafka"
	"github.com/avdku/airport-service/internal/repository"
)

type OrderUseCase interface {
	// Create books every requested seat atomically for the caller; either
	// the whole order persists or nothing does.
	Create(ctx context.Context, principal domain.Principal, input CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context, principal domain.Principal) ([]domain.Order, error)
	// Get scopes by ownership: non-staff callers only see their own orders,
	// staff see any order including the owning user.
	Get(ctx context.Context, principal domain.Principal, id int64) (*domain.Order, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type TicketInput struct {
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
	FlightID int64 `json:"flight"`
}

type CreateOrderInput struct {
	Tickets []TicketInput `json:"tickets"`
}

type OrderService struct {
	orders             repository.OrderRepository
	flights            repository.FlightRepository
	cache              Cache
	producer           Producer
	ordersTopic        string
	notificationsTopic string
}

type OrderServiceOption func(*OrderService)

func WithNotificationsTopic(topic string) OrderServiceOption {
	return func(s *OrderService) {
		s.notificationsTopic = topic
	}
}

func NewOrderService(
	orders repository.OrderRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	ordersTopic string,
	opts ...OrderServiceOption,
) *OrderService {
	service := &OrderService{
		orders:      orders,
		flights:     flights,
		cache:       cache,
		producer:    producer,
		ordersTopic: ordersTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *OrderService) Create(ctx context.Context, principal domain.Principal, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Tickets) == 0 {
		return nil, domain.NewValidationError("tickets", "at least one ticket is required")
	}

	// Seat coordinates are checked against the airplane grid before the
	// insert; the (flight, row, seat) constraint still backs this up at
	// commit time.
	airplanes := make(map[int64]*domain.Airplane)
	for _, t := range input.Tickets {
		airplane, ok := airplanes[t.FlightID]
		if !ok {
			var err error
			airplane, err = s.flights.GetAirplaneForFlight(ctx, t.FlightID)
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("flight", fmt.Sprintf("flight %d does not exist", t.FlightID))
			}
			if err != nil {
				return nil, err
			}
			airplanes[t.FlightID] = airplane
		}
		if err := domain.ValidateSeat(t.Row, t.Seat, *airplane); err != nil {
			return nil, err
		}
	}

	order := &domain.Order{UserID: principal.UserID}
	for _, t := range input.Tickets {
		order.Tickets = append(order.Tickets, domain.Ticket{Row: t.Row, Seat: t.Seat, FlightID: t.FlightID})
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	s.publish(ctx, "order_created", principal.Email, order)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, principal domain.Principal) ([]domain.Order, error) {
	return s.orders.ListForUser(ctx, principal.UserID)
}

func (s *OrderService) Get(ctx context.Context, principal domain.Principal, id int64) (*domain.Order, error) {
	if principal.IsStaff {
		return s.orders.GetByID(ctx, id)
	}
	return s.orders.GetByIDForUser(ctx, id, principal.UserID)
}

func (s *OrderService) publish(ctx context.Context, eventType, userEmail string, order *domain.Order) {
	if s.producer == nil || s.ordersTopic == "" {
		return
	}
	event := kafka.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		UserEmail:   userEmail,
		TicketCount: len(order.Tickets),
		CreatedAt:   order.CreatedAt,
	}
	key := fmt.Sprintf("order-%d", order.ID)
	if err := s.producer.Publish(ctx, s.ordersTopic, key, event); err != nil {
		log.Printf("publish %s event for order %d: %v", eventType, order.ID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			log.Printf("publish %s notification for order %d: %v", eventType, order.ID, err)
		}
	}
}

var _ OrderUseCase = (*OrderService)(nil)

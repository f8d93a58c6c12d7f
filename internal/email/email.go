package email

import (
	"context"
	"log"

	"github.com/avdku/airport-service/internal/kafka"
)

// Sender delivers order notifications. Delivery is a log line for now; the
// interface consumed by the worker stays the same when a real SMTP backend
// lands.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	log.Printf("send email to %s about %s for order %d (%d tickets)",
		event.UserEmail, event.Type, event.OrderID, event.TicketCount)
	return nil
}

package domain

import (
	"fmt"
	"time"
)

type Order struct {
	ID        int64
	UserID    int64
	UserEmail string // populated on staff detail reads only
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID       int64
	Row      int
	Seat     int
	FlightID int64
	OrderID  int64
	Flight   string // route/time label, populated on reads
}

// ValidateSeat checks a (row, seat) coordinate against the airplane grid.
// Out-of-range values are rejected with the offending field named.
func ValidateSeat(row, seat int, airplane Airplane) error {
	if row < 1 || row > airplane.Rows {
		return NewValidationError("row", fmt.Sprintf("row number must be in available range: (1, rows): (1, %d)", airplane.Rows))
	}
	if seat < 1 || seat > airplane.SeatsInRow {
		return NewValidationError("seat", fmt.Sprintf("seat number must be in available range: (1, seats_in_row): (1, %d)", airplane.SeatsInRow))
	}
	return nil
}

// SeatConflictError builds the validation error surfaced when a ticket insert
// hits the (flight, row, seat) uniqueness constraint.
func SeatConflictError(flightID int64, row, seat int) *ValidationError {
	return NewValidationError(
		fmt.Sprintf("row=%d, seat=%d, flight=%d", row, seat, flightID),
		"ticket already sold, seats must be unique per flight",
	)
}

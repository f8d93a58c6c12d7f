package domain

import (
	"fmt"
	"strings"
	"time"
)

type Flight struct {
	ID            int64
	RouteID       int64
	AirplaneID    int64
	DepartureTime time.Time
	ArrivalTime   time.Time
	CrewIDs       []int64
}

// FlightListItem is the aggregated row returned by flight listings:
// available_seats is computed storage-side as capacity minus sold tickets.
type FlightListItem struct {
	ID                int64
	AirplaneType      string
	AirplaneTypeImage string
	AirplaneCapacity  int
	AvailableSeats    int
	Route             string
	DepartureTime     time.Time
	ArrivalTime       time.Time
	Crew              []string
}

type FlightDetail struct {
	ID             int64
	Airplane       Airplane
	Route          string
	DepartureTime  time.Time
	ArrivalTime    time.Time
	Crew           []string
	AvailableSeats int
	SoldTickets    []SeatRef
}

// SeatRef identifies an occupied (row, seat) coordinate on a flight.
type SeatRef struct {
	Row  int
	Seat int
}

// FlightFilter holds the optional, AND-combined flight list predicates.
// City slices are OR-matched against the route's source/destination city;
// DepartureDate matches the calendar day of departure only.
type FlightFilter struct {
	SourceCities      []string
	DestinationCities []string
	DepartureDate     *time.Time
}

func (f FlightFilter) IsZero() bool {
	return len(f.SourceCities) == 0 && len(f.DestinationCities) == 0 && f.DepartureDate == nil
}

// CacheKey is stable for equal filters and distinct across different ones.
func (f FlightFilter) CacheKey() string {
	var b strings.Builder
	b.WriteString("flights:src=")
	b.WriteString(strings.Join(f.SourceCities, ","))
	b.WriteString("|dst=")
	b.WriteString(strings.Join(f.DestinationCities, ","))
	b.WriteString("|date=")
	if f.DepartureDate != nil {
		b.WriteString(f.DepartureDate.Format("2006-01-02"))
	}
	return b.String()
}

// ValidateSchedule enforces that a flight departs strictly before it arrives.
// Applied both on request validation and before persistence.
func ValidateSchedule(departure, arrival time.Time) error {
	if !departure.Before(arrival) {
		return NewValidationError("departure_time", "departure time must be earlier than arrival time")
	}
	return nil
}

func (f Flight) String() string {
	return fmt.Sprintf("Flight %d (%s - %s)", f.ID, f.DepartureTime.Format(time.RFC3339), f.ArrivalTime.Format(time.RFC3339))
}

package domain

import "fmt"

type Airport struct {
	ID          int64
	Name        string
	ClosestCity string
}

// Label renders an airport the way it appears in route and flight listings.
func (a Airport) Label() string {
	return fmt.Sprintf("%s (%s city)", a.Name, a.ClosestCity)
}

type Route struct {
	ID            int64
	SourceID      int64
	DestinationID int64
	Distance      int
	Source        *Airport
	Destination   *Airport
}

func (r Route) Label() string {
	if r.Source == nil || r.Destination == nil {
		return ""
	}
	return r.Source.Label() + " -> " + r.Destination.Label()
}

// ValidateRouteAirports rejects self-referencing routes.
func ValidateRouteAirports(sourceID, destinationID int64) error {
	if sourceID == destinationID {
		return NewValidationError("destination", "source and destination airports must differ")
	}
	return nil
}

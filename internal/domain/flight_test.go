package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateSchedule(t *testing.T) {
	departure := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateSchedule(departure, departure.Add(time.Hour)))

	err := ValidateSchedule(departure, departure)
	assert.True(t, IsValidation(err))

	err = ValidateSchedule(departure, departure.Add(-time.Minute))
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "departure time must be earlier than arrival time")
}

func TestFlightFilter_CacheKey(t *testing.T) {
	assert.Equal(t, "flights:src=|dst=|date=", FlightFilter{}.CacheKey())

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	filter := FlightFilter{
		SourceCities:      []string{"Kyiv", "Lviv"},
		DestinationCities: []string{"Odesa"},
		DepartureDate:     &date,
	}
	assert.Equal(t, "flights:src=Kyiv,Lviv|dst=Odesa|date=2026-09-01", filter.CacheKey())

	other := FlightFilter{SourceCities: []string{"Kyiv"}}
	assert.NotEqual(t, filter.CacheKey(), other.CacheKey())
}

func TestAirportLabel(t *testing.T) {
	airport := Airport{Name: "Boryspil Intl", ClosestCity: "Kyiv"}
	assert.Equal(t, "Boryspil Intl (Kyiv city)", airport.Label())
}

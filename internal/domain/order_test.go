package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSeat(t *testing.T) {
	airplane := Airplane{Rows: 20, SeatsInRow: 6}

	testCases := []struct {
		name        string
		row         int
		seat        int
		expectedErr string
	}{
		{name: "Valid corner min", row: 1, seat: 1},
		{name: "Valid corner max", row: 20, seat: 6},
		{name: "Row zero", row: 0, seat: 1, expectedErr: "row number must be in available range: (1, rows): (1, 20)"},
		{name: "Row above range", row: 21, seat: 1, expectedErr: "row number must be in available range: (1, rows): (1, 20)"},
		{name: "Seat zero", row: 1, seat: 0, expectedErr: "seat number must be in available range: (1, seats_in_row): (1, 6)"},
		{name: "Seat above range", row: 1, seat: 7, expectedErr: "seat number must be in available range: (1, seats_in_row): (1, 6)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSeat(tc.row, tc.seat, airplane)
			if tc.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, IsValidation(err))
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestSeatConflictError(t *testing.T) {
	err := SeatConflictError(4, 3, 5)

	assert.Equal(t, "row=3, seat=5, flight=4", err.Field)
	assert.Contains(t, err.Message, "ticket already sold")
}

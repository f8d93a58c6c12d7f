package domain

type AirplaneType struct {
	ID    int64
	Name  string
	Image string // media-relative path, empty until uploaded
}

type Airplane struct {
	ID         int64
	Name       string
	Rows       int
	SeatsInRow int
	TypeID     int64
	Type       *AirplaneType
}

func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

// ValidateAirplaneLayout rejects airplanes with a non-positive seat grid.
func ValidateAirplaneLayout(rows, seatsInRow int) error {
	if rows < 1 {
		return NewValidationError("rows", "rows must be a positive number")
	}
	if seatsInRow < 1 {
		return NewValidationError("seats_in_row", "seats_in_row must be a positive number")
	}
	return nil
}

package domain

import (
	"errors"
	"time"
)

var ErrFlightNotFound = errors.New("flight not found")

type Airport struct {
	City string `json:"city"`
}

// Flight is a plain aggregate: a Canceled flight may still carry a
// departure time, nothing here checks fields against each other.
type Flight struct {
	ID            string       `json:"id,omitempty"`
	Airline       string       `json:"airline"`
	Destination   string       `json:"destination"`
	FlightNumber  string       `json:"flight_number"`
	DepartureTime *time.Time   `json:"departure_time,omitempty"`
	Terminal      *string      `json:"terminal,omitempty"`
	Status        FlightStatus `json:"status"`
}

// ShortTimeLayout renders hours and minutes only, e.g. "1:26 PM".
const ShortTimeLayout = "3:04 PM"

// ShortTime formats t as a time of day in its own location.
func ShortTime(t time.Time) string {
	return t.Format(ShortTimeLayout)
}

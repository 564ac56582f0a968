package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownStatus = errors.New("unknown flight status")

// FlightStatus is the closed set of states a departure can be in.
// The underlying value is the variant tag; use Label for display.
type FlightStatus string

const (
	FlightStatusEnRoute   FlightStatus = "EnRoute"
	FlightStatusScheduled FlightStatus = "Scheduled"
	FlightStatusCanceled  FlightStatus = "Canceled"
	FlightStatusDelayed   FlightStatus = "Delayed"
	FlightStatusBoarding  FlightStatus = "Boarding"
)

var flightStatusLabels = map[FlightStatus]string{
	FlightStatusEnRoute:   "En Route",
	FlightStatusScheduled: "Scheduled",
	FlightStatusCanceled:  "Canceled",
	FlightStatusDelayed:   "Delayed",
	FlightStatusBoarding:  "Boarding",
}

// FlightStatuses lists every variant in declaration order.
func FlightStatuses() []FlightStatus {
	return []FlightStatus{
		FlightStatusEnRoute,
		FlightStatusScheduled,
		FlightStatusCanceled,
		FlightStatusDelayed,
		FlightStatusBoarding,
	}
}

// Label returns the passenger-facing name of the status, e.g. "En Route".
func (s FlightStatus) Label() string {
	return flightStatusLabels[s]
}

func (s FlightStatus) Valid() bool {
	_, ok := flightStatusLabels[s]
	return ok
}

// ParseFlightStatus accepts either the tag ("EnRoute") or the label ("En Route").
func ParseFlightStatus(v string) (FlightStatus, error) {
	if s := FlightStatus(v); s.Valid() {
		return s, nil
	}
	for s, label := range flightStatusLabels {
		if label == v {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, v)
}

package domain

import (
	"fmt"
	"io"
)

const terminalTBD = "TBD"

type DepartureBoard struct {
	airport Airport
	flights []Flight
}

func NewDepartureBoard(airport Airport, flights ...Flight) *DepartureBoard {
	b := &DepartureBoard{airport: airport, flights: make([]Flight, 0, len(flights))}
	b.flights = append(b.flights, flights...)
	return b
}

func (b *DepartureBoard) Airport() Airport {
	return b.airport
}

// Flights returns the board's flights in the order they were appended.
func (b *DepartureBoard) Flights() []Flight {
	return b.flights
}

func (b *DepartureBoard) Append(flight Flight) {
	b.flights = append(b.flights, flight)
}

// Alerts builds one passenger message per flight, in board order.
func (b *DepartureBoard) Alerts() []string {
	alerts := make([]string, 0, len(b.flights))
	for _, f := range b.flights {
		alerts = append(alerts, AlertFor(f))
	}
	return alerts
}

// AlertPassengers writes every alert to w, one per line.
func (b *DepartureBoard) AlertPassengers(w io.Writer) {
	for _, msg := range b.Alerts() {
		fmt.Fprintln(w, msg)
	}
}

func AlertFor(f Flight) string {
	switch f.Status {
	case FlightStatusCanceled:
		return fmt.Sprintf("We're sorry your flight to %s was canceled, here is a $500 voucher", f.Destination)
	case FlightStatusDelayed:
		return fmt.Sprintf("We're sorry your flight to %s is delayed, We'll let you know a new time", f.Destination)
	case FlightStatusBoarding:
		return fmt.Sprintf("Your flight is boarding, please head to terminal: %s immediately. The doors are closing soon.", terminalOrTBD(f.Terminal))
	case FlightStatusEnRoute:
		return fmt.Sprintf("Your flight to %s is En Route", f.Destination)
	case FlightStatusScheduled:
		if f.DepartureTime != nil {
			return fmt.Sprintf("Your flight to %s is scheduled to depart at %s from terminal: %s",
				f.Destination, ShortTime(*f.DepartureTime), terminalOrTBD(f.Terminal))
		}
		// no time known yet; the sentence is left without one
		return fmt.Sprintf("Your flight to %s is scheduled to depart at from terminal: %s", f.Destination, terminalOrTBD(f.Terminal))
	}
	return fmt.Sprintf("Your flight to %s has status %s", f.Destination, f.Status)
}

func terminalOrTBD(terminal *string) string {
	if terminal == nil {
		return terminalTBD
	}
	return *terminal
}

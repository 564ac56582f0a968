// Package departures renders a departure board as text lines.
package departures

import (
	"fmt"
	"io"

	"github.com/Domenick1991/departures/internal/domain"
)

// PrintDepartures writes the raw fields of every flight. Missing values are
// rendered as "nil" and the status as its tag; meant for debugging only.
func PrintDepartures(w io.Writer, board *domain.DepartureBoard) {
	for _, f := range board.Flights() {
		departure := "nil"
		if f.DepartureTime != nil {
			departure = f.DepartureTime.String()
		}
		terminal := "nil"
		if f.Terminal != nil {
			terminal = fmt.Sprintf("%q", *f.Terminal)
		}
		fmt.Fprintf(w, "departure: %s terminal: %s  status: %s\n", departure, terminal, f.Status)
	}
}

// PrintDepartures2 writes one passenger-facing line per flight. Unknown
// departure time and terminal are left blank.
func PrintDepartures2(w io.Writer, board *domain.DepartureBoard) {
	for _, f := range board.Flights() {
		fmt.Fprintln(w, DepartureLine(f))
	}
}

func DepartureLine(f domain.Flight) string {
	var departure, terminal string
	if f.DepartureTime != nil {
		departure = domain.ShortTime(*f.DepartureTime)
	}
	if f.Terminal != nil {
		terminal = *f.Terminal
	}
	return fmt.Sprintf("Destination: %s Airline: %s Flight: %s Departure Time: %s Terminal: %s Status: %s",
		f.Destination, f.Airline, f.FlightNumber, departure, terminal, f.Status.Label())
}

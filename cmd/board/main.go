// Command board prints a sample departure board for Texas without any
// external services: departures, passenger alerts and two fare quotes.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Domenick1991/departures/internal/departures"
	"github.com/Domenick1991/departures/internal/domain"
	"github.com/Domenick1991/departures/internal/fare"
)

func main() {
	now := time.Now()
	terminal8, terminal13 := "8", "13"

	board := domain.NewDepartureBoard(domain.Airport{City: "Texas"})
	for _, f := range []domain.Flight{
		{Airline: "Delta", Destination: "New York", FlightNumber: "D228", DepartureTime: &now, Terminal: &terminal8, Status: domain.FlightStatusEnRoute},
		{Airline: "American Airlines", Destination: "Chicago", FlightNumber: "AA4456", Status: domain.FlightStatusCanceled},
		{Airline: "Jet Blue", Destination: "Orlando", FlightNumber: "JB955", DepartureTime: &now, Terminal: &terminal13, Status: domain.FlightStatusScheduled},
	} {
		board.Append(f)
	}

	departures.PrintDepartures(os.Stdout, board)
	fmt.Println()
	departures.PrintDepartures2(os.Stdout, board)
	fmt.Println()
	board.AlertPassengers(os.Stdout)
	fmt.Println()

	for _, q := range []fare.Quote{fare.NewQuote(2, 2000, 3), fare.NewQuote(5, 2000, 2)} {
		fmt.Printf("%d bags, %d miles, %d travelers: %s\n", q.CheckedBags, q.Distance, q.Travelers, q.Formatted)
	}
}

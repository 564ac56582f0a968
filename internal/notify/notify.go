package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/departures/internal/kafka"
)

// Notifier delivers passenger alerts. The default sink is stdout.
type Notifier struct {
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	if out == nil {
		out = os.Stdout
	}
	return &Notifier{out: out}
}

func (n *Notifier) Send(ctx context.Context, event kafka.AlertEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(n.out, "[%s %s] %s\n", event.Airport, event.FlightNumber, event.Message)
	return err
}

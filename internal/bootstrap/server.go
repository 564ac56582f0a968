package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Domenick1991/departures/api"
	"github.com/Domenick1991/departures/config"
	"github.com/Domenick1991/departures/internal/service/flights"
)

// Run serves the HTTP API and blocks until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase) error {
	srv := newServer(cfg, flightSvc)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("http server listening on %s", cfg.HTTP.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServer(cfg *config.Config, flightSvc flights.FlightUseCase) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           api.NewRouter(flightSvc),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

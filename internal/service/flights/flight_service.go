package flights

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/departures/internal/departures"
	"github.com/Domenick1991/departures/internal/domain"
	"github.com/Domenick1991/departures/internal/kafka"
	"github.com/Domenick1991/departures/internal/repository"
	"github.com/google/uuid"
)

var ErrInvalidFlight = errors.New("invalid flight")

type FlightUseCase interface {
	Board(ctx context.Context) (*domain.DepartureBoard, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error)
	UpdateStatus(ctx context.Context, id string, status domain.FlightStatus) (*domain.Flight, error)
	AlertPassengers(ctx context.Context) ([]string, error)
	Departures(ctx context.Context, w io.Writer) error
	Diagnostics(ctx context.Context, w io.Writer) error
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type AddFlightInput struct {
	Airline       string     `json:"airline"`
	Destination   string     `json:"destination"`
	FlightNumber  string     `json:"flight_number"`
	DepartureTime *time.Time `json:"departure_time"`
	Terminal      *string    `json:"terminal"`
	Status        string     `json:"status"`
}

type FlightService struct {
	repo        repository.FlightRepository
	cache       FlightCache
	producer    Producer
	airport     domain.Airport
	alertsTopic string
	now         func() time.Time
}

type FlightServiceOption func(*FlightService)

func WithAlerts(producer Producer, topic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.alertsTopic = topic
	}
}

func WithClock(now func() time.Time) FlightServiceOption {
	return func(s *FlightService) {
		s.now = now
	}
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache, airport domain.Airport, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{repo: repo, cache: cache, airport: airport, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board loads the airport's departures, preferring the cache.
func (s *FlightService) Board(ctx context.Context) (*domain.DepartureBoard, error) {
	flights, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewDepartureBoard(s.airport, flights...), nil
}

func (s *FlightService) list(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

// AddFlight appends a flight to the board. Fields are not checked against
// each other, so a Canceled flight may keep its departure time.
func (s *FlightService) AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error) {
	if strings.TrimSpace(input.Airline) == "" || strings.TrimSpace(input.Destination) == "" || strings.TrimSpace(input.FlightNumber) == "" {
		return nil, fmt.Errorf("%w: airline, destination and flight number are required", ErrInvalidFlight)
	}
	status, err := domain.ParseFlightStatus(input.Status)
	if err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		ID:            uuid.NewString(),
		Airline:       input.Airline,
		Destination:   input.Destination,
		FlightNumber:  input.FlightNumber,
		DepartureTime: input.DepartureTime,
		Terminal:      input.Terminal,
		Status:        status,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) UpdateStatus(ctx context.Context, id string, status domain.FlightStatus) (*domain.Flight, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, status)
	}
	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// AlertPassengers returns one alert per flight in board order and publishes
// each of them. Publish failures are logged and do not fail the call.
func (s *FlightService) AlertPassengers(ctx context.Context) ([]string, error) {
	board, err := s.Board(ctx)
	if err != nil {
		return nil, err
	}

	alerts := board.Alerts()
	for i, f := range board.Flights() {
		if err := s.publish(ctx, f, alerts[i]); err != nil {
			log.Printf("WARNING: failed to publish alert for flight %s: %v", f.FlightNumber, err)
		}
	}
	return alerts, nil
}

func (s *FlightService) Departures(ctx context.Context, w io.Writer) error {
	board, err := s.Board(ctx)
	if err != nil {
		return err
	}
	departures.PrintDepartures2(w, board)
	return nil
}

func (s *FlightService) Diagnostics(ctx context.Context, w io.Writer) error {
	board, err := s.Board(ctx)
	if err != nil {
		return err
	}
	departures.PrintDepartures(w, board)
	return nil
}

func (s *FlightService) publish(ctx context.Context, f domain.Flight, message string) error {
	if s.producer == nil || s.alertsTopic == "" {
		return nil
	}
	event := kafka.AlertEvent{
		FlightID:     f.ID,
		FlightNumber: f.FlightNumber,
		Destination:  f.Destination,
		Status:       string(f.Status),
		Message:      message,
		Airport:      s.airport.City,
		IssuedAt:     s.now(),
	}
	key := f.ID
	if key == "" {
		key = f.FlightNumber
	}
	return s.producer.Publish(ctx, s.alertsTopic, key, event)
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("WARNING: failed to invalidate board cache: %v", err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)

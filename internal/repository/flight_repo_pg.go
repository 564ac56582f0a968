package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/departures/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	UpdateStatus(ctx context.Context, id string, status domain.FlightStatus) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, airline, destination, flight_number, departure_time, terminal, status`

// List returns flights in the order they were put on the board.
func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFlightNotFound
	}
	return f, err
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO flights (id, airline, destination, flight_number, departure_time, terminal, status) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		flight.ID, flight.Airline, flight.Destination, flight.FlightNumber, flight.DepartureTime, flight.Terminal, string(flight.Status))
	if err != nil {
		return fmt.Errorf("insert flight %s: %w", flight.FlightNumber, err)
	}
	return nil
}

func (r *PGFlightRepository) UpdateStatus(ctx context.Context, id string, status domain.FlightStatus) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `UPDATE flights SET status=$2, updated_at=now() WHERE id=$1 RETURNING `+flightColumns, id, string(status))
	f, err := scanFlight(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFlightNotFound
	}
	return f, err
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var (
		f      domain.Flight
		status string
	)
	if err := row.Scan(&f.ID, &f.Airline, &f.Destination, &f.FlightNumber, &f.DepartureTime, &f.Terminal, &status); err != nil {
		return nil, err
	}
	f.Status = domain.FlightStatus(status)
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)

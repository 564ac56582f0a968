package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/departures/config"
	"github.com/Domenick1991/departures/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	airport    string
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, airport string, flightsTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		airport,
		flightsTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, airport string, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, airport: airport, flightsTTL: flightsTTL}
}

// GetFlights returns the cached board, or nil without error on a miss.
func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, c.flightsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("decode cached flights: %w", err)
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.flightsKey(), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, c.flightsKey()).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) flightsKey() string {
	return fmt.Sprintf("cache:board:%s:flights", c.airport)
}

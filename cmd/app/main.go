package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/departures/config"
	"github.com/Domenick1991/departures/internal/bootstrap"
	"github.com/Domenick1991/departures/internal/cache"
	"github.com/Domenick1991/departures/internal/domain"
	"github.com/Domenick1991/departures/internal/kafka"
	"github.com/Domenick1991/departures/internal/repository"
	"github.com/Domenick1991/departures/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Board.AirportCity, cfg.Board.CacheTTL())
	defer redisCache.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, kafka.WithMaxRetries(cfg.Worker.MaxRetries))
	defer producer.Close()

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := producer.CheckConnection(checkCtx); err != nil {
		log.Printf("WARNING: kafka unavailable, alerts will not be delivered: %v", err)
	}
	cancel()

	flightRepo := repository.NewFlightRepository(pool)
	flightService := flights.NewFlightService(
		flightRepo,
		redisCache,
		domain.Airport{City: cfg.Board.AirportCity},
		flights.WithAlerts(producer, cfg.Kafka.AlertsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, flightService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

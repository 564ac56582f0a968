package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/departures/config"
	"github.com/Domenick1991/departures/internal/kafka"
	"github.com/Domenick1991/departures/internal/notify"
	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.AlertsTopic)
	defer consumer.Close()

	notifier := notify.NewNotifier(os.Stdout)

	log.Printf("alert worker consuming %s", cfg.Kafka.AlertsTopic)
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeAlertEvent(msg)
		if err != nil {
			log.Printf("skip message: %v", err)
			return nil
		}
		return notifier.Send(ctx, event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("consumer stopped: %v", err)
	}
	log.Println("alert worker stopped")
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Board    BoardConfig    `yaml:"board"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address         string `yaml:"address"`
	ShutdownTimeout int    `yaml:"shutdown_timeout_seconds"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers     []string `yaml:"brokers"`
	AlertsTopic string   `yaml:"alerts_topic"`
	GroupID     string   `yaml:"group_id"`
}

type BoardConfig struct {
	AirportCity     string `yaml:"airport_city"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

func (b BoardConfig) CacheTTL() time.Duration {
	return time.Duration(b.CacheTTLSeconds) * time.Second
}

type WorkerConfig struct {
	MaxRetries int `yaml:"max_retries"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 5
	}
	if cfg.Kafka.AlertsTopic == "" {
		cfg.Kafka.AlertsTopic = "passenger-alerts"
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "departures-worker"
	}
	if cfg.Board.CacheTTLSeconds == 0 {
		cfg.Board.CacheTTLSeconds = 30
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
}

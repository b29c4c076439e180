package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvDatabasePassword переменная окружения с паролем БД, имеет приоритет над файлом
const EnvDatabasePassword = "DB_PASSWORD"

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Kafka    KafkaConfig    `toml:"kafka"`
	Booking  BookingConfig  `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type KafkaConfig struct {
	Enabled        bool     `toml:"enabled"`
	Brokers        []string `toml:"brokers"`
	Topic          string   `toml:"topic"`
	RequiredAcks   int      `toml:"required_acks"`
	Compression    string   `toml:"compression"`
	MaxAttempts    int      `toml:"max_attempts"`
	BatchTimeoutMs int      `toml:"batch_timeout_ms"`
	WriteTimeout   int      `toml:"write_timeout"` // секунды
}

// BatchTimeout задержка накопления пачки сообщений
func (k KafkaConfig) BatchTimeout() time.Duration {
	return time.Duration(k.BatchTimeoutMs) * time.Millisecond
}

type BookingConfig struct {
	// TxMaxAttempts попытки сериализуемой транзакции при конфликте
	TxMaxAttempts int `toml:"tx_max_attempts"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if password, ok := os.LookupEnv(EnvDatabasePassword); ok {
		cfg.Database.Password = password
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "camping_booking",
		},
		Kafka: KafkaConfig{
			Topic:          "camping.bookings",
			RequiredAcks:   -1,
			Compression:    "snappy",
			MaxAttempts:    3,
			BatchTimeoutMs: 10,
			WriteTimeout:   5,
		},
		Booking: BookingConfig{
			TxMaxAttempts: 3,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("%w: kafka.brokers is required when kafka is enabled", ErrInvalidConfig)
	}
	if c.Booking.TxMaxAttempts < 1 {
		return fmt.Errorf("%w: booking.tx_max_attempts must be at least 1", ErrInvalidConfig)
	}
	return nil
}

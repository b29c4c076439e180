package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
)

var (
	// ErrPublisherClosed публикация после Close
	ErrPublisherClosed = errors.New("events: publisher is closed")

	// ErrInvalidConfig не заданы брокеры или топик
	ErrInvalidConfig = errors.New("events: invalid kafka config")

	// ErrPublish ошибка записи в kafka
	ErrPublish = errors.New("events: failed to publish event")
)

// Config параметры продюсера
type Config struct {
	Brokers      []string
	Topic        string
	RequiredAcks int    // -1 все реплики, 0 без подтверждения, 1 лидер
	Compression  string // none, gzip, snappy, lz4, zstd
	MaxAttempts  int
	BatchTimeout time.Duration
	WriteTimeout time.Duration
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// messageWriter часть *kafka.Writer, которую использует продюсер
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события бронирований в один топик
// Ключ сообщения - номер бронирования, события одной брони попадают в одну партицию
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger Logger

	mu     sync.RWMutex
	closed bool
}

// NewKafkaPublisher создает продюсер
func NewKafkaPublisher(cfg Config, logger Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("%w: at least one broker is required", ErrInvalidConfig)
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("%w: topic cannot be empty", ErrInvalidConfig)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: requiredAcks(cfg.RequiredAcks),
		Compression:  compression(cfg.Compression),
		MaxAttempts:  cfg.MaxAttempts,
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger:  kafka.LoggerFunc(logger.Error),
	}

	return newKafkaPublisher(writer, cfg.Topic, logger), nil
}

func newKafkaPublisher(writer messageWriter, topic string, logger Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
		logger: logger,
	}
}

// Publish синхронно записывает событие
func (p *KafkaPublisher) Publish(ctx context.Context, event BookingEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Reference),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.ID)},
			{Key: HeaderEventType, Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: topic=%s, type=%s: %v", ErrPublish, p.topic, event.Type, err)
	}

	p.logger.Info("Events: published %s for booking id=%d to %s", event.Type, event.BookingID, p.topic)
	return nil
}

// Close закрывает writer, повторный вызов безопасен
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	return p.writer.Close()
}

func requiredAcks(v int) kafka.RequiredAcks {
	switch v {
	case 0:
		return kafka.RequireNone
	case 1:
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}

func compression(name string) compress.Compression {
	switch name {
	case "gzip":
		return compress.Gzip
	case "snappy":
		return compress.Snappy
	case "lz4":
		return compress.Lz4
	case "zstd":
		return compress.Zstd
	default:
		return compress.None
	}
}

// NopPublisher используется, когда kafka выключена в конфиге: события только логируются
type NopPublisher struct {
	logger Logger
}

// NewNopPublisher создает публикатор-заглушку
func NewNopPublisher(logger Logger) *NopPublisher {
	return &NopPublisher{logger: logger}
}

// Publish пишет событие в лог
func (p *NopPublisher) Publish(_ context.Context, event BookingEvent) error {
	p.logger.Info("Events: kafka disabled, skipping %s for booking id=%d", event.Type, event.BookingID)
	return nil
}

// Close ничего не делает
func (p *NopPublisher) Close() error {
	return nil
}

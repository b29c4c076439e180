package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/logger"
	"github.com/maineblanc/camping-booking/pkg/types"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   int
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed++
	return nil
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:               42,
		Reference:        "7f1b2c3d-0000-4000-8000-000000000042",
		UserID:           7,
		Category:         domain.CategoryCampingCar,
		Subtype:          domain.SubtypeCampingCar,
		StartDate:        time.Date(2027, time.August, 10, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2027, time.August, 14, 0, 0, 0, 0, time.UTC),
		Nights:           4,
		TotalPrice:       types.Euros(140),
		Deposit:          types.Euros(21),
		RemainingBalance: types.Euros(119),
		Status:           domain.StatusPending,
		Contact:          domain.Contact{FirstName: "Anne", LastName: "Martin", Email: "anne@example.com"},
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, "bookings", logger.NewWithWriter(io.Discard, logger.LevelError))

	event := NewBookingEvent(TypeBookingCreated, testBooking(), time.Now())
	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "7f1b2c3d-0000-4000-8000-000000000042", string(msg.Key))
	assert.Contains(t, msg.Headers, kafka.Header{Key: HeaderEventType, Value: []byte("booking.created")})

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "Camping-car", decoded["accommodationLabel"])
	assert.Equal(t, 140.0, decoded["totalPrice"])
	assert.Equal(t, 21.0, decoded["deposit"])
	assert.Equal(t, 119.0, decoded["remainingBalance"])
	assert.Equal(t, "2027-08-10", decoded["startDate"])
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unavailable")}
	p := newKafkaPublisher(w, "bookings", logger.NewWithWriter(io.Discard, logger.LevelError))

	err := p.Publish(context.Background(), NewBookingEvent(TypeDepositPaid, testBooking(), time.Now()))

	assert.ErrorIs(t, err, ErrPublish)
}

func TestKafkaPublisher_Close(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, "bookings", logger.NewWithWriter(io.Discard, logger.LevelError))

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, w.closed)

	err := p.Publish(context.Background(), NewBookingEvent(TypeBookingCancelled, testBooking(), time.Now()))
	assert.ErrorIs(t, err, ErrPublisherClosed)
}

func TestNewKafkaPublisher_InvalidConfig(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, logger.LevelError)

	_, err := NewKafkaPublisher(Config{Topic: "bookings"}, log)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewKafkaPublisher(Config{Brokers: []string{"localhost:9092"}}, log)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"tripmap/internal/domain/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter records the messages written.
type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)

	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true

	return nil
}

func sampleEvent() *service.TripChangedEvent {
	return &service.TripChangedEvent{
		RequestID: "req-1",
		OwnerID:   "default",
		Kind:      service.ChangeKindLocation,
		Op:        service.ChangeOpCreated,
		EntityID:  "L1",
		Outcome:   "persisted",
	}
}

func TestKafkaPublisher_PublishTripChanged(t *testing.T) {
	fw := &fakeWriter{}
	publisher := NewKafkaPublisherWithWriter(fw, slog.Default())

	require.NoError(t, publisher.PublishTripChanged(context.Background(), sampleEvent()))

	require.Len(t, fw.msgs, 1)
	msg := fw.msgs[0]
	assert.Equal(t, "default", string(msg.Key))

	var decoded service.TripChangedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, *sampleEvent(), decoded)

	require.Len(t, msg.Headers, 4)
	assert.Equal(t, "owner_id", msg.Headers[0].Key)
	assert.Equal(t, "req-1", string(msg.Headers[3].Value))
}

func TestKafkaPublisher_OmitsEmptyRequestID(t *testing.T) {
	fw := &fakeWriter{}
	publisher := NewKafkaPublisherWithWriter(fw, slog.Default())
	event := sampleEvent()
	event.RequestID = ""

	require.NoError(t, publisher.PublishTripChanged(context.Background(), event))

	assert.Len(t, fw.msgs[0].Headers, 3)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	fw := &fakeWriter{err: errors.New("broker down")}
	publisher := NewKafkaPublisherWithWriter(fw, slog.Default())

	err := publisher.PublishTripChanged(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestKafkaPublisher_Close(t *testing.T) {
	fw := &fakeWriter{}

	require.NoError(t, NewKafkaPublisherWithWriter(fw, slog.Default()).Close())
	assert.True(t, fw.closed)
}

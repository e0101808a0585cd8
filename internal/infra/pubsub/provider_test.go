package pubsub

import (
	"context"
	"log/slog"
	"testing"

	"tripmap/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		want    any
		wantErr bool
	}{
		{name: "not configured", want: &noopPublisher{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8085/push"}, want: &localHTTPPublisher{}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "kafka", pubsub: &config.PubSubConfig{Provider: "kafka", Brokers: []string{"localhost:9092"}, TopicID: "trip-changes"}, want: &kafkaPublisher{}},
		{name: "kafka without brokers", pubsub: &config.PubSubConfig{Provider: "kafka", TopicID: "trip-changes"}, wantErr: true},
		{name: "kafka without topic", pubsub: &config.PubSubConfig{Provider: "kafka", Brokers: []string{"localhost:9092"}}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "trip-changes"}, wantErr: true},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "smoke-signals"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)

			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: slog.Default(),
			})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

package directions

import (
	"log/slog"
	"testing"

	"tripmap/config"
	"tripmap/internal/infra/directions/webapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouteResolver(t *testing.T) {
	tests := []struct {
		name       string
		directions *config.DirectionsConfig
		wantErr    bool
		wantWebAPI bool
	}{
		{name: "not configured", wantWebAPI: true},
		{name: "web api", directions: &config.DirectionsConfig{Provider: "webapi", BaseURL: "http://localhost:5000/route/v1"}, wantWebAPI: true},
		{name: "tiles without source", directions: &config.DirectionsConfig{Provider: "tiles"}, wantErr: true},
		{name: "unknown provider", directions: &config.DirectionsConfig{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, err := NewRouteResolver(ResolverParams{
				Config: &config.Config{Directions: tt.directions},
				Logger: slog.Default(),
			})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.wantWebAPI {
				assert.IsType(t, &webapi.Client{}, resolver)
			}
		})
	}
}

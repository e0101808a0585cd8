package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pinRequest struct {
	Name  string   `json:"name" validate:"required,max=10"`
	Lat   *float64 `json:"lat" validate:"required,latitude"`
	Color string   `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

func float(v float64) *float64 { return &v }

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     pinRequest
		wantErr string
	}{
		{name: "valid", req: pinRequest{Name: "Harbor", Lat: float(25.03)}},
		{name: "zero latitude is present", req: pinRequest{Name: "Equator", Lat: float(0)}},
		{name: "missing name", req: pinRequest{Lat: float(1)}, wantErr: "name is required"},
		{name: "name too long", req: pinRequest{Name: "A very long harbor", Lat: float(1)}, wantErr: "name must be at most 10 characters"},
		{name: "missing latitude", req: pinRequest{Name: "Harbor"}, wantErr: "lat is required"},
		{name: "latitude out of range", req: pinRequest{Name: "Harbor", Lat: float(91)}, wantErr: "lat must be between -90 and 90"},
		{name: "bad color", req: pinRequest{Name: "Harbor", Lat: float(1), Color: "red"}, wantErr: "color must be a hex color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCustomValidator_JoinsMessages(t *testing.T) {
	err := New().Validate(&pinRequest{})

	assert.EqualError(t, err, "name is required; lat is required")
}

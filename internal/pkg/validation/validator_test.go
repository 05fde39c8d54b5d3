package validation

import (
	"testing"

	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string  `json:"name" validate:"required,max=5"`
	Seats    int     `json:"seats" validate:"min=1"`
	TripType string  `json:"trip_type" validate:"omitempty,oneof=taxi carpool"`
	Lat      float64 `json:"lat" validate:"latitude"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		in      sample
		wantMsg string
	}{
		{name: "Valid", in: sample{Name: "abc", Seats: 1, TripType: "taxi", Lat: 10}},
		{name: "Missing name", in: sample{Seats: 1}, wantMsg: "name is required"},
		{name: "Name too long", in: sample{Name: "abcdef", Seats: 1}, wantMsg: "name must be at most 5"},
		{name: "Too few seats", in: sample{Name: "a"}, wantMsg: "seats must be at least 1"},
		{name: "Unknown trip type", in: sample{Name: "a", Seats: 1, TripType: "boat"}, wantMsg: "trip_type must be one of [taxi carpool]"},
		{name: "Latitude out of range", in: sample{Name: "a", Seats: 1, Lat: 91}, wantMsg: "lat must be a valid latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.in)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperror.ErrValidation)
			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

package loads

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/goshaft/internal/shaft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoverning(t *testing.T) {
	tests := []struct {
		name     string
		loads    PointLoads
		wantLoad float64
		wantID   string
	}{
		{"dead only", PointLoads{Dead: 400}, 400, "1"},
		{"dead and live", PointLoads{Dead: 400, Live: 600}, 1000, "2"},
		{"with impact", PointLoads{Dead: 400, Live: 600, Impact: 150}, 1150, "3"},
		{"nothing", PointLoads{}, 0, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			load, combo := Governing(tt.loads, ServiceCombinations)
			assert.Equal(t, tt.wantLoad, load)
			assert.Equal(t, tt.wantID, combo.ID)
		})
	}
}

func TestGoverningEmpty(t *testing.T) {
	load, combo := Governing(PointLoads{Dead: 1}, nil)
	assert.Zero(t, load)
	assert.Empty(t, combo.ID)
}

func TestIsZero(t *testing.T) {
	assert.True(t, PointLoads{}.IsZero())
	assert.False(t, PointLoads{Impact: 1}.IsZero())
}

func TestPointLoadsValidate(t *testing.T) {
	tests := []struct {
		name      string
		loads     PointLoads
		wantField string
	}{
		{"valid", PointLoads{Dead: 400, Live: 600}, ""},
		{"zero is valid", PointLoads{}, ""},
		{"negative dead", PointLoads{Dead: -500}, "dead load"},
		{"negative live", PointLoads{Dead: 1000, Live: -5000}, "live load"},
		{"nan impact", PointLoads{Impact: math.NaN()}, "impact load"},
		{"infinite live", PointLoads{Live: math.Inf(1)}, "live load"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loads.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *shaft.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

package shaft

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignReferenceCase(t *testing.T) {
	r, err := Design(DefaultInput(1000, 500))
	require.NoError(t, err)

	assert.Equal(t, 125000.0, r.MaxBendingMoment)
	assert.Equal(t, 117.5, r.AllowableStress)

	want := math.Pow((32*125000)/(math.Pi*117.5), 1.0/3)
	assert.InDelta(t, want, r.RequiredDiameter, 1e-9)
	assert.InDelta(t, 22.13, r.RequiredDiameter, 0.005)
	assert.Equal(t, 500.0, r.Length)
}

func TestComputeShaftDiameterMatchesDesign(t *testing.T) {
	d, err := ComputeShaftDiameter(2500, 800, 355, 1.5)
	require.NoError(t, err)

	r, err := Design(Input{Load: 2500, SupportDistance: 800, YieldStrength: 355, SafetyFactor: 1.5})
	require.NoError(t, err)
	assert.Equal(t, r.RequiredDiameter, d)

	// The designed diameter stresses the section exactly to the allowable value.
	assert.InDelta(t, r.AllowableStress, BendingStress(r.MaxBendingMoment, d), 1e-9)
}

func TestZeroLoadGivesZeroDiameter(t *testing.T) {
	d, err := ComputeShaftDiameter(0, 500, 235, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestMonotonicInLoad(t *testing.T) {
	prev := -1.0
	for _, load := range []float64{0, 1, 10, 100, 1000, 5000, 1e5} {
		d, err := ComputeShaftDiameter(load, 500, 235, 2)
		require.NoError(t, err)
		assert.Greater(t, d, prev, "load=%g", load)
		prev = d
	}
}

func TestMonotonicInSafetyFactor(t *testing.T) {
	prev := 0.0
	for _, sf := range []float64{0.5, 1, 1.5, 2, 3, 5} {
		d, err := ComputeShaftDiameter(1000, 500, 235, sf)
		require.NoError(t, err)
		assert.Greater(t, d, prev, "sf=%g", sf)
		prev = d
	}
}

func TestScalingLaw(t *testing.T) {
	base, err := Design(DefaultInput(1000, 500))
	require.NoError(t, err)
	doubled, err := Design(DefaultInput(2000, 1000))
	require.NoError(t, err)

	assert.InDelta(t, 4.0, doubled.MaxBendingMoment/base.MaxBendingMoment, 1e-12)
	assert.InDelta(t, math.Cbrt(4), doubled.RequiredDiameter/base.RequiredDiameter, 1e-12)
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{"zero safety factor", Input{Load: 1000, SupportDistance: 500, YieldStrength: 235, SafetyFactor: 0}, "safety factor"},
		{"negative safety factor", Input{Load: 1000, SupportDistance: 500, YieldStrength: 235, SafetyFactor: -2}, "safety factor"},
		{"zero yield strength", Input{Load: 1000, SupportDistance: 500, YieldStrength: 0, SafetyFactor: 2}, "yield strength"},
		{"negative load", Input{Load: -1, SupportDistance: 500, YieldStrength: 235, SafetyFactor: 2}, "load"},
		{"zero distance", Input{Load: 1000, SupportDistance: 0, YieldStrength: 235, SafetyFactor: 2}, "support distance"},
		{"negative distance", Input{Load: 1000, SupportDistance: -10, YieldStrength: 235, SafetyFactor: 2}, "support distance"},
		{"NaN load", Input{Load: math.NaN(), SupportDistance: 500, YieldStrength: 235, SafetyFactor: 2}, "load"},
		{"infinite distance", Input{Load: 1000, SupportDistance: math.Inf(1), YieldStrength: 235, SafetyFactor: 2}, "support distance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Design(tt.in)
			require.Error(t, err)
			assert.Nil(t, r)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestZeroSafetyFactorNeverReturnsInfinity(t *testing.T) {
	d, err := ComputeShaftDiameter(1000, 500, 235, 0)
	require.Error(t, err)
	assert.False(t, math.IsInf(d, 0))
	assert.Equal(t, 0.0, d)
}

func TestOverflowIsArithmeticError(t *testing.T) {
	_, err := ComputeShaftDiameter(1e308, 1e308, 235, 2)
	require.Error(t, err)

	var aerr *ArithmeticError
	require.True(t, errors.As(err, &aerr), "expected ArithmeticError, got %T", err)
	assert.Equal(t, "bending moment", aerr.Op)
}

func TestCheck(t *testing.T) {
	in := DefaultInput(1000, 500)

	t.Run("adequate", func(t *testing.T) {
		c, err := Check(in, 25)
		require.NoError(t, err)
		assert.InDelta(t, 81.487, c.BendingStress, 1e-3)
		assert.InDelta(t, c.BendingStress/117.5, c.Utilization, 1e-12)
		assert.InDelta(t, 235/c.BendingStress, c.AchievedSafetyFactor, 1e-12)
		assert.True(t, c.IsAdequate)
	})

	t.Run("undersized", func(t *testing.T) {
		c, err := Check(in, 20)
		require.NoError(t, err)
		assert.Greater(t, c.Utilization, 1.0)
		assert.False(t, c.IsAdequate)
		assert.Contains(t, c.Message, "NOT adequate")
	})

	t.Run("unloaded", func(t *testing.T) {
		c, err := Check(DefaultInput(0, 500), 20)
		require.NoError(t, err)
		assert.Equal(t, 0.0, c.BendingStress)
		assert.Equal(t, 0.0, c.AchievedSafetyFactor)
		assert.True(t, c.IsAdequate)
	})

	t.Run("invalid diameter", func(t *testing.T) {
		_, err := Check(in, 0)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "diameter", verr.Field)
	})
}

func TestStockOptions(t *testing.T) {
	r, err := Design(DefaultInput(1000, 500))
	require.NoError(t, err)

	opts := r.StockOptions(3)
	require.Len(t, opts, 3)
	assert.Equal(t, []float64{25, 28, 30}, []float64{opts[0].Diameter, opts[1].Diameter, opts[2].Diameter})
	for _, o := range opts {
		assert.GreaterOrEqual(t, o.Diameter, r.RequiredDiameter)
		assert.LessOrEqual(t, o.Utilization, 1.0)
	}
}

func TestStockOptionsBeyondCatalog(t *testing.T) {
	r, err := Design(DefaultInput(1e8, 5000))
	require.NoError(t, err)
	assert.Empty(t, r.StockOptions(3))
}

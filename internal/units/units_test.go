package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		value    float64
		from, to Length
		want     float64
	}{
		{500, Millimeter, Centimeter, 50},
		{50, Centimeter, Millimeter, 500},
		{1.5, Meter, Millimeter, 1500},
		{1, Inch, Millimeter, 25.4},
		{254, Millimeter, Inch, 10},
		{12, Millimeter, Millimeter, 12},
	}

	for _, tt := range tests {
		got, err := Convert(tt.value, tt.from, tt.to)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "%g %s -> %s", tt.value, tt.from, tt.to)
	}
}

func TestConvertUnknownUnit(t *testing.T) {
	_, err := Convert(1, Length("ft"), Millimeter)
	assert.Error(t, err)
	_, err = Convert(1, Millimeter, Length("yd"))
	assert.Error(t, err)
}

func TestParseLength(t *testing.T) {
	for in, want := range map[string]Length{
		"mm":     Millimeter,
		" CM ":   Centimeter,
		"metres": Meter,
		"inch":   Inch,
	} {
		got, err := ParseLength(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseLength("furlong")
	assert.ErrorContains(t, err, "unknown length unit")
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 50.0, MMToCM(500))
	assert.Equal(t, 0.5, MMToM(500))
	assert.Equal(t, 125.0, NmmToNm(125000))
	assert.Equal(t, 0.125, NmmToKNm(125000))
	assert.Equal(t, 1.0, NToKN(1000))
}

package apsp_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/verikit/apsp"
)

func TestWeight_Arithmetic(t *testing.T) {
	assert.True(t, apsp.Inf().Add(apsp.Finite(-5)).IsInf())
	assert.True(t, apsp.Finite(3).Add(apsp.Inf()).IsInf())
	assert.Equal(t, 1.5, apsp.Finite(3).Add(apsp.Finite(-1.5)).Float64())

	// Saturation instead of ±Inf/NaN.
	assert.Equal(t, math.MaxFloat64, apsp.Finite(math.MaxFloat64).Add(apsp.Finite(math.MaxFloat64)).Float64())
	assert.Equal(t, -math.MaxFloat64, apsp.Finite(-math.MaxFloat64).Add(apsp.Finite(-math.MaxFloat64)).Float64())

	assert.True(t, apsp.Finite(1e300).Less(apsp.Inf()))
	assert.False(t, apsp.Inf().Less(apsp.Inf()))
	assert.False(t, apsp.Inf().Less(apsp.Finite(0)))
	assert.True(t, apsp.Finite(-1).Less(apsp.Finite(0)))

	assert.True(t, apsp.Finite(-1).IsNegative())
	assert.False(t, apsp.Inf().IsNegative())
	assert.Equal(t, apsp.Finite(0), apsp.Weight{}, "zero value is Finite(0)")
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in      string
		want    apsp.Weight
		wantErr bool
	}{
		{"0", apsp.Finite(0), false},
		{" -2.5 ", apsp.Finite(-2.5), false},
		{"inf", apsp.Inf(), false},
		{"Infinity", apsp.Inf(), false},
		{"+Inf", apsp.Inf(), false},
		{"∞", apsp.Inf(), false},
		{"-inf", apsp.Weight{}, true},
		{"NaN", apsp.Weight{}, true},
		{"seven", apsp.Weight{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := apsp.ParseWeight(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apsp.ErrInvalidWeight)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeight_JSON(t *testing.T) {
	out, err := json.Marshal([]apsp.Weight{apsp.Finite(2), apsp.Inf(), apsp.Finite(-0.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `[2, "inf", -0.5]`, string(out))

	var in []apsp.Weight
	require.NoError(t, json.Unmarshal([]byte(`[1, "inf", null, "-3"]`), &in))
	assert.Equal(t, []apsp.Weight{apsp.Finite(1), apsp.Inf(), apsp.Inf(), apsp.Finite(-3)}, in)

	assert.ErrorIs(t, json.Unmarshal([]byte(`["nope"]`), &in), apsp.ErrInvalidWeight)
}

func TestGraph_Accessors(t *testing.T) {
	_, err := apsp.NewGraph(-1)
	assert.ErrorIs(t, err, apsp.ErrBadOrder)

	g, err := apsp.NewGraph(2)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Order())

	w, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.True(t, w.IsInf())

	require.NoError(t, g.SetEdge(0, 1, apsp.Finite(4)))
	w, err = g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, w.Float64())

	assert.ErrorIs(t, g.SetEdge(2, 0, apsp.Finite(1)), apsp.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.SetEdge(0, 1, apsp.Finite(math.NaN())), apsp.ErrInvalidWeight)
	_, err = g.Edge(0, -1)
	assert.ErrorIs(t, err, apsp.ErrVertexOutOfRange)
}

func TestWeight_MarshalYAML(t *testing.T) {
	v, err := apsp.Inf().MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "inf", v)

	v, err = apsp.Finite(-2).MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, -2.0, v)
}

package operator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestPowerOperator(t *testing.T) {
	tests := []struct {
		name           string
		base, exponent float64
		want           float64
	}{
		{"integer power", 2, 10, 1024},
		{"zero to zero", 0, 0, 1},
		{"negative exponent", 2, -1, 0.5},
		{"fractional exponent", 9, 0.5, 3},
		{"negative base integer exponent", -2, 3, -8},
		{"zero to negative", 0, -1, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PowerOperator{}.Calculate(tt.base, tt.exponent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("negative base fractional exponent is NaN", func(t *testing.T) {
		got, err := PowerOperator{}.Calculate(-8, 1.0/3)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	})
}

func TestRootOperator(t *testing.T) {
	t.Run("exact cube root", func(t *testing.T) {
		got, err := RootOperator{}.Calculate(8, 3)
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(got, 2, 1e-12), "got %v", got)
	})

	t.Run("exact square root", func(t *testing.T) {
		root, err := NewRootOperator(WithReciprocal(ReciprocalExact))
		require.NoError(t, err)

		got, err := root.Calculate(2, 2)
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(got, math.Sqrt2, 1e-15), "got %v", got)
	})

	t.Run("estimated cube root", func(t *testing.T) {
		root, err := NewRootOperator(WithReciprocal(ReciprocalEstimate))
		require.NoError(t, err)
		assert.Equal(t, ReciprocalEstimate, root.Reciprocal())

		got, err := root.Calculate(8, 3)
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(got, 2, 1e-3), "got %v", got)
	})

	t.Run("estimate matches exact for power-of-two index", func(t *testing.T) {
		estimate, err := NewRootOperator(WithReciprocal(ReciprocalEstimate))
		require.NoError(t, err)

		got, err := estimate.Calculate(16, 4)
		require.NoError(t, err)
		want, err := RootOperator{}.Calculate(16, 4)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.InDelta(t, 2, got, 1e-14)
	})

	t.Run("zero index follows pow", func(t *testing.T) {
		got, err := RootOperator{}.Calculate(8, 0)
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, 1))

		got, err = RootOperator{}.Calculate(0.5, 0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("unknown reciprocal mode", func(t *testing.T) {
		_, err := NewRootOperator(WithReciprocal(Reciprocal(7)))
		assert.ErrorIs(t, err, ErrUnknownOperation)
	})
}

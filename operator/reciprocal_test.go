package operator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestEstimateReciprocal(t *testing.T) {
	bound := math.Ldexp(1, -EstimateBits)

	t.Run("relative error bound", func(t *testing.T) {
		for _, x := range []float64{3, 7, -7, 0.1, 1.5e-200, 9.87654321e250, math.Pi, -math.E} {
			got := ReciprocalEstimate.of(x)
			assert.True(t, scalar.EqualWithinRel(got, 1/x, bound), "1/%v: got %v", x, got)
		}
	})

	t.Run("powers of two are exact", func(t *testing.T) {
		for _, x := range []float64{1, 2, 0.5, 1024, -4} {
			assert.Equal(t, 1/x, ReciprocalEstimate.of(x))
		}
	})

	t.Run("keeps only estimate bits", func(t *testing.T) {
		bits := math.Float64bits(ReciprocalEstimate.of(3))
		assert.Zero(t, bits&(1<<(52-EstimateBits)-1))
	})

	t.Run("special values", func(t *testing.T) {
		for _, r := range []Reciprocal{ReciprocalExact, ReciprocalEstimate} {
			assert.True(t, math.IsInf(r.of(0), 1), r.String())
			assert.True(t, math.IsInf(r.of(math.Copysign(0, -1)), -1), r.String())
			assert.Equal(t, 0.0, r.of(math.Inf(1)), r.String())
			assert.True(t, math.Signbit(r.of(math.Inf(-1))), r.String())
			assert.True(t, math.IsNaN(r.of(math.NaN())), r.String())
		}
	})

	t.Run("exact mode divides", func(t *testing.T) {
		assert.Equal(t, 1.0/3, ReciprocalExact.of(3))
	})
}

func TestReciprocalMode(t *testing.T) {
	assert.True(t, ReciprocalExact.Valid())
	assert.True(t, ReciprocalEstimate.Valid())
	assert.False(t, Reciprocal(2).Valid())

	assert.Equal(t, "exact", ReciprocalExact.String())
	assert.Equal(t, "estimate", ReciprocalEstimate.String())
	assert.Equal(t, "unknown", Reciprocal(5).String())
	assert.True(t, math.IsNaN(Reciprocal(5).of(2)))
}

package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPCGSourceIsDeterministic(t *testing.T) {
	a, b := NewPCGSource(42), NewPCGSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	c := NewPCGSource(43)
	assert.NotEqual(t, NewPCGSource(42).Float64(), c.Float64())
}

func TestPCGSourceUniform(t *testing.T) {
	src := NewPCGSource(1)
	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		x := src.Uniform(-2, 3)
		assert.GreaterOrEqual(t, x, -2.0)
		assert.Less(t, x, 3.0)
		sum += x
	}
	assert.InDelta(t, 0.5, sum/n, 0.05)
}

func TestPCGSourceExponential(t *testing.T) {
	src := NewPCGSource(2)
	for _, rate := range []float64{0.5, 1, 4} {
		var sum float64
		const n = 20000
		for i := 0; i < n; i++ {
			x := src.Exponential(rate)
			assert.GreaterOrEqual(t, x, 0.0)
			sum += x
		}
		assert.InEpsilon(t, 1/rate, sum/n, 0.05, "rate %v", rate)
	}
	assert.True(t, math.IsInf(src.Exponential(0), 1))
}

func TestPCGSourceVonMises(t *testing.T) {
	src := NewPCGSource(3)

	t.Run("concentrated", func(t *testing.T) {
		const mu = 1.0
		var sumSin, sumCos float64
		for i := 0; i < 5000; i++ {
			x := src.VonMises(mu, 50)
			assert.LessOrEqual(t, math.Abs(x-mu), math.Pi+Epsilon)
			sumSin += math.Sin(x)
			sumCos += math.Cos(x)
		}
		assert.InDelta(t, mu, math.Atan2(sumSin, sumCos), 0.02)
	})

	t.Run("zero concentration is uniform on the circle", func(t *testing.T) {
		var below int
		const n = 10000
		for i := 0; i < n; i++ {
			x := src.VonMises(0, 0)
			assert.LessOrEqual(t, math.Abs(x), math.Pi)
			if x < 0 {
				below++
			}
		}
		assert.InDelta(t, 0.5, float64(below)/n, 0.03)
	})
}

func TestPCGSourceBinomial(t *testing.T) {
	src := NewPCGSource(4)
	assert.Equal(t, 0, src.Binomial(10, 0))
	assert.Equal(t, 10, src.Binomial(10, 1))
	var successes int
	for i := 0; i < 10000; i++ {
		successes += src.Binomial(1, 0.3)
	}
	assert.InDelta(t, 0.3, float64(successes)/10000, 0.03)
}

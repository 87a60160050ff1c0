package advanced

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleAngle(t *testing.T) {
	src := NewPCGSource(11)

	t.Run("zero value is uniform", func(t *testing.T) {
		var dist AngleDistribution
		assert.Equal(t, UniformDistribution, dist.Kind())
		for i := 0; i < 1000; i++ {
			angle := dist.SampleAngle(src)
			assert.GreaterOrEqual(t, angle, 0.0)
			assert.Less(t, angle, math.Pi)
		}
	})

	t.Run("side", func(t *testing.T) {
		always := SideAngles(1)
		never := SideAngles(0)
		for i := 0; i < 100; i++ {
			assert.Equal(t, math.Pi/2, always.SampleAngle(src))
			assert.Equal(t, 0.0, never.SampleAngle(src))
		}

		mixed := SideAngles(0.25)
		var vertical int
		for i := 0; i < 8000; i++ {
			angle := mixed.SampleAngle(src)
			require.Contains(t, []float64{0, math.Pi / 2}, angle)
			if angle != 0 {
				vertical++
			}
		}
		assert.InDelta(t, 0.25, float64(vertical)/8000, 0.03)
	})

	t.Run("von Mises folds onto a half circle", func(t *testing.T) {
		// A location of 3π/2 describes the same lines as π/2
		dist := VonMisesAngles(3*math.Pi/2, 200)
		var sum float64
		for i := 0; i < 2000; i++ {
			angle := dist.SampleAngle(src)
			assert.GreaterOrEqual(t, angle, 0.0)
			assert.Less(t, angle, math.Pi)
			sum += angle
		}
		assert.InDelta(t, math.Pi/2, sum/2000, 0.02)
	})

	t.Run("custom", func(t *testing.T) {
		dist := CustomAngles(func() float64 { return 0.7 })
		assert.Equal(t, 0.7, dist.SampleAngle(src))
	})
}

func TestFoldAngle(t *testing.T) {
	assert.InDelta(t, 0.5, foldAngle(0.5), Epsilon)
	assert.InDelta(t, 0.5, foldAngle(0.5+math.Pi), Epsilon)
	assert.InDelta(t, math.Pi-0.5, foldAngle(-0.5), Epsilon)
	assert.InDelta(t, 0, foldAngle(-2*math.Pi), Epsilon)
}

func TestAngleDistributionValidation(t *testing.T) {
	assert.NoError(t, UniformAngles().Validate())
	assert.NoError(t, SideAngles(0.5).Validate())
	assert.NoError(t, VonMisesAngles(0, 0).Validate())

	for name, dist := range map[string]AngleDistribution{
		"side above one":    SideAngles(1.5),
		"side NaN":          SideAngles(math.NaN()),
		"negative kappa":    VonMisesAngles(0, -1),
		"infinite mu":       VonMisesAngles(math.Inf(1), 1),
		"custom without fn": CustomAngles(nil),
		"unknown kind":      {kind: DistributionKind(42)},
	} {
		err := dist.Validate()
		assert.True(t, errors.Is(err, ErrInvalidDistribution), "%s: got %v", name, err)
	}
}

func TestParseAngleDistribution(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		dist, err := ParseAngleDistribution("Uniform", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, UniformDistribution, dist.Kind())

		dist, err = ParseAngleDistribution("side", map[string]float64{"p": 0.2}, nil)
		require.NoError(t, err)
		assert.Equal(t, "side(p=0.2)", dist.String())

		dist, err = ParseAngleDistribution("side", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "side(p=0.5)", dist.String())

		dist, err = ParseAngleDistribution("vonmises", map[string]float64{"mu": 0, "kappa": 2}, nil)
		require.NoError(t, err)
		assert.Equal(t, VonMisesDistribution, dist.Kind())

		dist, err = ParseAngleDistribution("custom", nil, func() float64 { return 0 })
		require.NoError(t, err)
		assert.Equal(t, CustomDistribution, dist.Kind())
	})

	t.Run("missing parameters", func(t *testing.T) {
		_, err := ParseAngleDistribution("vonmises", map[string]float64{"mu": 1}, nil)
		assert.True(t, errors.Is(err, ErrInvalidDistribution))

		_, err = ParseAngleDistribution("vonmises", map[string]float64{"kappa": 1}, nil)
		assert.True(t, errors.Is(err, ErrInvalidDistribution))

		_, err = ParseAngleDistribution("custom", nil, nil)
		assert.True(t, errors.Is(err, ErrInvalidDistribution))
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseAngleDistribution("gaussian", nil, nil)
		assert.True(t, errors.Is(err, ErrInvalidDistribution))
		assert.Contains(t, err.Error(), "gaussian")
	})
}

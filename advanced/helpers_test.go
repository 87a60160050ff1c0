package advanced

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const Epsilon = 1e-9

// Axis aligned unit square with its lower left corner at the origin.
func unitSquare(t *testing.T) Polygon {
	poly, err := NewPolygon([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}})
	require.NoError(t, err)
	return poly
}

func regular(t *testing.T, n int) Polygon {
	poly, err := MakeRegularPolygon(n)
	require.NoError(t, err)
	return poly
}

func totalArea(polygons []Polygon) float64 {
	var sum float64
	for _, poly := range polygons {
		sum += poly.Area()
	}
	return sum
}

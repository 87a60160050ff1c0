package internal

// This contains no actual tests. It is just a helper for testing tessellation
// validity.

import (
	"math"
	"testing"

	"github.com/osuushi/stit/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const Epsilon = 1e-9

// Helper to check that a tessellation of a window is valid. The rules are:
// 1. There is at least one cell.
// 2. Every cell is a closed loop with at least three vertices.
// 3. No cell has zero area.
// 4. Every vertex of every cell lies in the window.
// 5. The sum of the areas of all cells is equal to the area of the window.
func AssertValidTessellation(t *testing.T, window advanced.Polygon, cells []advanced.Polygon) {
	t.Helper()
	require.NotEmpty(t, cells, "a tessellation has at least one cell")

	scale := math.Max(1, window.EnclosingCircle().Radius)
	var total float64
	for i, cell := range cells {
		require.GreaterOrEqual(t, cell.N(), 4, "cell %d has too few vertices", i)
		assert.Equal(t, cell.Vertex(0), cell.Vertex(cell.N()-1), "cell %d is not closed", i)
		assert.Greater(t, cell.Area(), 0.0, "cell %d has no area", i)
		for _, p := range cell.Points() {
			assert.True(t, insideOrOn(window, p, 1e-7*scale), "vertex %v of cell %d is outside the window", p, i)
		}
		total += cell.Area()
	}
	assert.InDelta(t, window.Area(), total, Epsilon*scale*scale*float64(len(cells)), "cell areas must add up to the window area")
}

// Convex containment with slack. Orientation is taken from the window so
// either winding works.
func insideOrOn(window advanced.Polygon, p advanced.Point, slack float64) bool {
	orientation := 1.0
	if signedArea(window) < 0 {
		orientation = -1
	}
	for i := 0; i < window.N()-1; i++ {
		edge := window.Edge(i)
		d := edge.End.Sub(edge.Start)
		cross := d.X*(p.Y-edge.Start.Y) - d.Y*(p.X-edge.Start.X)
		if orientation*cross < -slack*d.Norm() {
			return false
		}
	}
	return true
}

func signedArea(poly advanced.Polygon) float64 {
	var sum float64
	for i := 0; i < poly.N()-1; i++ {
		a, b := poly.Vertex(i), poly.Vertex(i+1)
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

package advanced

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// A closed convex polygon. The first and last stored points are identical, so a
// square is stored as five points. Polygons are values: Translate, Scale and
// CutPoly all return new polygons and never touch the receiver's vertices.
//
// Convexity is assumed, not checked.
type Polygon struct {
	points []Point
}

// NewPolygon validates a closed vertex loop and copies it into a Polygon.
func NewPolygon(points []Point) (Polygon, error) {
	if len(points) < 4 {
		return Polygon{}, errors.Wrapf(ErrTooFewVertices, "got %d stored points, need at least 4 including the closing point", len(points))
	}
	first, last := points[0], points[len(points)-1]
	if first.Sub(last).Norm2() > ClosureTolerance {
		return Polygon{}, errors.Wrapf(ErrNotClosed, "first %v, last %v", first, last)
	}
	if n := distinctVertices(points); n < 3 {
		return Polygon{}, errors.Wrapf(ErrTooFewVertices, "got %d distinct vertices", n)
	}
	copied := make([]Point, len(points))
	copy(copied, points)
	return Polygon{points: copied}, nil
}

// Number of distinct vertices of a closed loop, not counting the closing point.
func distinctVertices(points []Point) int {
	loop := points[:len(points)-1]
	count := 0
	for i, p := range loop {
		seen := false
		for _, q := range loop[:i] {
			if samePoint(p, q) {
				seen = true
				break
			}
		}
		if !seen {
			count++
		}
	}
	return count
}

// NewPolygonFromCoords builds a polygon from rows of (x, y) coordinates. Every
// row must have exactly two entries.
func NewPolygonFromCoords(coords [][]float64) (Polygon, error) {
	points := make([]Point, len(coords))
	for i, row := range coords {
		if len(row) != 2 {
			return Polygon{}, errors.Wrapf(ErrInvalidShape, "row %d has %d coordinates", i, len(row))
		}
		points[i] = Point{X: row[0], Y: row[1]}
	}
	return NewPolygon(points)
}

// Used for polygons we build ourselves, where an invalid loop is a bug.
func mustPolygon(points []Point) Polygon {
	poly, err := NewPolygon(points)
	if err != nil {
		fatalf("internal polygon construction failed: %v", err)
	}
	return poly
}

// MakeRegularPolygon creates a regular n-gon with unit circumradius, with
// vertices at angles 2πk/n.
func MakeRegularPolygon(n int) (Polygon, error) {
	if n < 3 {
		return Polygon{}, errors.Wrapf(ErrTooFewVertices, "regular polygon with %d sides", n)
	}
	points := make([]Point, n+1)
	for k := 0; k < n; k++ {
		angle := 2 * math.Pi * float64(k) / float64(n)
		points[k] = Point{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	points[n] = points[0]
	return Polygon{points: points}, nil
}

// Number of stored points, including the closing point.
func (poly Polygon) N() int {
	return len(poly.points)
}

func (poly Polygon) Vertex(i int) Point {
	return poly.points[i]
}

// Points returns a copy of the stored points.
func (poly Polygon) Points() []Point {
	points := make([]Point, len(poly.points))
	copy(points, poly.points)
	return points
}

// Edge i runs from vertex i to vertex i+1. There are N()-1 edges.
func (poly Polygon) Edge(i int) Segment {
	return Segment{poly.points[i], poly.points[i+1]}
}

// Shoelace formula over the closed loop. Orientation doesn't matter.
func (poly Polygon) Area() float64 {
	return math.Abs(poly.signedArea())
}

func (poly Polygon) signedArea() float64 {
	var sum float64
	for i := 0; i < len(poly.points)-1; i++ {
		a, b := poly.points[i], poly.points[i+1]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func (poly Polygon) Perimeter() float64 {
	var sum float64
	for i := 0; i < len(poly.points)-1; i++ {
		sum += poly.points[i+1].Sub(poly.points[i]).Norm()
	}
	return sum
}

// Boundary projects every vertex onto the direction theta and returns the
// extent of the projections. A line (rho, theta) crosses the polygon iff rho
// lies in [min, max].
func (poly Polygon) Boundary(theta float64) (min, max float64) {
	cos, sin := math.Cos(theta), math.Sin(theta)
	min, max = math.Inf(1), math.Inf(-1)
	for _, p := range poly.points {
		projection := p.X*cos + p.Y*sin
		min = math.Min(min, projection)
		max = math.Max(max, projection)
	}
	return min, max
}

// Crosses reports whether the line meets the polygon.
func (poly Polygon) Crosses(line Line) bool {
	min, max := poly.Boundary(line.Theta)
	return min <= line.Rho && line.Rho <= max
}

func (poly Polygon) EnclosingRectangle() Rect {
	rect := Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, p := range poly.points {
		rect.Min.X = math.Min(rect.Min.X, p.X)
		rect.Min.Y = math.Min(rect.Min.Y, p.Y)
		rect.Max.X = math.Max(rect.Max.X, p.X)
		rect.Max.Y = math.Max(rect.Max.Y, p.Y)
	}
	return rect
}

// EnclosingCircle is centered on the bounding rectangle with the rectangle's
// diagonal as diameter. It is not the minimal enclosing circle, only a cheap
// one that is guaranteed to contain every vertex.
func (poly Polygon) EnclosingCircle() Circle {
	rect := poly.EnclosingRectangle()
	return Circle{
		Center: rect.Center(),
		Radius: math.Hypot(rect.Width(), rect.Height()) / 2,
	}
}

// Largest distance from the origin to a vertex.
func (poly Polygon) MaxRadius() float64 {
	var radius float64
	for _, p := range poly.points {
		radius = math.Max(radius, p.Norm())
	}
	return radius
}

// Area centroid.
func (poly Polygon) Centroid() Point {
	area := poly.signedArea()
	if area == 0 {
		return poly.EnclosingRectangle().Center()
	}
	var cx, cy float64
	for i := 0; i < len(poly.points)-1; i++ {
		a, b := poly.points[i], poly.points[i+1]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// Even-odd point in polygon test.
func (poly Polygon) ContainsPoint(p Point) bool {
	return poly.crossingCount(p)%2 == 1
}

// Counts edges crossed by a ray from p towards +x.
func (poly Polygon) crossingCount(p Point) int {
	count := 0
	for i := 0; i < len(poly.points)-1; i++ {
		a, b := poly.points[i], poly.points[i+1]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > p.X {
			count++
		}
	}
	return count
}

func (poly Polygon) Translate(delta Point) Polygon {
	points := make([]Point, len(poly.points))
	for i, p := range poly.points {
		points[i] = p.Add(delta)
	}
	return Polygon{points: points}
}

func (poly Polygon) Scale(k float64) Polygon {
	points := make([]Point, len(poly.points))
	for i, p := range poly.points {
		points[i] = p.Scale(k)
	}
	return Polygon{points: points}
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.points))
	for i, p := range poly.points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Polygon of %d points [%s]", len(poly.points), strings.Join(parts, " "))
}

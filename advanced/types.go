package advanced

import (
	"fmt"
	"math"
)

// Points are held by value everywhere. A cut copies the vertices it keeps, so
// a parent cell and its children never share storage.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Projection of the point onto the unit direction at angle theta.
func (p Point) Project(theta float64) float64 {
	return p.X*math.Cos(theta) + p.Y*math.Sin(theta)
}

func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Norm2() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// A line in signed distance form. The point (x, y) lies on the line iff
// x*cos(Theta) + y*sin(Theta) == Rho. Theta is kept in [0, π), so every line in
// the plane has exactly one representation up to the sign of Rho.
type Line struct {
	Rho   float64
	Theta float64
}

// Normal returns the unit normal of the line.
func (l Line) Normal() Point {
	return Point{X: math.Cos(l.Theta), Y: math.Sin(l.Theta)}
}

// Signed distance of p from the line, positive on the side the normal points to.
func (l Line) Distance(p Point) float64 {
	return p.Project(l.Theta) - l.Rho
}

func (l Line) String() string {
	return fmt.Sprintf("ρ=%.4f θ=%.4f", l.Rho, l.Theta)
}

type Segment struct {
	Start Point
	End   Point
}

// Axis aligned rectangle.
type Rect struct {
	Min, Max Point
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

type Circle struct {
	Center Point
	Radius float64
}

package advanced

import "math"

// Intersect returns the parameter t at which the point (1-t)*Start + t*End lies
// on the line. The segment is crossed iff t is in [0, 1]. A segment parallel to
// the line gets +Inf rather than a division by zero, which callers treat as no
// crossing.
func (s Segment) Intersect(line Line) float64 {
	cos, sin := math.Cos(line.Theta), math.Sin(line.Theta)
	denominator := (s.End.X-s.Start.X)*cos + (s.End.Y-s.Start.Y)*sin
	if denominator == 0 {
		return math.Inf(1)
	}
	return (line.Rho - s.Start.X*cos - s.Start.Y*sin) / denominator
}

// Point along the segment at parameter t.
func (s Segment) At(t float64) Point {
	return Point{
		X: (1-t)*s.Start.X + t*s.End.X,
		Y: (1-t)*s.Start.Y + t*s.End.Y,
	}
}

func (s Segment) Length() float64 {
	return s.End.Sub(s.Start).Norm()
}

// Intersect is the free function form of Segment.Intersect.
func Intersect(u, v Point, line Line) float64 {
	return Segment{u, v}.Intersect(line)
}

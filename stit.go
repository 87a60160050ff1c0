// A STIT random tessellation package for Go.
//
// Starting from a convex polygon, cells are split recursively by random lines.
// Each cell waits an exponential time with rate equal to its perimeter before
// it is split, which makes the resulting mosaic stable under iteration: running
// any cell further gives the same law as a fresh tessellation of that cell.
package stit

import "github.com/osuushi/stit/advanced"

type Point = advanced.Point
type Line = advanced.Line
type Polygon = advanced.Polygon
type AngleDistribution = advanced.AngleDistribution
type Source = advanced.Source
type Config = advanced.Config
type Result = advanced.Result
type Step = advanced.Step

const DefaultMaxIterations = advanced.DefaultMaxIterations

var (
	ErrCutFailed    = advanced.ErrCutFailed
	ErrIterationCap = advanced.ErrIterationCap
	ErrClockStalled = advanced.ErrClockStalled
)

// Regular n-gon inscribed in the unit circle.
func MakeRegularPolygon(n int) (Polygon, error) {
	return advanced.MakeRegularPolygon(n)
}

// NewPolygon takes a closed vertex loop: the last point must repeat the first.
func NewPolygon(points ...Point) (Polygon, error) {
	return advanced.NewPolygon(points)
}

// NewSource returns the default seeded random source.
func NewSource(seed uint64) Source {
	return advanced.NewPCGSource(seed)
}

// Simulate a STIT tessellation of polygon and return its cells.
//
// Validation problems are returned as errors. Cuts that fail and hitting the
// iteration cap before the stop time are warnings: they show up in
// Result.Warnings, never as an error.
func Simulate(polygon Polygon, config Config) (result Result, err error) {
	defer func() {
		recoveredErr := advanced.HandleSimulatePanicRecover(recover())
		if recoveredErr != nil {
			result = Result{}
			err = recoveredErr
		}
	}()
	return advanced.Simulate(polygon, config)
}

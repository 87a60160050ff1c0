package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// SimulateUniform samples a line uniformly, in the dρ·dθ sense, among the lines
// that cross the polygon. It works by rejection: lines are drawn across the
// enclosing circle and kept once they meet the polygon.
//
// There is no cap on the number of rejections. A polygon with zero area can
// loop forever.
func (poly Polygon) SimulateUniform(dist AngleDistribution, src Source) (Line, error) {
	if err := dist.Validate(); err != nil {
		return Line{}, err
	}
	return poly.sampleLine(dist, src, 0)
}

// maxRejections <= 0 means unbounded.
func (poly Polygon) sampleLine(dist AngleDistribution, src Source, maxRejections int) (Line, error) {
	circle := poly.EnclosingCircle()
	// Work in circle centered coordinates so that rho is drawn symmetrically.
	centered := poly.Translate(circle.Center.Scale(-1))
	for rejections := 0; ; rejections++ {
		if maxRejections > 0 && rejections >= maxRejections {
			return Line{}, errors.Wrapf(ErrRejectionLimit, "%d candidates rejected for %v", rejections, poly)
		}
		theta := dist.SampleAngle(src)
		rho := src.Uniform(-circle.Radius, circle.Radius)
		min, max := centered.Boundary(theta)
		if min <= rho && rho <= max {
			return Line{
				Rho:   rho + circle.Center.X*math.Cos(theta) + circle.Center.Y*math.Sin(theta),
				Theta: theta,
			}, nil
		}
	}
}

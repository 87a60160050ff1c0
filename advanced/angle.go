package advanced

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

type DistributionKind int

const (
	UniformDistribution DistributionKind = iota
	SideDistribution
	VonMisesDistribution
	CustomDistribution
)

var distributionNames = map[DistributionKind]string{
	UniformDistribution:  "uniform",
	SideDistribution:     "side",
	VonMisesDistribution: "vonmises",
	CustomDistribution:   "custom",
}

func (k DistributionKind) String() string {
	if name, ok := distributionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DistributionKind(%d)", int(k))
}

// AngleDistribution selects how line angles are drawn. The zero value is the
// uniform distribution on [0, π).
type AngleDistribution struct {
	kind      DistributionKind
	p         float64
	mu, kappa float64
	generator func() float64
}

func UniformAngles() AngleDistribution {
	return AngleDistribution{kind: UniformDistribution}
}

// SideAngles gives π/2 with probability p and 0 otherwise, so lines are axis
// parallel.
func SideAngles(p float64) AngleDistribution {
	return AngleDistribution{kind: SideDistribution, p: p}
}

// VonMisesAngles draws from a von Mises distribution and folds the result onto
// [0, π), since a line's angle and its opposite describe the same line.
func VonMisesAngles(mu, kappa float64) AngleDistribution {
	return AngleDistribution{kind: VonMisesDistribution, mu: mu, kappa: kappa}
}

// CustomAngles delegates to generator, which should return values in [0, π).
// The range is not checked.
func CustomAngles(generator func() float64) AngleDistribution {
	return AngleDistribution{kind: CustomDistribution, generator: generator}
}

// ParseAngleDistribution builds a distribution from its name and a parameter
// map, the way a config file describes it. Side reads "p" (default 0.5), von
// Mises requires "mu" and "kappa", custom requires a generator.
func ParseAngleDistribution(name string, params map[string]float64, generator func() float64) (AngleDistribution, error) {
	var dist AngleDistribution
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uniform":
		dist = UniformAngles()
	case "side":
		p, ok := params["p"]
		if !ok {
			p = 0.5
		}
		dist = SideAngles(p)
	case "vonmises", "von_mises", "von-mises":
		mu, hasMu := params["mu"]
		kappa, hasKappa := params["kappa"]
		if !hasMu || !hasKappa {
			return AngleDistribution{}, errors.Wrap(ErrInvalidDistribution, "von Mises needs both mu and kappa")
		}
		dist = VonMisesAngles(mu, kappa)
	case "custom":
		dist = CustomAngles(generator)
	default:
		return AngleDistribution{}, errors.Wrapf(ErrInvalidDistribution, "unknown distribution %q", name)
	}
	return dist, dist.Validate()
}

func (d AngleDistribution) Kind() DistributionKind {
	return d.kind
}

func (d AngleDistribution) Validate() error {
	switch d.kind {
	case UniformDistribution:
	case SideDistribution:
		if !(d.p >= 0 && d.p <= 1) {
			return errors.Wrapf(ErrInvalidDistribution, "side probability %v is not in [0, 1]", d.p)
		}
	case VonMisesDistribution:
		if math.IsNaN(d.mu) || math.IsInf(d.mu, 0) {
			return errors.Wrapf(ErrInvalidDistribution, "von Mises location %v", d.mu)
		}
		if !(d.kappa >= 0) || math.IsInf(d.kappa, 0) {
			return errors.Wrapf(ErrInvalidDistribution, "von Mises concentration %v", d.kappa)
		}
	case CustomDistribution:
		if d.generator == nil {
			return errors.Wrap(ErrInvalidDistribution, "custom distribution needs a generator")
		}
	default:
		return errors.Wrapf(ErrInvalidDistribution, "unknown distribution %v", d.kind)
	}
	return nil
}

// SampleAngle draws one angle. The distribution must be valid.
func (d AngleDistribution) SampleAngle(src Source) float64 {
	switch d.kind {
	case SideDistribution:
		if src.Binomial(1, d.p) == 1 {
			return math.Pi / 2
		}
		return 0
	case VonMisesDistribution:
		return foldAngle(src.VonMises(d.mu, d.kappa))
	case CustomDistribution:
		return d.generator()
	default:
		return src.Uniform(0, math.Pi)
	}
}

// Reduce an angle modulo π into [0, π).
func foldAngle(angle float64) float64 {
	angle = math.Mod(angle, math.Pi)
	if angle < 0 {
		angle += math.Pi
	}
	if angle >= math.Pi {
		angle = 0
	}
	return angle
}

func (d AngleDistribution) String() string {
	switch d.kind {
	case SideDistribution:
		return fmt.Sprintf("side(p=%g)", d.p)
	case VonMisesDistribution:
		return fmt.Sprintf("vonmises(mu=%g, kappa=%g)", d.mu, d.kappa)
	default:
		return d.kind.String()
	}
}

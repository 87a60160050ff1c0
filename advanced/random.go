package advanced

import (
	"math"

	"github.com/MichaelTJones/pcg"
)

// Source is the random number capability threaded through angle sampling, line
// sampling and clock draws. A Source is owned by a single simulation run and is
// not safe for concurrent use.
type Source interface {
	// Uniform draw from [a, b).
	Uniform(a, b float64) float64
	// Exponential draw with the given rate, i.e. mean 1/rate.
	Exponential(rate float64) float64
	// Von Mises draw with location mu and concentration kappa, in (mu-π, mu+π].
	VonMises(mu, kappa float64) float64
	// Number of successes in n Bernoulli(p) trials.
	Binomial(n int, p float64) int
}

// Stream selector for the PCG generator. Any odd constant works.
const pcgSequence = 0xda3e39cb94b95bdb

// PCGSource is the default Source, backed by a 32 bit PCG generator.
type PCGSource struct {
	rng *pcg.PCG32
}

func NewPCGSource(seed uint64) *PCGSource {
	s := &PCGSource{rng: pcg.NewPCG32()}
	s.rng.Seed(seed, pcgSequence)
	return s
}

// Float64 returns a uniform value in [0, 1) with 53 random bits.
func (s *PCGSource) Float64() float64 {
	high := uint64(s.rng.Random()) >> 5
	low := uint64(s.rng.Random()) >> 6
	return float64(high<<26|low) / (1 << 53)
}

func (s *PCGSource) Uniform(a, b float64) float64 {
	return a + (b-a)*s.Float64()
}

// A rate of zero or less never fires, so it yields +Inf.
func (s *PCGSource) Exponential(rate float64) float64 {
	if rate <= 0 {
		return math.Inf(1)
	}
	return -math.Log1p(-s.Float64()) / rate
}

// Best and Fisher's rejection sampler (Applied Statistics, 1979).
func (s *PCGSource) VonMises(mu, kappa float64) float64 {
	if kappa < 1e-8 {
		return mu + math.Pi*(2*s.Float64()-1)
	}
	tau := 1 + math.Sqrt(1+4*kappa*kappa)
	rho := (tau - math.Sqrt(2*tau)) / (2 * kappa)
	r := (1 + rho*rho) / (2 * rho)
	for {
		z := math.Cos(math.Pi * s.Float64())
		f := (1 + r*z) / (r + z)
		c := kappa * (r - f)
		u := s.Float64()
		if c*(2-c)-u > 0 || math.Log(c/u)+1-c >= 0 {
			theta := math.Acos(math.Max(-1, math.Min(1, f)))
			if s.Float64() > 0.5 {
				return mu + theta
			}
			return mu - theta
		}
	}
}

func (s *PCGSource) Binomial(n int, p float64) int {
	successes := 0
	for i := 0; i < n; i++ {
		if s.Float64() < p {
			successes++
		}
	}
	return successes
}

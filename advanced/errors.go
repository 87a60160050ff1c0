package advanced

import "github.com/pkg/errors"

// Validation errors. These abort the call that produced them.
var (
	ErrInvalidShape        = errors.New("points should be given as (x, y) pairs")
	ErrNotClosed           = errors.New("first and last point should be identical")
	ErrTooFewVertices      = errors.New("polygon needs at least 3 distinct vertices")
	ErrInvalidDistribution = errors.New("invalid angle distribution")
	ErrInvalidConfig       = errors.New("invalid simulation config")
	ErrRejectionLimit      = errors.New("line sampling exceeded the rejection limit")
)

// Warnings. These are reported through Result.Warnings and Config.OnWarning and
// never fail a simulation.
var (
	ErrCutFailed    = errors.New("couldn't cut the polygon in two")
	ErrIterationCap = errors.New("iteration cap reached before stop time")
	ErrClockStalled = errors.New("no cell can split any more")
)

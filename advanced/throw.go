package advanced

import "github.com/pkg/errors"

// Invariant violations deep inside a simulation step (a cut producing a
// malformed child, for instance) are not something a caller can act on, and
// threading them through every geometric helper would clutter the code.
// Instead we panic, and the public API recovers to convert to an error.

type SimulateError error

// Panic with a SimulateError.
func fatalf(format string, args ...interface{}) {
	panic(SimulateError(errors.Errorf(format, args...)))
}

func HandleSimulatePanicRecover(r interface{}) error {
	if r != nil {
		if simulateError, ok := r.(SimulateError); ok {
			return simulateError
		}
		panic(r)
	}
	return nil
}

package advanced

// Maximum squared distance between the first and last stored point of a closed
// polygon.
const ClosureTolerance = 1e-10

// Squared distance under which two cut points are considered the same vertex.
const vertexTolerance = 1e-24

func samePoint(a, b Point) bool {
	return a.Sub(b).Norm2() <= vertexTolerance
}

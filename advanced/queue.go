package advanced

// A live cell of the tessellation and its pending split time.
type cell struct {
	id        int
	polygon   Polygon
	perimeter float64
	// Absolute time at which the cell's exponential clock rings. The remaining
	// clock at elapsed time T is deadline - T, so advancing T is the same as
	// decrementing every other cell's clock.
	deadline float64
	index    int
}

// clockQueue is a min-heap of cells keyed by deadline, for container/heap.
type clockQueue []*cell

func (q clockQueue) Len() int {
	return len(q)
}

func (q clockQueue) Less(i, j int) bool {
	if q[i].deadline == q[j].deadline {
		return q[i].id < q[j].id
	}
	return q[i].deadline < q[j].deadline
}

func (q clockQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *clockQueue) Push(x interface{}) {
	c := x.(*cell)
	c.index = len(*q)
	*q = append(*q, c)
}

func (q *clockQueue) Pop() interface{} {
	old := *q
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	c.index = -1
	*q = old[:n-1]
	return c
}

package advanced

// CutPoly splits the polygon along the line and returns the two pieces.
//
// The edges are walked in order and every edge whose intersection parameter is
// in [0, 1] is a crossing. A line through a vertex registers on both edges that
// meet there, so a crossing at the same point as the previous one is merged. A
// convex polygon crossed by the line then has exactly two crossings at edges
// i1 < i2, and the pieces are
//
//	P[0..i1] c1 c2 P[i2+1..]
//	c1 P[i1+1..i2] c2 c1
//
// If there aren't exactly two crossings, or a piece collapses to fewer than
// three distinct vertices, the cut fails: ok is false and the only piece is the
// receiver itself.
func (poly Polygon) CutPoly(line Line) (pieces []Polygon, ok bool) {
	var (
		edges   [2]int
		points  [2]Point
		crossed int
	)
	for i := 0; i < len(poly.points)-1; i++ {
		edge := poly.Edge(i)
		t := edge.Intersect(line)
		if !(t >= 0 && t <= 1) {
			continue
		}
		p := edge.At(t)
		if crossed > 0 && samePoint(p, points[crossed-1]) {
			continue
		}
		if crossed == 2 {
			// Wrapping round to the first crossing through vertex 0
			if samePoint(p, points[0]) {
				continue
			}
			return []Polygon{poly}, false
		}
		edges[crossed] = i
		points[crossed] = p
		crossed++
	}
	if crossed < 2 {
		return []Polygon{poly}, false
	}

	i1, i2 := edges[0], edges[1]
	c1, c2 := points[0], points[1]

	first := make([]Point, 0, len(poly.points)+2)
	first = append(first, poly.points[:i1+1]...)
	first = append(first, c1, c2)
	first = append(first, poly.points[i2+1:]...)

	second := make([]Point, 0, i2-i1+3)
	second = append(second, c1)
	second = append(second, poly.points[i1+1:i2+1]...)
	second = append(second, c2, c1)

	first, second = compactLoop(first), compactLoop(second)
	if len(first) < 4 || len(second) < 4 || distinctVertices(first) < 3 || distinctVertices(second) < 3 {
		return []Polygon{poly}, false
	}
	return []Polygon{mustPolygon(first), mustPolygon(second)}, true
}

// Drops consecutive duplicate vertices, which appear when a line passes
// through a vertex, and restores exact closure.
func compactLoop(points []Point) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if len(result) > 0 && samePoint(p, result[len(result)-1]) {
			continue
		}
		result = append(result, p)
	}
	if len(result) > 1 && samePoint(result[len(result)-1], result[0]) {
		result[len(result)-1] = result[0]
	} else if len(result) > 0 {
		result = append(result, result[0])
	}
	return result
}

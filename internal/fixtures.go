package internal

import (
	"embed"
	"io/fs"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/osuushi/stit/advanced"
	"github.com/osuushi/stit/importer"
)

// Fixtures are convex windows for tests. The SVG ones live in the fixtures/
// directory and are available by name, sans extension. If anything goes wrong
// loading them, the test binary exits.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) advanced.Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygons, err := importer.ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	return polygons[0]
}

func FixtureNames() []string {
	entries, err := fs.ReadDir(fixtures, "fixtures")
	if err != nil {
		log.Fatalf("Could not list fixtures: %v", err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
	}
	sort.Strings(names)
	return names
}

// Some ad hoc code specified fixtures

func Square(side float64) advanced.Polygon {
	return mustPolygon([]advanced.Point{{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side}, {X: 0, Y: 0}})
}

func Rectangle(width, height float64) advanced.Polygon {
	return mustPolygon([]advanced.Point{{X: 0, Y: 0}, {X: width, Y: 0}, {X: width, Y: height}, {X: 0, Y: height}, {X: 0, Y: 0}})
}

// Regular n-gon with the given circumradius, centered on c.
func RegularPolygon(n int, radius float64, c advanced.Point) advanced.Polygon {
	points := make([]advanced.Point, 0, n+1)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, advanced.Point{X: c.X + radius*math.Cos(angle), Y: c.Y + radius*math.Sin(angle)})
	}
	points = append(points, points[0])
	return mustPolygon(points)
}

func mustPolygon(points []advanced.Point) advanced.Polygon {
	poly, err := advanced.NewPolygon(points)
	if err != nil {
		log.Fatalf("Bad fixture polygon: %v", err)
	}
	return poly
}

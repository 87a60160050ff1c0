package importer

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/stit/advanced"
	"github.com/pkg/errors"
)

// This is not a full SVG reader. It finds every <polygon> element and reads its
// points attribute, which is enough to describe an initial window for a
// simulation. Transforms and other shapes are ignored.

var ErrNoPolygons = errors.New("no polygons found")

// ReadSVG returns every polygon in the document, closing each vertex loop.
func ReadSVG(r io.Reader) ([]advanced.Polygon, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	elements := root.FindAll("polygon")
	if len(elements) == 0 {
		return nil, ErrNoPolygons
	}

	polygons := make([]advanced.Polygon, 0, len(elements))
	for i, element := range elements {
		points, err := ParsePoints(element.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygon, err := advanced.NewPolygon(closeLoop(points))
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, polygon)
	}
	return polygons, nil
}

// ReadSVGFile reads the first polygon from an SVG file.
func ReadSVGFile(path string) (advanced.Polygon, error) {
	file, err := os.Open(path)
	if err != nil {
		return advanced.Polygon{}, errors.Wrap(err, "opening svg")
	}
	defer file.Close()

	polygons, err := ReadSVG(file)
	if err != nil {
		return advanced.Polygon{}, errors.Wrap(err, path)
	}
	return polygons[0], nil
}

// ParsePoints reads an SVG points attribute. Coordinates may be separated by
// commas, whitespace, or both.
func ParsePoints(attribute string) ([]advanced.Point, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Wrapf(advanced.ErrInvalidShape, "odd number of coordinates (%d)", len(fields))
	}

	points := make([]advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, advanced.Point{X: x, Y: y})
	}
	return points, nil
}

// SVG polygons are implicitly closed, so the closing point is usually missing.
func closeLoop(points []advanced.Point) []advanced.Point {
	if len(points) == 0 || points[0] == points[len(points)-1] {
		return points
	}
	return append(points, points[0])
}

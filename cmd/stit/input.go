package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/stit/advanced"
	"github.com/pkg/errors"
)

// Read windows from newline separated points in the form "x y", with each
// polygon separated by an extra newline. The closing point may be left out.
func readPolygons(in io.Reader) ([]advanced.Polygon, error) {
	polygons := []advanced.Polygon{}
	points := []advanced.Point{}

	flush := func() error {
		if len(points) == 0 {
			return nil
		}
		if points[0] != points[len(points)-1] {
			points = append(points, points[0])
		}
		polygon, err := advanced.NewPolygon(points)
		if err != nil {
			return errors.Wrapf(err, "polygon %d", len(polygons))
		}
		polygons = append(polygons, polygon)
		points = []advanced.Point{}
		return nil
	}

	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if err := flush(); err != nil {
		return nil, err
	}
	if len(polygons) == 0 {
		return nil, errors.New("no polygons in input")
	}
	return polygons, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Wrapf(advanced.ErrInvalidShape, "%q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}

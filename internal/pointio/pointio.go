// Reading point sets for the command line tool.
package pointio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y". A comma may be used instead
// of, or as well as, the space. Blank lines and lines starting with '#' are
// skipped.
func ReadText(in io.Reader) ([]advanced.Point, error) {
	var points []advanced.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// Parse a point from "x y" or "x,y".
func ParsePoint(s string) (advanced.Point, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected two coordinates, got %q", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x coordinate %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y coordinate %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}

// Collect points from an SVG document: the centre of every circle, then the
// vertices of every polygon and polyline, each in document order. Transforms
// are ignored.
func ReadSVG(in io.Reader) ([]advanced.Point, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []advanced.Point
	for _, circleEl := range rootEl.FindAll("circle") {
		point, err := parseCoordinates(circleEl.Attributes["cx"], circleEl.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle")
		}
		points = append(points, point)
	}

	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range rootEl.FindAll(name) {
			polyPoints, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrap(err, name)
			}
			points = append(points, polyPoints...)
		}
	}

	if len(points) == 0 {
		return nil, errors.New("no circles or polygons found in svg")
	}
	return points, nil
}

func parseCoordinates(xString, yString string) (advanced.Point, error) {
	x, err := strconv.ParseFloat(xString, 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x coordinate %q", xString)
	}
	y, err := strconv.ParseFloat(yString, 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y coordinate %q", yString)
	}
	return advanced.Point{X: x, Y: y}, nil
}

// The svg points attribute: numbers separated by whitespace and/or commas,
// taken in pairs.
func parsePointList(attribute string) ([]advanced.Point, error) {
	numbers := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(numbers)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attribute)
	}
	points := make([]advanced.Point, 0, len(numbers)/2)
	for i := 0; i < len(numbers); i += 2 {
		point, err := parseCoordinates(numbers[i], numbers[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

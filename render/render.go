// Draw triangulations to PNG, and optionally print them to the terminal
// (iTerm only). This is a debugging and demo aid; nothing in the library
// depends on it.
package render

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

type Options struct {
	// Pixels per unit of input space
	Scale float64
	// Padding around the hull, in pixels
	Padding int
	// Stroke every triangle's circumcircle
	Circumcircles bool
	// Triangles to highlight, e.g. a location walk. The last one is drawn
	// strongest.
	Highlight []int
	// Query point to mark, if any
	Query *advanced.Point
}

func DefaultOptions() Options {
	return Options{Scale: 8, Padding: 40}
}

// Size the canvas so the whole scene fits at the requested scale. Very large
// inputs are scaled down so that neither side exceeds maxSide pixels.
const maxSide = 4096

// Draw the triangulation onto a fresh context.
func Draw(tr *advanced.Triangulation, opts Options) *gg.Context {
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions().Scale
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p advanced.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range tr.Points {
		extend(p)
	}
	if opts.Query != nil && opts.Query.IsFinite() {
		extend(*opts.Query)
	}

	scale := opts.Scale
	if longest := math.Max(maxX-minX, maxY-minY); longest*scale > maxSide {
		scale = maxSide / longest
	}

	width := int(scale*(maxX-minX)) + opts.Padding*2
	height := int(scale*(maxY-minY)) + opts.Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(float64(opts.Padding), float64(opts.Padding))
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for i, ti := range opts.Highlight {
		if ti < 0 || ti >= len(tr.Triangles) {
			continue
		}
		traceTriangle(c, tr, ti)
		if i == len(opts.Highlight)-1 {
			c.SetRGBA(1, 0.4, 0, 0.8)
		} else {
			c.SetRGBA(0.3, 0.2, 1, 0.4)
		}
		c.Fill()
	}

	c.SetLineWidth(1)
	c.SetRGB(0, 1, 1)
	for ti := range tr.Triangles {
		traceTriangle(c, tr, ti)
		c.Stroke()
	}

	if opts.Circumcircles {
		c.SetRGBA(1, 1, 0, 0.3)
		for ti := range tr.Triangles {
			center, radius := tr.Circumcircle(ti)
			c.DrawCircle(center.X, center.Y, radius)
			c.Stroke()
		}
	}

	c.SetRGB(1, 1, 1)
	dot := 2 / scale
	for i, p := range tr.Points {
		if _, isDuplicate := tr.Duplicates[i]; isDuplicate {
			continue
		}
		c.DrawCircle(p.X, p.Y, dot)
		c.Fill()
	}

	if opts.Query != nil && opts.Query.IsFinite() {
		c.SetRGB(1, 0, 0)
		c.DrawCircle(opts.Query.X, opts.Query.Y, 2*dot)
		c.Fill()
	}
	return c
}

func traceTriangle(c *gg.Context, tr *advanced.Triangulation, ti int) {
	v := tr.Vertices(ti)
	c.MoveTo(v[0].X, v[0].Y)
	c.LineTo(v[1].X, v[1].Y)
	c.LineTo(v[2].X, v[2].Y)
	c.ClosePath()
}

func SavePNG(tr *advanced.Triangulation, path string, opts Options) error {
	if err := Draw(tr, opts).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

func WritePNG(w io.Writer, tr *advanced.Triangulation, opts Options) error {
	return errors.Wrap(Draw(tr, opts).EncodePNG(w), "encoding png")
}

// Render to a temporary file and print it inline in the terminal.
func Cat(tr *advanced.Triangulation, opts Options, out io.Writer) error {
	f, err := os.CreateTemp("", "delaunay-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temporary png")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := SavePNG(tr, path, opts); err != nil {
		return err
	}
	imgcat.CatFile(path, out)
	return nil
}

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/dbg"
	"github.com/osuushi/delaunay/internal/config"
	"github.com/osuushi/delaunay/internal/logger"
	"github.com/osuushi/delaunay/internal/pointio"
	"github.com/osuushi/delaunay/internal/sample"
	"github.com/osuushi/delaunay/render"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	configPath    string
	random        int
	space         float64
	seed          int64
	in            string
	svg           string
	query         string
	trace         bool
	dump          bool
	png           string
	imgcat        bool
	circumcircles bool
	scale         float64
	padding       int
	debug         bool
	jsonLogs      bool
	profileDir    string
	color         bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	app := kingpin.New("delaunay", "Delaunay triangulation and point location.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	// Flags only override the config file when they are actually given
	set := make(map[string]bool)
	mark := func(name string) kingpin.Action {
		return func(*kingpin.ParseContext) error {
			set[name] = true
			return nil
		}
	}

	app.Flag("config", "YAML file with defaults for the flags below.").StringVar(&opts.configPath)
	app.Flag("random", "Triangulate this many uniform random points instead of reading input.").
		Short('n').Action(mark("random")).IntVar(&opts.random)
	app.Flag("space", "Random points are taken from [0, space)².").Action(mark("space")).Float64Var(&opts.space)
	app.Flag("seed", "Random seed. Zero seeds from the clock.").Action(mark("seed")).Int64Var(&opts.seed)
	app.Flag("in", "File of newline separated \"x y\" points.").StringVar(&opts.in)
	app.Flag("svg", "SVG file; circle centres and polygon vertices are the points.").StringVar(&opts.svg)
	app.Flag("query", "Point to locate, as \"x,y\". Defaults to a random point inside the hull.").
		Short('q').StringVar(&opts.query)
	app.Flag("trace", "Print the triangles visited while locating the query.").BoolVar(&opts.trace)
	app.Flag("dump", "Print the triangles, hull and duplicates.").BoolVar(&opts.dump)
	app.Flag("png", "Render the triangulation to this PNG file.").StringVar(&opts.png)
	app.Flag("imgcat", "Print the rendering inline (iTerm only).").BoolVar(&opts.imgcat)
	app.Flag("circumcircles", "Draw circumcircles in renderings.").Action(mark("circumcircles")).BoolVar(&opts.circumcircles)
	app.Flag("debug", "Log build statistics.").Action(mark("debug")).BoolVar(&opts.debug)
	app.Flag("json-logs", "Log JSON lines instead of text.").Action(mark("json-logs")).BoolVar(&opts.jsonLogs)
	app.Flag("profile", "Write a CPU profile to this directory.").StringVar(&opts.profileDir)
	app.Flag("color", "Colorize output.").Default("true").BoolVar(&opts.color)

	if _, err := app.Parse(args); err != nil {
		return opts, err
	}

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return opts, err
		}
	}
	if !set["random"] {
		opts.random = cfg.Random
	}
	if !set["space"] {
		opts.space = cfg.Space
	}
	if !set["seed"] {
		opts.seed = cfg.Seed
	}
	if !set["circumcircles"] {
		opts.circumcircles = cfg.Render.Circumcircles
	}
	opts.scale = cfg.Render.Scale
	opts.padding = cfg.Render.Padding
	if !set["debug"] {
		opts.debug = cfg.Log.Debug
	}
	if !set["json-logs"] {
		opts.jsonLogs = cfg.Log.JSON
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}
	if opts.profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.profileDir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	au := aurora.NewAurora(opts.color)
	logger.Setup(stderr, logger.Config{Debug: opts.debug, JSON: opts.jsonLogs})
	defer logger.Reset()

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(opts.seed))

	points, source, err := readPoints(opts, r, stdin)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Read %d points from %s\n", len(points), source)

	start := time.Now()
	tr, err := delaunay.Build(points, delaunay.WithLogger(logger.L()))
	elapsed := time.Since(start)
	if err != nil {
		if delaunay.IsDegenerate(err) {
			logger.L().Debug("delaunay.degenerate", "points", len(points), "err", err)
			return errors.Wrap(err, "cannot triangulate")
		}
		return err
	}
	fmt.Fprintf(stdout, "Built %v triangles in %s (hull %d, duplicates %d)\n",
		au.Bold(len(tr.Triangles)), elapsed, len(tr.Hull), len(tr.Duplicates))

	if opts.dump {
		pretty.Fprintf(stdout, "triangles: %# v\nhull: %v\nduplicates: %v\n", tr.Triangles, tr.Hull, tr.Duplicates)
	}

	var q delaunay.Point
	if opts.query != "" {
		if q, err = pointio.ParsePoint(opts.query); err != nil {
			return errors.Wrap(err, "--query")
		}
	} else {
		q = sample.QueryInside(r, points)
	}

	path, ok := tr.Walk(q)
	if opts.trace {
		for i, ti := range path {
			fmt.Fprintf(stdout, "  %3d %-24s %v\n", i, dbg.Name(tr.Triangles[ti]), tr.Triangles[ti])
		}
	}
	if ok {
		ti := path[len(path)-1]
		v := tr.Vertices(ti)
		fmt.Fprintf(stdout, "Query %v lies in triangle %v with vertices %v %v %v\n",
			q, au.Green(tr.Triangles[ti]), v[0], v[1], v[2])
	} else {
		fmt.Fprintf(stdout, "Query %v is %s the triangulation\n", q, au.Red("outside"))
	}

	renderOpts := render.Options{
		Scale:         opts.scale,
		Padding:       opts.padding,
		Circumcircles: opts.circumcircles,
		Query:         &q,
	}
	if ok {
		renderOpts.Highlight = path
	}
	if opts.png != "" {
		if err := render.SavePNG(tr, opts.png, renderOpts); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", opts.png)
	}
	if opts.imgcat {
		if err := render.Cat(tr, renderOpts, stdout); err != nil {
			return err
		}
	}
	return nil
}

func readPoints(opts options, r *rand.Rand, stdin io.Reader) (points []delaunay.Point, source string, err error) {
	switch {
	case opts.in != "":
		f, err := os.Open(opts.in)
		if err != nil {
			return nil, "", errors.Wrap(err, "--in")
		}
		defer f.Close()
		points, err = pointio.ReadText(f)
		return points, opts.in, err
	case opts.svg != "":
		f, err := os.Open(opts.svg)
		if err != nil {
			return nil, "", errors.Wrap(err, "--svg")
		}
		defer f.Close()
		points, err = pointio.ReadSVG(f)
		return points, opts.svg, err
	case opts.random > 0:
		if !(opts.space > 0) {
			return nil, "", errors.Errorf("--space must be positive, got %g", opts.space)
		}
		return sample.Points(r, opts.random, opts.space), fmt.Sprintf("random (seed %d)", opts.seed), nil
	default:
		points, err = pointio.ReadText(stdin)
		return points, "stdin", err
	}
}

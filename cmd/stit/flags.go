package main

import (
	"fmt"
	"strconv"

	"github.com/osuushi/stit/config"
	"gopkg.in/alecthomas/kingpin.v2"
)

// An override is a flag that replaces a config file value, but only when it
// was given on the command line or through its environment variable.
type override[T any] struct {
	value T
	set   bool
	parse func(string) (T, error)
}

func (o *override[T]) Set(s string) error {
	value, err := o.parse(s)
	if err != nil {
		return err
	}
	o.value, o.set = value, true
	return nil
}

func (o *override[T]) String() string {
	return fmt.Sprint(o.value)
}

func (o *override[T]) apply(target *T) {
	if o.set {
		*target = o.value
	}
}

func newOverride[T any](clause *kingpin.FlagClause, parse func(string) (T, error)) *override[T] {
	o := &override[T]{parse: parse}
	clause.SetValue(o)
	return o
}

func floatOverride(clause *kingpin.FlagClause) *override[float64] {
	return newOverride(clause, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

func intOverride(clause *kingpin.FlagClause) *override[int] {
	return newOverride(clause, strconv.Atoi)
}

func uintOverride(clause *kingpin.FlagClause) *override[uint64] {
	return newOverride(clause, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}

func stringOverride(clause *kingpin.FlagClause) *override[string] {
	return newOverride(clause, func(s string) (string, error) {
		return s, nil
	})
}

// Flags that describe the run. Everything else (verbosity, colour, input
// from stdin) lives in main.
type runFlags struct {
	sides         *override[int]
	scale         *override[float64]
	svg           *override[string]
	stopTime      *override[float64]
	maxIterations *override[int]
	maxRejections *override[int]
	seed          *override[uint64]
	distribution  *override[string]
	p             *override[float64]
	mu            *override[float64]
	kappa         *override[float64]
	runs          *override[int]
	workers       *override[int]
	png           *override[string]
	dxf           *override[string]
	pdf           *override[string]
	xlsx          *override[string]
	size          *override[int]
	preview       *bool
}

func newRunFlags(app *kingpin.Application) *runFlags {
	return &runFlags{
		sides:         intOverride(app.Flag("sides", "Sides of the regular window polygon.").Short('n').Envar("STIT_SIDES")),
		scale:         floatOverride(app.Flag("scale", "Scale factor applied to the window.").Envar("STIT_SCALE")),
		svg:           stringOverride(app.Flag("svg", "Read the window from the first <polygon> of an SVG file.").Envar("STIT_SVG")),
		stopTime:      floatOverride(app.Flag("stop-time", "Simulation time to reach.").Short('t').Envar("STIT_STOP_TIME")),
		maxIterations: intOverride(app.Flag("max-iterations", "Cap on simulation steps.").Envar("STIT_MAX_ITERATIONS")),
		maxRejections: intOverride(app.Flag("max-rejections", "Cap on rejected lines per draw, 0 for none.").Envar("STIT_MAX_REJECTIONS")),
		seed:          uintOverride(app.Flag("seed", "Random seed, 0 to seed from the clock.").Short('s').Envar("STIT_SEED")),
		distribution:  stringOverride(app.Flag("distribution", "Angle distribution: uniform, side or vonmises.").Short('d').Envar("STIT_DISTRIBUTION")),
		p:             floatOverride(app.Flag("p", "Probability of a vertical line for the side distribution.").Envar("STIT_P")),
		mu:            floatOverride(app.Flag("mu", "Von Mises location.").Envar("STIT_MU")),
		kappa:         floatOverride(app.Flag("kappa", "Von Mises concentration.").Envar("STIT_KAPPA")),
		runs:          intOverride(app.Flag("runs", "Number of independent realizations.").Short('r').Envar("STIT_RUNS")),
		workers:       intOverride(app.Flag("workers", "Goroutines for ensembles, 0 for one per CPU.").Envar("STIT_WORKERS")),
		png:           stringOverride(app.Flag("png", "Write the tessellation as a PNG image.").Envar("STIT_PNG")),
		dxf:           stringOverride(app.Flag("dxf", "Write the tessellation as a DXF drawing.").Envar("STIT_DXF")),
		pdf:           stringOverride(app.Flag("pdf", "Write the tessellation as a PDF page.").Envar("STIT_PDF")),
		xlsx:          stringOverride(app.Flag("xlsx", "Write ensemble statistics as a spreadsheet.").Envar("STIT_XLSX")),
		size:          intOverride(app.Flag("size", "Image size in pixels.").Envar("STIT_SIZE")),
		preview:       app.Flag("preview", "Show the tessellation inline (iTerm).").Envar("STIT_PREVIEW").Bool(),
	}
}

func (f *runFlags) apply(c *config.Config) {
	f.sides.apply(&c.Polygon.Sides)
	f.scale.apply(&c.Polygon.Scale)
	f.svg.apply(&c.Polygon.SVG)
	f.stopTime.apply(&c.StopTime)
	f.maxIterations.apply(&c.MaxIterations)
	f.maxRejections.apply(&c.MaxRejections)
	f.seed.apply(&c.Seed)
	f.distribution.apply(&c.Distribution.Name)
	for name, param := range map[string]*override[float64]{"p": f.p, "mu": f.mu, "kappa": f.kappa} {
		if !param.set {
			continue
		}
		if c.Distribution.Params == nil {
			c.Distribution.Params = map[string]float64{}
		}
		c.Distribution.Params[name] = param.value
	}
	f.runs.apply(&c.Ensemble.Runs)
	f.workers.apply(&c.Ensemble.Workers)
	f.png.apply(&c.Output.PNG)
	f.dxf.apply(&c.Output.DXF)
	f.pdf.apply(&c.Output.PDF)
	f.xlsx.apply(&c.Output.XLSX)
	f.size.apply(&c.Output.Size)
	if *f.preview {
		c.Output.Preview = true
	}
}

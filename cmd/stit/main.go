package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/stit"
	"github.com/osuushi/stit/advanced"
	"github.com/osuushi/stit/config"
	"github.com/osuushi/stit/dbg"
	"github.com/osuushi/stit/ensemble"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("stit", "Simulate STIT random tessellations of a convex window.")
	configPath = app.Flag("config", "YAML run configuration. Flags override its values.").Short('c').Envar("STIT_CONFIG").ExistingFile()
	fromStdin  = app.Flag("stdin", `Read the window from stdin as "x y" lines.`).Bool()
	verbose    = app.Flag("verbose", "Trace every simulation step.").Short('v').Envar("STIT_VERBOSE").Bool()
	noColor    = app.Flag("no-color", "Disable coloured output.").Envar("NO_COLOR").Bool()
	dumpConfig = app.Flag("dump-config", "Print the effective configuration and exit.").Bool()
	flags      = newRunFlags(app)

	au aurora.Aurora
)

// Demo of STIT tessellation. The window is a regular polygon by default, or
// comes from an SVG file or stdin. A single run can be traced step by step; an
// ensemble of runs is summarised and optionally written to a spreadsheet.
func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	log.SetFlags(0)
	au = aurora.NewAurora(!*noColor)

	c, err := loadConfig()
	app.FatalIfError(err, "configuration")
	if *dumpConfig {
		app.FatalIfError(c.Write(os.Stdout), "")
		return
	}

	window, err := loadWindow(c)
	app.FatalIfError(err, "window")

	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed %d", c.Seed)

	if c.Ensemble.Runs > 1 {
		err = runEnsemble(window, c)
	} else {
		err = runSingle(window, c)
	}
	app.FatalIfError(err, "")
}

func loadConfig() (config.Config, error) {
	c := config.Default()
	if *configPath != "" {
		var err error
		if c, err = config.Load(*configPath); err != nil {
			return c, err
		}
	}
	flags.apply(&c)
	return c, c.Validate()
}

func loadWindow(c config.Config) (advanced.Polygon, error) {
	if !*fromStdin {
		return c.Window()
	}
	polygons, err := readPolygons(os.Stdin)
	if err != nil {
		return advanced.Polygon{}, err
	}
	if len(polygons) > 1 {
		log.Printf("%s %d polygons on stdin, using the first", au.Yellow("warning:"), len(polygons))
	}
	return polygons[0].Scale(c.Polygon.Scale), nil
}

func runSingle(window advanced.Polygon, c config.Config) error {
	engine, err := c.Engine()
	if err != nil {
		return err
	}
	engine.OnWarning = func(err error) {
		log.Printf("%s %v", au.Yellow("warning:"), err)
	}
	if *verbose {
		engine.Trace = traceStep
	}

	result, err := stit.Simulate(window, engine)
	if err != nil {
		return err
	}
	log.Printf("%d cells after %d iterations (%d cuts), elapsed %.4f of %g",
		au.Bold(len(result.Cells)), result.Iterations, result.Cuts, result.Elapsed, c.StopTime)
	return writeOutputs(result, c.Output)
}

func traceStep(step advanced.Step) {
	verb := au.Green("split")
	if !step.Cut {
		verb = au.Red("kept")
	}
	log.Printf("%4d t=%-9.4f %s %s (perimeter %.3f) along %v -> %s",
		step.Iteration, step.Elapsed, verb, au.Cyan(dbg.Name(step.Parent)), step.Perimeter, step.Line,
		strings.Join(dbg.Names(step.Children), ", "))
}

func runEnsemble(window advanced.Polygon, c config.Config) error {
	engine, err := c.Engine()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	realizations, err := ensemble.Run(ctx, window, engine, ensemble.Options{
		Runs:    c.Ensemble.Runs,
		Workers: c.Ensemble.Workers,
		Seed:    c.Seed,
	})
	if err != nil {
		return err
	}

	summary := ensemble.Summarize(realizations)
	log.Printf("%d runs in %v", au.Bold(summary.Runs), time.Since(start).Round(time.Millisecond))
	log.Printf("cells per run   %.2f ± %.2f", summary.MeanCells, summary.StdCells)
	log.Printf("mean cell area  %.6f", summary.MeanArea)
	log.Printf("mean elapsed    %.4f", summary.MeanElapsed)
	if summary.Warnings > 0 {
		log.Printf("%s %d warnings, %d runs hit the iteration cap", au.Yellow("warning:"), summary.Warnings, summary.CapHits)
	}

	if c.Output.XLSX != "" {
		if err := ensemble.WriteXLSX(c.Output.XLSX, realizations); err != nil {
			return err
		}
		log.Printf("wrote %s", c.Output.XLSX)
	}
	// Drawings show the first realization
	return writeOutputs(realizations[0].Result, c.Output)
}

func init() {
	app.Version("0.1.0")
	app.HelpFlag.Short('h')
}

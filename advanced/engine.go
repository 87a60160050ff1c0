package advanced

import (
	"container/heap"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
)

const DefaultMaxIterations = 500

type Config struct {
	// Simulation time to reach. The step that crosses it still runs, so the
	// final elapsed time usually overshoots.
	StopTime float64
	// Cap on simulation steps. Zero means DefaultMaxIterations.
	MaxIterations int
	Distribution  AngleDistribution
	// Random source for angles, offsets and clocks. Nil means a PCG source
	// seeded from the clock.
	Source Source
	// Optional cap on rejected candidates per line draw. Zero means unbounded.
	MaxRejections int

	// Called for each warning as it happens, in addition to Result.Warnings.
	OnWarning func(error)
	// Called after every step.
	Trace func(Step)
}

// Step describes one simulation step for tracing.
type Step struct {
	Iteration int
	Elapsed   float64
	Parent    int
	// Perimeter of the parent, which was its splitting rate.
	Perimeter float64
	Line      Line
	// Ids of the cells that replaced the parent. When the cut failed this is
	// a single id for the re-queued parent.
	Children []int
	Cut      bool
}

type Result struct {
	// The live cells, in the order they were created.
	Cells      []Polygon
	Elapsed    float64
	Iterations int
	Cuts       int
	Warnings   []error
}

type simulation struct {
	config  Config
	source  Source
	queue   clockQueue
	nextID  int
	elapsed float64
	result  Result
}

func (config Config) validate() error {
	if !(config.StopTime > 0) {
		return errors.Wrapf(ErrInvalidConfig, "stop time must be positive, got %v", config.StopTime)
	}
	if config.MaxIterations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max iterations must not be negative, got %d", config.MaxIterations)
	}
	if config.MaxRejections < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max rejections must not be negative, got %d", config.MaxRejections)
	}
	return config.Distribution.Validate()
}

// Simulate runs a STIT tessellation on polygon.
//
// Every live cell carries an exponential clock with rate equal to its
// perimeter. At each step the cell whose clock rings first is split by a random
// line crossing it, and both pieces get fresh clocks. The run stops once the
// elapsed time exceeds config.StopTime, checked before each step, or after
// config.MaxIterations steps.
func Simulate(polygon Polygon, config Config) (Result, error) {
	if polygon.N() < 4 {
		return Result{}, errors.Wrap(ErrTooFewVertices, "initial polygon")
	}
	if err := config.validate(); err != nil {
		return Result{}, err
	}
	if config.MaxIterations == 0 {
		config.MaxIterations = DefaultMaxIterations
	}
	sim := &simulation{config: config, source: config.Source}
	if sim.source == nil {
		sim.source = NewPCGSource(uint64(time.Now().UnixNano()))
	}

	sim.push(polygon)
	for sim.elapsed <= config.StopTime {
		if err := sim.step(); err != nil {
			return Result{}, err
		}
		if sim.result.Iterations >= config.MaxIterations {
			if sim.elapsed <= config.StopTime {
				sim.warn(errors.Wrapf(ErrIterationCap, "stopped after %d iterations at time %g of %g", sim.result.Iterations, sim.elapsed, config.StopTime))
			}
			break
		}
	}
	return sim.finish(), nil
}

// Add a cell with a fresh clock starting at the current elapsed time.
func (sim *simulation) push(polygon Polygon) int {
	perimeter := polygon.Perimeter()
	c := &cell{
		id:        sim.nextID,
		polygon:   polygon,
		perimeter: perimeter,
		deadline:  sim.elapsed + sim.source.Exponential(perimeter),
	}
	sim.nextID++
	heap.Push(&sim.queue, c)
	return c.id
}

func (sim *simulation) step() error {
	c := heap.Pop(&sim.queue).(*cell)
	sim.elapsed = c.deadline
	if math.IsInf(sim.elapsed, 1) {
		// Nothing left that can split. Put the cell back so it is reported.
		heap.Push(&sim.queue, c)
		sim.warn(errors.Wrapf(ErrClockStalled, "cell %d, perimeter %g", c.id, c.perimeter))
		return nil
	}

	line, err := c.polygon.sampleLine(sim.config.Distribution, sim.source, sim.config.MaxRejections)
	if err != nil {
		return err
	}
	pieces, ok := c.polygon.CutPoly(line)
	if ok {
		sim.result.Cuts++
	} else {
		sim.warn(errors.Wrapf(ErrCutFailed, "cell %d, line %v", c.id, line))
	}

	children := make([]int, len(pieces))
	for i, piece := range pieces {
		children[i] = sim.push(piece)
	}
	sim.result.Iterations++

	if sim.config.Trace != nil {
		sim.config.Trace(Step{
			Iteration: sim.result.Iterations,
			Elapsed:   sim.elapsed,
			Parent:    c.id,
			Perimeter: c.perimeter,
			Line:      line,
			Children:  children,
			Cut:       ok,
		})
	}
	return nil
}

func (sim *simulation) warn(err error) {
	sim.result.Warnings = append(sim.result.Warnings, err)
	if sim.config.OnWarning != nil {
		sim.config.OnWarning(err)
	}
}

func (sim *simulation) finish() Result {
	cells := make([]*cell, len(sim.queue))
	copy(cells, sim.queue)
	sort.Slice(cells, func(i, j int) bool {
		return cells[i].id < cells[j].id
	})
	result := sim.result
	result.Elapsed = sim.elapsed
	result.Cells = make([]Polygon, len(cells))
	for i, c := range cells {
		result.Cells[i] = c.polygon
	}
	return result
}

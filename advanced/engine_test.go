package advanced

import (
	"container/heap"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateSquare(t *testing.T) {
	square := regular(t, 4)
	for seed := uint64(0); seed < 20; seed++ {
		result, err := Simulate(square, Config{
			StopTime: 2,
			Source:   NewPCGSource(seed),
		})
		require.NoError(t, err)
		require.NotEmpty(t, result.Cells)

		assert.InDelta(t, 2.0, totalArea(result.Cells), 1e-9)
		assert.Equal(t, result.Cuts+1, len(result.Cells))
		assert.Greater(t, result.Elapsed, 2.0, "the last step overshoots the stop time")
		for _, cell := range result.Cells {
			assert.Greater(t, cell.Area(), 0.0)
			assert.Equal(t, cell.Vertex(0), cell.Vertex(cell.N()-1))
		}
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	run := func() Result {
		result, err := Simulate(regular(t, 5), Config{StopTime: 3, Source: NewPCGSource(99)})
		require.NoError(t, err)
		return result
	}
	first, second := run(), run()
	require.Equal(t, len(first.Cells), len(second.Cells))
	for i := range first.Cells {
		assert.Equal(t, first.Cells[i].Points(), second.Cells[i].Points())
	}
	assert.Equal(t, first.Elapsed, second.Elapsed)
}

func TestSimulateIterationCap(t *testing.T) {
	t.Run("cap before stop time", func(t *testing.T) {
		var warnings []error
		result, err := Simulate(regular(t, 4), Config{
			StopTime:      1e6,
			MaxIterations: 1,
			Source:        NewPCGSource(1),
			OnWarning: func(err error) {
				warnings = append(warnings, err)
			},
		})
		require.NoError(t, err)
		assert.Len(t, result.Cells, 2)
		assert.Equal(t, 1, result.Iterations)
		require.Len(t, result.Warnings, 1)
		assert.True(t, errors.Is(result.Warnings[0], ErrIterationCap))
		assert.Equal(t, result.Warnings, warnings)
	})

	t.Run("stop time already passed", func(t *testing.T) {
		result, err := Simulate(regular(t, 4), Config{
			StopTime:      1e-12,
			MaxIterations: 1,
			Source:        NewPCGSource(1),
		})
		require.NoError(t, err)
		assert.Len(t, result.Cells, 2)
		assert.Empty(t, result.Warnings)
	})

	t.Run("default cap", func(t *testing.T) {
		result, err := Simulate(regular(t, 4), Config{StopTime: 1e6, Source: NewPCGSource(2)})
		require.NoError(t, err)
		assert.Equal(t, DefaultMaxIterations, result.Iterations)
		assert.Len(t, result.Cells, DefaultMaxIterations+1)
		assert.InDelta(t, 2.0, totalArea(result.Cells), 1e-8)
	})
}

func TestSimulateTrace(t *testing.T) {
	var steps []Step
	result, err := Simulate(regular(t, 6), Config{
		StopTime: 1,
		Source:   NewPCGSource(3),
		Trace: func(step Step) {
			steps = append(steps, step)
		},
	})
	require.NoError(t, err)
	require.Len(t, steps, result.Iterations)

	var previous float64
	for i, step := range steps {
		assert.Equal(t, i+1, step.Iteration)
		assert.GreaterOrEqual(t, step.Elapsed, previous, "time never runs backwards")
		assert.Greater(t, step.Perimeter, 0.0)
		previous = step.Elapsed
		if step.Cut {
			assert.Len(t, step.Children, 2)
		}
	}
	assert.Equal(t, previous, result.Elapsed)
}

// Cells multiply and shrink as time goes on.
func TestSimulateGrowsWithStopTime(t *testing.T) {
	square := regular(t, 4)
	meanCells := func(stopTime float64) (cells float64, area float64) {
		const runs = 100
		for seed := uint64(0); seed < runs; seed++ {
			result, err := Simulate(square, Config{StopTime: stopTime, Source: NewPCGSource(1000 + seed)})
			require.NoError(t, err)
			cells += float64(len(result.Cells))
			area += totalArea(result.Cells) / float64(len(result.Cells))
		}
		return cells / runs, area / runs
	}

	previousCells, previousArea := meanCells(0.5)
	for _, stopTime := range []float64{2, 5} {
		cells, area := meanCells(stopTime)
		assert.Greater(t, cells, previousCells, "stop time %v", stopTime)
		assert.Less(t, area, previousArea, "stop time %v", stopTime)
		previousCells, previousArea = cells, area
	}
}

func TestSimulateDistributions(t *testing.T) {
	square := unitSquare(t)
	for name, dist := range map[string]AngleDistribution{
		"side":     SideAngles(0.5),
		"vonmises": VonMisesAngles(math.Pi/3, 4),
		"custom":   CustomAngles(func() float64 { return math.Pi / 4 }),
	} {
		t.Run(name, func(t *testing.T) {
			result, err := Simulate(square, Config{
				StopTime:     3,
				Distribution: dist,
				Source:       NewPCGSource(12),
			})
			require.NoError(t, err)
			assert.InDelta(t, 1.0, totalArea(result.Cells), 1e-9)
		})
	}
}

func TestSimulateValidation(t *testing.T) {
	square := regular(t, 4)
	for name, config := range map[string]Config{
		"zero stop time":      {StopTime: 0},
		"NaN stop time":       {StopTime: math.NaN()},
		"negative iterations": {StopTime: 1, MaxIterations: -1},
		"negative rejections": {StopTime: 1, MaxRejections: -1},
	} {
		_, err := Simulate(square, config)
		assert.True(t, errors.Is(err, ErrInvalidConfig), "%s: got %v", name, err)
	}

	_, err := Simulate(square, Config{StopTime: 1, Distribution: VonMisesAngles(0, -2)})
	assert.True(t, errors.Is(err, ErrInvalidDistribution))

	_, err = Simulate(Polygon{}, Config{StopTime: 1})
	assert.True(t, errors.Is(err, ErrTooFewVertices))

	_, err = Simulate(square, Config{StopTime: 1, MaxIterations: -1})
	assert.Contains(t, err.Error(), "must not be negative")
}

// A source whose clocks never ring.
type stalledSource struct {
	*PCGSource
}

func (stalledSource) Exponential(float64) float64 {
	return math.Inf(1)
}

func TestSimulateStalledClock(t *testing.T) {
	square := regular(t, 4)
	var warned []error
	result, err := Simulate(square, Config{
		StopTime:  1,
		Source:    stalledSource{NewPCGSource(5)},
		OnWarning: func(err error) { warned = append(warned, err) },
	})
	require.NoError(t, err)
	require.Len(t, result.Cells, 1)
	assert.Equal(t, square.Points(), result.Cells[0].Points())
	assert.Equal(t, 0, result.Iterations)
	require.Len(t, result.Warnings, 1)
	assert.True(t, errors.Is(result.Warnings[0], ErrClockStalled), "got %v", result.Warnings[0])
	assert.Equal(t, result.Warnings, warned)
}

func TestSimulateDefaultSource(t *testing.T) {
	result, err := Simulate(regular(t, 3), Config{StopTime: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, regular(t, 3).Area(), totalArea(result.Cells), 1e-9)
}

func TestClockQueueOrdering(t *testing.T) {
	q := &clockQueue{}
	for i, deadline := range []float64{3, 1, 2, 1} {
		heap.Push(q, &cell{id: i, deadline: deadline})
	}
	var order []int
	for q.Len() > 0 {
		order = append(order, heap.Pop(q).(*cell).id)
	}
	// Ties go to the older cell
	assert.Equal(t, []int{1, 3, 2, 0}, order)
}

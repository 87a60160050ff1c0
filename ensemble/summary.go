package ensemble

import (
	"math"

	"github.com/osuushi/stit/advanced"
	"github.com/pkg/errors"
)

type Summary struct {
	Runs int
	// Mean and standard deviation of the cell count per run.
	MeanCells float64
	StdCells  float64
	// Mean area of a single cell, over every cell of every run.
	MeanArea    float64
	MeanElapsed float64
	MeanCuts    float64
	// Total warnings, and how many runs hit the iteration cap.
	Warnings int
	CapHits  int
}

func Summarize(realizations []Realization) Summary {
	summary := Summary{Runs: len(realizations)}
	if summary.Runs == 0 {
		return summary
	}

	var cells, cellsSquared, area float64
	var totalCells int
	for _, r := range realizations {
		n := float64(len(r.Result.Cells))
		cells += n
		cellsSquared += n * n
		for _, cell := range r.Result.Cells {
			area += cell.Area()
		}
		totalCells += len(r.Result.Cells)
		summary.MeanElapsed += r.Result.Elapsed
		summary.MeanCuts += float64(r.Result.Cuts)
		summary.Warnings += len(r.Result.Warnings)
		for _, warning := range r.Result.Warnings {
			if errors.Is(warning, advanced.ErrIterationCap) {
				summary.CapHits++
				break
			}
		}
	}

	runs := float64(summary.Runs)
	summary.MeanCells = cells / runs
	summary.StdCells = math.Sqrt(math.Max(0, cellsSquared/runs-summary.MeanCells*summary.MeanCells))
	summary.MeanElapsed /= runs
	summary.MeanCuts /= runs
	if totalCells > 0 {
		summary.MeanArea = area / float64(totalCells)
	}
	return summary
}

package ensemble

import (
	"github.com/osuushi/stit/advanced"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	RunsSheet  = "Runs"
	CellsSheet = "Cells"
)

var (
	runsHeader  = []interface{}{"ID", "Run", "Seed", "Cells", "Cuts", "Iterations", "Elapsed", "Mean area", "Warnings"}
	cellsHeader = []interface{}{"Run ID", "Run", "Cell", "Vertices", "Area", "Perimeter", "Centroid X", "Centroid Y"}
)

// WriteXLSX saves a workbook with one row per run on the Runs sheet and one
// row per cell on the Cells sheet.
func WriteXLSX(path string, realizations []Realization) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RunsSheet); err != nil {
		return errors.Wrap(err, "naming runs sheet")
	}
	if _, err := f.NewSheet(CellsSheet); err != nil {
		return errors.Wrap(err, "adding cells sheet")
	}

	if err := setRow(f, RunsSheet, 1, runsHeader); err != nil {
		return err
	}
	if err := setRow(f, CellsSheet, 1, cellsHeader); err != nil {
		return err
	}

	cellRow := 2
	for i, r := range realizations {
		result := r.Result
		var meanArea float64
		if len(result.Cells) > 0 {
			meanArea = totalArea(result.Cells) / float64(len(result.Cells))
		}
		row := []interface{}{r.ID, r.Index, r.Seed, len(result.Cells), result.Cuts, result.Iterations, result.Elapsed, meanArea, len(result.Warnings)}
		if err := setRow(f, RunsSheet, i+2, row); err != nil {
			return err
		}

		for j, cell := range result.Cells {
			centroid := cell.Centroid()
			// N counts the closing point
			row := []interface{}{r.ID, r.Index, j, cell.N() - 1, cell.Area(), cell.Perimeter(), centroid.X, centroid.Y}
			if err := setRow(f, CellsSheet, cellRow, row); err != nil {
				return err
			}
			cellRow++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "writing xlsx %s", path)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrapf(err, "row %d", row)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "writing %s row %d", sheet, row)
	}
	return nil
}

func totalArea(cells []advanced.Polygon) float64 {
	var sum float64
	for _, cell := range cells {
		sum += cell.Area()
	}
	return sum
}

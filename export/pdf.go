package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/osuushi/stit/advanced"
	"github.com/pkg/errors"
)

// Page layout, A4 portrait in mm.
const (
	pdfPageWidth  = 210.0
	pdfPageHeight = 297.0
	pdfMargin     = 15.0
	pdfHeader     = 20.0
)

// WritePDF saves a single page with a summary of the run above a drawing of
// the cells.
func WritePDF(path string, result advanced.Result) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(pdfMargin, pdfMargin)
	pdf.CellFormat(pdfPageWidth-2*pdfMargin, 8, "STIT tessellation", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pdfMargin, pdfMargin+8)
	stats := fmt.Sprintf("Cells: %d | Cuts: %d | Iterations: %d | Elapsed: %.4f | Warnings: %d",
		len(result.Cells), result.Cuts, result.Iterations, result.Elapsed, len(result.Warnings))
	pdf.CellFormat(pdfPageWidth-2*pdfMargin, 5, stats, "", 0, "L", false, 0, "")

	drawTop := pdfMargin + pdfHeader
	drawSize := pdfPageWidth - 2*pdfMargin
	if len(result.Cells) > 0 {
		f := newFit(result.Cells, drawSize, drawSize, 0)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		for i, cell := range result.Cells {
			points := cell.Points()
			polygon := make([]fpdf.PointType, 0, len(points)-1)
			for _, p := range points[:len(points)-1] {
				x, y := f.apply(p)
				polygon = append(polygon, fpdf.PointType{X: pdfMargin + x, Y: drawTop + y})
			}
			r, g, b := cellColor(i)
			pdf.SetFillColor(int(r*255), int(g*255), int(b*255))
			pdf.Polygon(polygon, "FD")
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrapf(err, "writing pdf %s", path)
	}
	return nil
}

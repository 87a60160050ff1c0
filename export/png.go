package export

import (
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/stit/advanced"
	"github.com/pkg/errors"
)

// Padding around the tessellation, in pixels
const drawPadding = 20

// RenderImage draws the cells onto a size x size canvas, each filled with its
// own colour and stroked in dark grey.
func RenderImage(cells []advanced.Polygon, size int) image.Image {
	return render(cells, size).Image()
}

func render(cells []advanced.Polygon, size int) *gg.Context {
	c := gg.NewContext(size, size)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(size), float64(size))
	c.Fill()
	if len(cells) == 0 {
		return c
	}

	f := newFit(cells, float64(size), float64(size), drawPadding)
	c.SetLineWidth(1.5)
	for i, cell := range cells {
		points := cell.Points()
		// The closing point is implied by ClosePath
		for j, p := range points[:len(points)-1] {
			x, y := f.apply(p)
			if j == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		c.SetRGB(cellColor(i))
		c.FillPreserve()
		c.SetRGB(0.15, 0.15, 0.15)
		c.Stroke()
	}
	return c
}

// WritePNG renders the cells and saves them to path.
func WritePNG(path string, cells []advanced.Polygon, size int) error {
	if err := render(cells, size).SavePNG(path); err != nil {
		return errors.Wrapf(err, "writing png %s", path)
	}
	return nil
}

// EncodePNG renders the cells as PNG data onto w.
func EncodePNG(w io.Writer, cells []advanced.Polygon, size int) error {
	return errors.Wrap(render(cells, size).EncodePNG(w), "encoding png")
}

// Preview prints the tessellation inline in the terminal (iTerm only).
func Preview(w io.Writer, cells []advanced.Polygon, size int) error {
	dir, err := os.MkdirTemp("", "stit")
	if err != nil {
		return errors.Wrap(err, "creating preview directory")
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tessellation.png")
	if err := WritePNG(path, cells, size); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}

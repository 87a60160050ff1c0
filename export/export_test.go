package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/stit/advanced"
	"github.com/osuushi/stit/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// The unit square split at x = 0.25.
func splitSquare(t *testing.T) []advanced.Polygon {
	pieces, ok := internal.Square(1).CutPoly(advanced.Line{Rho: 0.25, Theta: 0})
	require.True(t, ok)
	require.Len(t, pieces, 2)
	return pieces
}

func TestRenderImage(t *testing.T) {
	img := RenderImage(splitSquare(t), 200)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	white := func(x, y int) bool {
		r, g, b, _ := img.At(x, y).RGBA()
		return r == 0xffff && g == 0xffff && b == 0xffff
	}
	assert.True(t, white(5, 5), "padding should be blank")
	assert.False(t, white(40, 100), "left cell should be filled")
	assert.False(t, white(120, 100), "right cell should be filled")
	assert.NotEqual(t, img.At(40, 100), img.At(120, 100), "cells should have distinct colours")

	t.Run("no cells", func(t *testing.T) {
		img := RenderImage(nil, 50)
		r, g, b, _ := img.At(25, 25).RGBA()
		assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
	})
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cells.png")
	require.NoError(t, WritePNG(path, splitSquare(t), 120))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())

	t.Run("bad path", func(t *testing.T) {
		err := WritePNG(filepath.Join(t.TempDir(), "missing", "cells.png"), splitSquare(t), 10)
		assert.Error(t, err)
	})
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, splitSquare(t), 64))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestPreview(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Preview(&buf, splitSquare(t), 32))
	assert.NotZero(t, buf.Len())
}

func TestWriteDXF(t *testing.T) {
	cells := splitSquare(t)
	path := filepath.Join(t.TempDir(), "cells.dxf")
	require.NoError(t, WriteDXF(path, cells))

	drawing, err := dxf.Open(path)
	require.NoError(t, err)

	var polylines []*entity.LwPolyline
	for _, ent := range drawing.Entities() {
		if lw, ok := ent.(*entity.LwPolyline); ok {
			polylines = append(polylines, lw)
		}
	}
	require.Len(t, polylines, len(cells))

	for i, lw := range polylines {
		points := cells[i].Points()
		require.Len(t, lw.Vertices, len(points)-1)
		for j, v := range lw.Vertices {
			assert.InDelta(t, points[j].X, v[0], 1e-6)
			assert.InDelta(t, points[j].Y, v[1], 1e-6)
		}
	}
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cells.pdf")
	result := advanced.Result{Cells: splitSquare(t), Cuts: 1, Iterations: 1, Elapsed: 0.7}
	require.NoError(t, WritePDF(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	t.Run("empty result", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.pdf")
		assert.NoError(t, WritePDF(path, advanced.Result{}))
	})
}

func TestHSV(t *testing.T) {
	r, g, b := hsv(0, 0, 1)
	assert.Equal(t, []float64{1, 1, 1}, []float64{r, g, b})
	r, g, b = hsv(0, 1, 1)
	assert.Equal(t, []float64{1, 0, 0}, []float64{r, g, b})
	r, g, b = hsv(1.0/3, 1, 1)
	assert.InDelta(t, 0, r, 1e-12)
	assert.InDelta(t, 1, g, 1e-12)
	assert.InDelta(t, 0, b, 1e-12)
}

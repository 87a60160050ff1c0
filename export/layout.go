package export

import (
	"math"

	"github.com/osuushi/stit/advanced"
)

// Bounding rectangle of a set of cells.
func bounds(cells []advanced.Polygon) advanced.Rect {
	rect := advanced.Rect{
		Min: advanced.Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: advanced.Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, cell := range cells {
		r := cell.EnclosingRectangle()
		rect.Min.X = math.Min(rect.Min.X, r.Min.X)
		rect.Min.Y = math.Min(rect.Min.Y, r.Min.Y)
		rect.Max.X = math.Max(rect.Max.X, r.Max.X)
		rect.Max.Y = math.Max(rect.Max.Y, r.Max.Y)
	}
	return rect
}

// fit maps tessellation coordinates onto a width x height canvas with padding
// on every side, keeping the aspect ratio. Y is flipped so that the origin is
// at the bottom left, as in the plane.
type fit struct {
	rect    advanced.Rect
	scale   float64
	offsetX float64
	offsetY float64
	height  float64
}

func newFit(cells []advanced.Polygon, width, height, padding float64) fit {
	rect := bounds(cells)
	scale := math.Min((width-2*padding)/math.Max(rect.Width(), 1e-12), (height-2*padding)/math.Max(rect.Height(), 1e-12))
	return fit{
		rect:    rect,
		scale:   scale,
		offsetX: (width - scale*rect.Width()) / 2,
		offsetY: (height - scale*rect.Height()) / 2,
		height:  height,
	}
}

func (f fit) apply(p advanced.Point) (x, y float64) {
	x = f.offsetX + (p.X-f.rect.Min.X)*f.scale
	y = f.height - (f.offsetY + (p.Y-f.rect.Min.Y)*f.scale)
	return x, y
}

// Fill colour for the i-th cell. Hues are spread by the golden angle so that
// neighbours created one after another don't look alike.
func cellColor(i int) (r, g, b float64) {
	hue := math.Mod(float64(i)*0.618033988749895, 1)
	return hsv(hue, 0.45, 0.95)
}

func hsv(h, s, v float64) (r, g, b float64) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

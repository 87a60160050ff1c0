package export

import (
	"github.com/osuushi/stit/advanced"
	"github.com/pkg/errors"
	"github.com/yofu/dxf"
)

// WriteDXF saves every cell as a closed LWPOLYLINE on the default layer, in
// tessellation coordinates. The closing point is implied by the closed flag.
func WriteDXF(path string, cells []advanced.Polygon) error {
	d := dxf.NewDrawing()
	for i, cell := range cells {
		points := cell.Points()
		vertices := make([][]float64, 0, len(points)-1)
		for _, p := range points[:len(points)-1] {
			vertices = append(vertices, []float64{p.X, p.Y})
		}
		if _, err := d.LwPolyline(true, vertices...); err != nil {
			return errors.Wrapf(err, "adding cell %d to drawing", i)
		}
	}
	if err := d.SaveAs(path); err != nil {
		return errors.Wrapf(err, "writing dxf %s", path)
	}
	return nil
}

package icongen

import (
	"image"

	"golang.org/x/image/vector"
)

// FillPath fills the path with a solid color, anti-aliased, compositing
// over the existing pixels.
func (p *Pixmap) FillPath(path *Path, c RGBA) {
	r := vector.NewRasterizer(p.Width(), p.Height())

	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			r.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case LineTo:
			r.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case CubicTo:
			r.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case Close:
			r.ClosePath()
		}
	}

	r.Draw(p.img, p.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

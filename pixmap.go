package icongen

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Pixmap represents a rectangular pixel buffer with straight
// (non-premultiplied) 8-bit RGBA storage.
type Pixmap struct {
	img *image.NRGBA
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		img: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (straight RGBA, 4 bytes per pixel).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// Image returns the backing image.
func (p *Pixmap) Image() *image.NRGBA {
	return p.img
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.Width() || y < 0 || y >= p.Height() {
		return
	}
	p.img.SetNRGBA(x, y, c.NRGBA())
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.Width() || y < 0 || y >= p.Height() {
		return Transparent
	}
	c := p.img.NRGBAAt(x, y)
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	n := c.NRGBA()
	pix := p.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = n.R
		pix[i+1] = n.G
		pix[i+2] = n.B
		pix[i+3] = n.A
	}
}

// Composite draws src over p using source-over blending with src's
// per-pixel alpha. The two pixmaps must share dimensions; mismatched
// regions outside p's bounds are ignored.
func (p *Pixmap) Composite(src *Pixmap) {
	w := min(p.Width(), src.Width())
	h := min(p.Height(), src.Height())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s := src.GetPixel(x, y)
			if s.A == 0 {
				continue
			}
			if s.A >= 1 {
				p.SetPixel(x, y, s)
				continue
			}
			d := p.GetPixel(x, y)
			outA := s.A + d.A*(1-s.A)
			if d.A >= 1 {
				// An opaque destination stays exactly opaque; float
				// rounding must not leak residual transparency.
				outA = 1
			}
			if outA == 0 {
				continue
			}
			p.SetPixel(x, y, RGBA{
				R: (s.R*s.A + d.R*d.A*(1-s.A)) / outA,
				G: (s.G*s.A + d.G*d.A*(1-s.A)) / outA,
				B: (s.B*s.A + d.B*d.A*(1-s.A)) / outA,
				A: outA,
			})
		}
	}
}

// SavePNG saves the pixmap to a PNG file. The write is atomic: the image
// is encoded to a temporary file in the destination directory and renamed
// into place, so a failed save never leaves a partial file under the
// final name.
func (p *Pixmap) SavePNG(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()

	if err := png.Encode(tmp, p.img); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "close %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "rename into %s", path)
	}
	return nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Bounds()
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

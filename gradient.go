package icongen

// VerticalGradient is a two-stop linear gradient running from the top
// row of an image to the bottom row.
type VerticalGradient struct {
	Top    RGBA // color at row 0
	Bottom RGBA // color at the last row
}

// At returns the interpolated color for row y of an image with the given
// height. Row 0 is exactly Top and row height-1 is exactly Bottom;
// intermediate rows interpolate per channel.
func (g VerticalGradient) At(y, height int) RGBA {
	if height <= 1 || y <= 0 {
		return g.Top
	}
	// Return the endpoint directly so float rounding in the lerp can
	// never shift the first or last row off the stop colors.
	if y >= height-1 {
		return g.Bottom
	}
	t := float64(y) / float64(height-1)
	return g.Top.Lerp(g.Bottom, t)
}

// FillGradient fills the pixmap with a vertical gradient, one color per
// scanline.
func (p *Pixmap) FillGradient(g VerticalGradient) {
	w, h := p.Width(), p.Height()
	for y := 0; y < h; y++ {
		c := g.At(y, h).NRGBA()
		row := p.img.Pix[y*p.img.Stride : y*p.img.Stride+w*4]
		for x := 0; x < w*4; x += 4 {
			row[x+0] = c.R
			row[x+1] = c.G
			row[x+2] = c.B
			row[x+3] = c.A
		}
	}
}

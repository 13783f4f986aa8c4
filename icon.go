package icongen

import "github.com/pkg/errors"

// Brand palette.
var (
	SkyBlue      = Hex("#4DA6FF") // bubble body and tail
	SkyBlueLight = Hex("#66B2FF") // gradient top
	Peach        = Hex("#FFB997") // sparkle accent
	shadowColor  = Black.WithAlpha(30.0 / 255)
	dotColor     = White.WithAlpha(200.0 / 255)
)

// referenceSize is the design size all geometry is expressed against.
const referenceSize = 1024.0

// geometry holds the derived icon measurements for one output size.
// Every field is a linear function of the requested size.
type geometry struct {
	scale float64

	bubbleSize   float64 // side of the square bubble
	bubbleX      float64 // left edge
	bubbleY      float64 // top edge
	cornerRadius float64 // 25% of the bubble side
	shadowOffset float64

	tailSize float64
	tailX    float64 // 20% inset from the bubble's left edge
	tailY    float64 // bubble bottom edge

	sparkleCX   float64 // bubble center
	sparkleCY   float64
	sparkleSize float64

	dotRadius   float64
	dotDistance float64 // diagonal offset of the accent dots
}

func computeGeometry(size int) geometry {
	s := float64(size) / referenceSize

	g := geometry{scale: s}
	g.bubbleSize = 700 * s
	g.bubbleX = (float64(size) - g.bubbleSize) / 2
	g.bubbleY = (float64(size)-g.bubbleSize)/2 - 40*s // up a little for tail room
	g.cornerRadius = g.bubbleSize * 0.25
	g.shadowOffset = 8 * s

	g.tailSize = 60 * s
	g.tailX = g.bubbleX + g.bubbleSize*0.2
	g.tailY = g.bubbleY + g.bubbleSize

	g.sparkleCX = g.bubbleX + g.bubbleSize/2
	g.sparkleCY = g.bubbleY + g.bubbleSize/2
	g.sparkleSize = 200 * s

	g.dotRadius = 10 * s
	g.dotDistance = g.sparkleSize * 0.8
	return g
}

// Render draws the app icon at the given pixel size and returns the
// final, fully opaque pixmap. The size must be positive.
func Render(size int) (*Pixmap, error) {
	if size <= 0 {
		return nil, errors.Errorf("icon size must be positive, got %d", size)
	}

	g := computeGeometry(size)
	layer := NewPixmap(size, size)

	// Drop shadow behind the bubble.
	shadow := NewPath()
	shadow.RoundedRectangle(
		g.bubbleX+g.shadowOffset, g.bubbleY+g.shadowOffset,
		g.bubbleSize, g.bubbleSize, g.cornerRadius,
	)
	layer.FillPath(shadow, shadowColor)

	// Bubble body.
	bubble := NewPath()
	bubble.RoundedRectangle(g.bubbleX, g.bubbleY, g.bubbleSize, g.bubbleSize, g.cornerRadius)
	layer.FillPath(bubble, SkyBlue)

	// Tail below the bubble.
	tail := NewPath()
	tail.Polygon(
		Pt(g.tailX, g.tailY),
		Pt(g.tailX+g.tailSize, g.tailY),
		Pt(g.tailX+g.tailSize/2, g.tailY+g.tailSize),
	)
	layer.FillPath(tail, SkyBlue)

	// Four-pointed sparkle: two overlapping diamonds, then a smaller
	// white sparkle on top for contrast.
	drawSparkle(layer, g.sparkleCX, g.sparkleCY, g.sparkleSize, Peach)
	drawSparkle(layer, g.sparkleCX, g.sparkleCY, g.sparkleSize*0.4, White)

	// Accent dots around the sparkle.
	for _, off := range [...]Point{
		{X: g.dotDistance, Y: -g.dotDistance},
		{X: -g.dotDistance, Y: -g.dotDistance},
		{X: g.dotDistance, Y: g.dotDistance},
	} {
		dot := NewPath()
		dot.Circle(g.sparkleCX+off.X, g.sparkleCY+off.Y, g.dotRadius)
		layer.FillPath(dot, dotColor)
	}

	// Opaque gradient background, then the layer composited over it.
	bg := NewPixmap(size, size)
	bg.FillGradient(VerticalGradient{Top: SkyBlueLight, Bottom: SkyBlue})
	bg.Composite(layer)
	return bg, nil
}

// drawSparkle fills a four-pointed star at (cx, cy): a vertical and a
// horizontal diamond, each spanning the full sparkle size with a point
// width of 30% of the span.
func drawSparkle(pm *Pixmap, cx, cy, span float64, c RGBA) {
	halfLen := span / 2
	halfWidth := span * 0.3 / 2

	vertical := NewPath()
	vertical.Polygon(
		Pt(cx, cy-halfLen),
		Pt(cx+halfWidth, cy),
		Pt(cx, cy+halfLen),
		Pt(cx-halfWidth, cy),
	)
	pm.FillPath(vertical, c)

	horizontal := NewPath()
	horizontal.Polygon(
		Pt(cx-halfLen, cy),
		Pt(cx, cy-halfWidth),
		Pt(cx+halfLen, cy),
		Pt(cx, cy+halfWidth),
	)
	pm.FillPath(horizontal, c)
}

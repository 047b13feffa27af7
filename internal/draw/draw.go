// Package draw provides the render surfaces the game draws onto.
package draw

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Surface accepts the primitive draw calls of a single frame.
// Coordinates are logical field units; implementations scale them.
type Surface interface {
	// Clear fills the whole surface. Called once before a frame is drawn.
	Clear(c Color)
	// FillRect draws a filled rectangle with its top-left corner at (x, y).
	FillRect(x, y, w, h float64, c Color)
	// FillCircle draws a filled circle, blending with what is below by c.A.
	FillCircle(cx, cy, r float64, c Color)
	// Text draws s with its baseline at y. size is the font size in field units.
	Text(s string, x, y, size float64, align Align, c Color)
}

// Align is the horizontal alignment of text relative to its anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Color is an RGB color with an alpha channel in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

// MustHex parses a "#rgb" or "#rrggbb" literal as an opaque color.
// It panics on malformed input and is meant for package-level constants.
func MustHex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("draw: invalid color %q: %v", s, err))
	}
	return Color{Color: c, A: 1}
}

// RGBA builds a color from 8-bit channels and an alpha in [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{
		Color: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		A:     a,
	}
}

// WithAlpha returns a copy of c with the given alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Over composites c onto an opaque background.
func (c Color) Over(bg colorful.Color) colorful.Color {
	a := math.Max(0, math.Min(c.A, 1))
	if a >= 1 {
		return c.Clamped()
	}
	return bg.BlendRgb(c.Color, a).Clamped()
}

// NRGBA converts c to a non-premultiplied image/color value.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	a := math.Max(0, math.Min(c.A, 1))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}
}

// textOp is a queued Text call. Terminal surfaces draw text after the pixel
// canvas so that it ends up on top.
type textOp struct {
	s     string
	x, y  float64
	size  float64
	align Align
	color Color
}

// placeText computes the 0-based cell and display width of a text overlay on
// the canvas. ok is false when the text falls outside the canvas.
func placeText(c *Canvas, op textOp) (col, row, width int, ok bool) {
	width = runewidth.StringWidth(op.s)
	px := int(math.Round(op.x * c.scaleX))
	py := int(math.Floor(op.y * c.scaleY))
	row = py / 2

	switch op.align {
	case AlignCenter:
		col = px - width/2
	case AlignRight:
		col = px - width
	default:
		col = px
	}

	if row < 0 || row >= c.termHeight || width == 0 {
		return 0, 0, 0, false
	}
	if col+width > c.termWidth {
		col = c.termWidth - width
	}
	if col < 0 {
		col = 0
	}
	return col, row, width, true
}

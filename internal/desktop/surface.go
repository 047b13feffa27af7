// Package desktop runs the game in an ebiten window.
package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/invaders/internal/draw"
)

// faceHeight is the pixel height basicfont.Face7x13 is drawn at unscaled.
const faceHeight = 13.0

// Surface draws onto an ebiten image. Set Target before each frame.
type Surface struct {
	Target *ebiten.Image
	face   font.Face
}

var _ draw.Surface = (*Surface)(nil)

// NewSurface creates a surface using the built-in bitmap font.
func NewSurface() *Surface {
	return &Surface{face: basicfont.Face7x13}
}

func (s *Surface) Clear(c draw.Color) {
	s.Target.Fill(c.NRGBA())
}

func (s *Surface) FillRect(x, y, w, h float64, c draw.Color) {
	vector.DrawFilledRect(s.Target, float32(x), float32(y), float32(w), float32(h), c.NRGBA(), false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c draw.Color) {
	vector.DrawFilledCircle(s.Target, float32(cx), float32(cy), float32(r), c.NRGBA(), true)
}

// Text scales the bitmap font so that its height matches size.
func (s *Surface) Text(str string, x, y, size float64, align draw.Align, c draw.Color) {
	scale := size / faceHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(textLeft(s.face, str, x, scale, align), y)
	op.ColorScale.ScaleWithColor(c.NRGBA())
	text.DrawWithOptions(s.Target, str, s.face, op)
}

// textLeft returns the x where str starts so that x is its anchor under align.
func textLeft(face font.Face, str string, x, scale float64, align draw.Align) float64 {
	width := float64(font.MeasureString(face, str)) / 64 * scale
	switch align {
	case draw.AlignCenter:
		return x - width/2
	case draw.AlignRight:
		return x - width
	}
	return x
}

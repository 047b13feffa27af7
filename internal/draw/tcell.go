package draw

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// TcellSurface draws onto a Canvas and presents it on a tcell screen.
type TcellSurface struct {
	canvas     *Canvas
	screen     tcell.Screen
	background colorful.Color
	texts      []textOp
}

// Ensure TcellSurface satisfies Surface.
var _ Surface = (*TcellSurface)(nil)

// NewTcellSurface creates a surface for screen using the given logical size.
func NewTcellSurface(screen tcell.Screen, logicalWidth, logicalHeight float64) *TcellSurface {
	width, height := screen.Size()
	return &TcellSurface{
		canvas: NewScaledCanvas(width, height, logicalWidth, logicalHeight),
		screen: screen,
	}
}

// Canvas returns the canvas backing the surface.
func (s *TcellSurface) Canvas() *Canvas {
	return s.canvas
}

// Clear resets the canvas and drops queued text.
func (s *TcellSurface) Clear(c Color) {
	s.background = c.Over(colorful.Color{})
	s.canvas.Clear(s.background)
	s.texts = s.texts[:0]
}

// FillRect draws a rectangle onto the canvas.
func (s *TcellSurface) FillRect(x, y, w, h float64, c Color) {
	s.canvas.FillRect(x, y, w, h, c)
}

// FillCircle draws a circle onto the canvas.
func (s *TcellSurface) FillCircle(cx, cy, r float64, c Color) {
	s.canvas.FillCircle(cx, cy, r, c)
}

// Text queues a text overlay for Show.
func (s *TcellSurface) Text(str string, x, y, size float64, align Align, c Color) {
	s.texts = append(s.texts, textOp{s: str, x: x, y: y, size: size, align: align, color: c})
}

// Show copies the canvas and text to the screen and presents it.
// tcell diffs cells itself, so every cell is set every frame.
func (s *TcellSurface) Show() {
	offCol, offRow := s.canvas.OffsetCol(), s.canvas.OffsetRow()

	for row := 0; row < s.canvas.TerminalHeight(); row++ {
		for col := 0; col < s.canvas.TerminalWidth(); col++ {
			top, bottom := s.canvas.Cell(col, row)
			style := tcell.StyleDefault.
				Foreground(tcellColor(top)).
				Background(tcellColor(bottom))
			s.screen.SetContent(col+offCol, row+offRow, BlockUpperHalf, nil, style)
		}
	}

	for _, op := range s.texts {
		col, row, _, ok := placeText(s.canvas, op)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.
			Foreground(tcellColor(op.color.Over(s.background))).
			Background(tcellColor(s.background)).
			Bold(op.size >= boldFontSize)
		for _, r := range op.s {
			s.screen.SetContent(col+offCol, row+offRow, r, nil, style)
			col += runewidth.RuneWidth(r)
		}
	}

	s.screen.Show()
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

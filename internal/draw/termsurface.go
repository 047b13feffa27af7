package draw

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// boldFontSize is the font size from which terminal text is rendered bold.
// Terminals have one glyph size, so emphasis is all that is left of "big".
const boldFontSize = 40

// TerminalSurface draws onto a Canvas and renders it as ANSI escape
// sequences through a ChunkWriter. Text is styled with lipgloss and overlaid
// after the canvas.
type TerminalSurface struct {
	canvas     *Canvas
	out        *ChunkWriter
	styles     *lipgloss.Renderer
	background colorful.Color
	texts      []textOp
}

// Ensure TerminalSurface satisfies Surface.
var _ Surface = (*TerminalSurface)(nil)

// NewTerminalSurface creates a surface drawing onto canvas and writing to out.
// Colors are always emitted as 24-bit: SSH sessions have no local terminal
// to detect a color profile from.
func NewTerminalSurface(canvas *Canvas, out *ChunkWriter) *TerminalSurface {
	styles := lipgloss.NewRenderer(io.Discard)
	styles.SetColorProfile(termenv.TrueColor)
	return &TerminalSurface{
		canvas: canvas,
		out:    out,
		styles: styles,
	}
}

// Canvas returns the canvas backing the surface.
func (s *TerminalSurface) Canvas() *Canvas {
	return s.canvas
}

// Clear resets the canvas and drops queued text.
func (s *TerminalSurface) Clear(c Color) {
	s.background = c.Over(colorful.Color{})
	s.canvas.Clear(s.background)
	s.texts = s.texts[:0]
}

// FillRect draws a rectangle onto the canvas.
func (s *TerminalSurface) FillRect(x, y, w, h float64, c Color) {
	s.canvas.FillRect(x, y, w, h, c)
}

// FillCircle draws a circle onto the canvas.
func (s *TerminalSurface) FillCircle(cx, cy, r float64, c Color) {
	s.canvas.FillCircle(cx, cy, r, c)
}

// Text queues a text overlay for Flush.
func (s *TerminalSurface) Text(str string, x, y, size float64, align Align, c Color) {
	s.texts = append(s.texts, textOp{s: str, x: x, y: y, size: size, align: align, color: c})
}

// Flush writes the frame: changed canvas cells, the border, then text.
func (s *TerminalSurface) Flush() error {
	s.canvas.Render(s.out)
	s.canvas.RenderBorder(s.out)

	for _, op := range s.texts {
		col, row, width, ok := placeText(s.canvas, op)
		if !ok {
			continue
		}
		style := s.styles.NewStyle().
			Foreground(lipgloss.Color(op.color.Over(s.background).Hex())).
			Background(lipgloss.Color(s.background.Hex())).
			Bold(op.size >= boldFontSize)
		s.out.WriteAt(col+1, row+1, style.Render(op.s))

		// The canvas no longer knows what these cells show.
		s.canvas.Invalidate(col, row, width)
	}

	return s.out.Flush()
}

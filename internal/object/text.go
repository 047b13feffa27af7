package object

import "github.com/tomz197/invaders/internal/draw"

// Text is a simple drawable text object.
// (X,Y) is the baseline anchor in field units; Align picks which part of the
// string sits on X.
type Text struct {
	X, Y  float64
	Value string
	Size  float64
	Align draw.Align
	Color draw.Color
}

// Draw writes the text onto the surface. Empty text draws nothing.
func (t Text) Draw(s draw.Surface) {
	if t.Value == "" {
		return
	}
	s.Text(t.Value, t.X, t.Y, t.Size, t.Align, t.Color)
}

// Package drawtest provides a Surface that records draw calls for tests.
package drawtest

import "github.com/tomz197/invaders/internal/draw"

// Op names a recorded primitive.
type Op string

const (
	OpClear  Op = "clear"
	OpRect   Op = "rect"
	OpCircle Op = "circle"
	OpText   Op = "text"
)

// Call is one recorded draw call. Fields that do not apply to Op are zero.
type Call struct {
	Op         Op
	X, Y, W, H float64 // Rect: corner and size; Circle: center and radius in W
	Text       string
	Size       float64
	Align      draw.Align
	Color      draw.Color
}

// Recorder is a draw.Surface that remembers every call in order.
type Recorder struct {
	Calls []Call
}

var _ draw.Surface = (*Recorder)(nil)

func (r *Recorder) Clear(c draw.Color) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c draw.Color) {
	r.Calls = append(r.Calls, Call{Op: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c draw.Color) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, X: cx, Y: cy, W: radius, Color: c})
}

func (r *Recorder) Text(s string, x, y, size float64, align draw.Align, c draw.Color) {
	r.Calls = append(r.Calls, Call{Op: OpText, X: x, Y: y, Text: s, Size: size, Align: align, Color: c})
}

// Filter returns the calls of the given kind.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the strings of all text calls, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Filter(OpText) {
		out = append(out, c.Text)
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

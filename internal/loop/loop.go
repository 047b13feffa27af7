// Package loop runs the game on a terminal: Input → Update → Draw, at a fixed
// frame rate, until the player quits or the connection goes away.
package loop

import (
	"context"
	"fmt"
	"io"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
)

// Run plays on an ANSI terminal: keys are read from r, frames written to w.
// Returns nil when the player quits, ctx is canceled or r reaches EOF.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	s := NewSession(opts)
	stream := input.StartStream(r)

	fieldW, fieldH := s.Game.Field()
	canvas := draw.NewScaledCanvas(1, 1, fieldW, fieldH)
	out := draw.NewChunkWriter(w, 0, 0)
	surface := draw.NewTerminalSurface(canvas, out)
	screen := &terminalScreen{w: w, canvas: canvas, out: out, size: opts.TermSizeFunc}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	screen.update()

	for {
		frameStart := opts.Clock.Now()

		// ===== INPUT PHASE =====
		input.ReadInput(stream, s.Keys, frameStart)
		if s.Keys.Ended() {
			s.End("input closed")
			return nil
		}

		// ===== UPDATE PHASE =====
		if s.Step(frameStart) {
			s.End("quit")
			return nil
		}
		screen.update()

		// ===== DRAW PHASE =====
		s.Game.Draw(surface)
		if err := surface.Flush(); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}

		// ===== FRAME TIMING =====
		if !waitFrame(ctx, frameStart, opts.Clock) {
			s.End("canceled")
			return nil
		}
	}
}

// terminalScreen keeps the canvas matched to the terminal size.
type terminalScreen struct {
	w      io.Writer
	canvas *draw.Canvas
	out    *draw.ChunkWriter
	size   draw.TermSizeFunc
}

// update handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (t *terminalScreen) update() {
	termWidth, termHeight, err := t.size()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != t.canvas.TerminalWidth() || renderHeight != t.canvas.TerminalHeight() ||
		offsetCol != t.canvas.OffsetCol() || offsetRow != t.canvas.OffsetRow() {
		draw.ClearScreen(t.w)
		t.canvas.ForceRedraw()
	}

	t.canvas.Resize(renderWidth, renderHeight)
	t.canvas.SetOffset(offsetCol, offsetRow)
	t.out.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = max(min(termWidth, config.MaxTermWidth), 1)
	renderHeight = max(min(termHeight, config.MaxTermHeight), 1)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

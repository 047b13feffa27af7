package loop

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
)

// RunTcell plays on an initialized tcell screen. The caller owns the screen
// and finalizes it after RunTcell returns.
func RunTcell(ctx context.Context, screen tcell.Screen, opts Options) error {
	opts = opts.withDefaults()
	s := NewSession(opts)

	fieldW, fieldH := s.Game.Field()
	surface := draw.NewTcellSurface(screen, fieldW, fieldH)
	resizeTcell(screen, surface)
	screen.HideCursor()
	screen.Clear()

	// PollEvent blocks, so it gets its own goroutine; it returns nil once the
	// screen is finalized.
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		frameStart := opts.Clock.Now()

	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if k, ok := input.FromTcell(ev); ok {
						s.Keys.Press(k, frameStart)
					}
				case *tcell.EventResize:
					resizeTcell(screen, surface)
				}
			default:
				break drain
			}
		}

		if s.Step(frameStart) {
			s.End("quit")
			return nil
		}

		s.Game.Draw(surface)
		surface.Show()

		if !waitFrame(ctx, frameStart, opts.Clock) {
			s.End("canceled")
			return nil
		}
	}
}

func resizeTcell(screen tcell.Screen, surface *draw.TcellSurface) {
	termWidth, termHeight := screen.Size()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	surface.Canvas().Resize(renderWidth, renderHeight)
	surface.Canvas().SetOffset(offsetCol, offsetRow)
	screen.Clear()
	screen.Sync()
}

package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/game"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
)

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a frame loop.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Terminal size for the ANSI loop; defaults to stdout
	Logger       *log.Logger       // Session events; discarded when nil
	Clock        Clock             // Frame timestamps; defaults to the wall clock
	Rand         game.Rand         // Enemy fire source; the engine seeds its own when nil
}

func (o Options) withDefaults() Options {
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Clock == nil {
		o.Clock = systemClock{}
	}
	return o
}

// Session is the host-independent part of a loop: one engine plus the held
// keys that drive it. Restarting replaces the engine wholesale.
type Session struct {
	Game  *game.Game
	Keys  *input.Tracker
	opts  Options
	games int
}

// NewSession starts the first game. Unset options get their defaults.
func NewSession(opts Options) *Session {
	opts = opts.withDefaults()
	s := &Session{
		opts: opts,
		Keys: input.NewTracker(config.KeyHoldDuration),
	}
	s.Restart()
	return s
}

// Restart throws the current game away and starts a new one.
func (s *Session) Restart() {
	gameOpts := []game.Option{game.WithLogger(s.opts.Logger)}
	if s.opts.Rand != nil {
		gameOpts = append(gameOpts, game.WithRand(s.opts.Rand))
	}
	s.Game = game.New(gameOpts...)
	s.Keys.Reset()
	s.games++
	s.opts.Logger.Debug("game started", "game", s.games)
}

// Step applies the held keys at now: quit ends the session, Enter on the
// game-over screen starts a fresh game, anything else advances the engine.
func (s *Session) Step(now time.Time) (quit bool) {
	keys := s.Keys.Keys(now)
	if keys.Held(input.KeyQuit) {
		return true
	}

	if s.Game.GameOver() {
		if keys.Held(input.KeyRestart) {
			s.Restart()
		}
		return false
	}

	s.Game.Update(now, keys)
	if s.Game.GameOver() {
		s.opts.Logger.Info("game over", "game", s.games, "score", s.Game.Score(), "wave", s.Game.Wave())
	}
	return false
}

// End logs the outcome of the last game.
func (s *Session) End(reason string) {
	s.opts.Logger.Info("session ended",
		"reason", reason,
		"games", s.games,
		"score", s.Game.Score(),
		"wave", s.Game.Wave(),
	)
}

// waitFrame sleeps out the rest of the frame that began at start.
// Returns false if ctx is canceled first.
func waitFrame(ctx context.Context, start time.Time, clock Clock) bool {
	remaining := config.TargetFrameTime - clock.Now().Sub(start)
	if remaining <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

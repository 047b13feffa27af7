package desktop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop"
)

// keyBindings maps each logical key to the physical keys that press it.
var keyBindings = map[input.Key][]ebiten.Key{
	input.KeyLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH},
	input.KeyRight:   {ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL},
	input.KeyFire:    {ebiten.KeySpace},
	input.KeyQuit:    {ebiten.KeyQ, ebiten.KeyEscape},
	input.KeyRestart: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
}

// Host adapts a game session to ebiten.Game.
type Host struct {
	session *loop.Session
	surface *Surface
	pressed func(ebiten.Key) bool
	now     func() time.Time
}

var _ ebiten.Game = (*Host)(nil)

// NewHost starts a session for a desktop window.
func NewHost(opts loop.Options) *Host {
	return &Host{
		session: loop.NewSession(opts),
		surface: NewSurface(),
		pressed: ebiten.IsKeyPressed,
		now:     time.Now,
	}
}

// Update runs one frame. ebiten calls it at 60 TPS.
func (h *Host) Update() error {
	now := h.now()
	h.syncKeys(now)

	if h.session.Step(now) {
		h.session.End("quit")
		return ebiten.Termination
	}
	return nil
}

// syncKeys copies the window's key state into the session. Unlike a terminal
// the window sees key-ups, so released keys are dropped right away.
func (h *Host) syncKeys(now time.Time) {
	for k, physical := range keyBindings {
		held := false
		for _, p := range physical {
			if h.pressed(p) {
				held = true
				break
			}
		}
		if held {
			h.session.Keys.Press(k, now)
		} else {
			h.session.Keys.Release(k)
		}
	}
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.Target = screen
	h.session.Game.Draw(h.surface)
}

// Layout keeps the logical field size; ebiten scales it to the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, hgt := h.session.Game.Field()
	return int(w), int(hgt)
}

package object

import (
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/loop/config"
)

// Explosion is a growing, fading circle left behind by a hit.
type Explosion struct {
	X, Y      float64 // Center
	Radius    float64
	MaxRadius float64
	Alpha     float64
}

// NewExplosion creates an opaque explosion centered at (x,y).
func NewExplosion(x, y float64) *Explosion {
	return &Explosion{
		X:         x,
		Y:         y,
		Radius:    config.ExplosionStartRadius,
		MaxRadius: config.ExplosionMaxRadius,
		Alpha:     1,
	}
}

// Age grows and fades the explosion by one frame.
func (e *Explosion) Age() {
	e.Radius += config.ExplosionGrowth
	e.Alpha -= config.ExplosionFade
}

// MarkDestroyed ends the explosion immediately.
func (e *Explosion) MarkDestroyed() {
	e.Alpha = 0
}

// IsDestroyed reports whether the explosion is fully grown or fully faded.
func (e *Explosion) IsDestroyed() bool {
	return e.Radius >= e.MaxRadius || e.Alpha <= 0
}

func (e *Explosion) Draw(s draw.Surface) {
	s.FillCircle(e.X, e.Y, e.Radius, explosionColor.WithAlpha(e.Alpha))
}

var explosionColor = draw.MustHex(config.ColorExplosion)

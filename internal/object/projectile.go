package object

import (
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/physics"
)

// Projectile is a bullet fired by the player (moving up) or an enemy (moving down).
type Projectile struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Signed units per frame; negative is upward
	Color         draw.Color
	destroyed     bool // Marked for destruction
}

// NewPlayerProjectile creates an upward bullet at (x,y).
func NewPlayerProjectile(x, y float64) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		Width:  config.BulletWidth,
		Height: config.BulletHeight,
		Speed:  -config.PlayerBulletSpeed,
		Color:  draw.MustHex(config.ColorPlayerShot),
	}
}

// NewEnemyProjectile creates a downward bullet at (x,y).
func NewEnemyProjectile(x, y float64) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		Width:  config.BulletWidth,
		Height: config.BulletHeight,
		Speed:  config.EnemyBulletSpeed,
		Color:  draw.MustHex(config.ColorEnemyShot),
	}
}

// Advance moves the projectile one frame and marks it destroyed once it has
// crossed the edge it travels toward: y ≤ 0 going up, y ≥ fieldHeight going down.
func (p *Projectile) Advance(fieldHeight float64) {
	p.Y += p.Speed
	if (p.Speed < 0 && p.Y <= 0) || (p.Speed > 0 && p.Y >= fieldHeight) {
		p.destroyed = true
	}
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}

func (p *Projectile) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func (p *Projectile) Draw(s draw.Surface) {
	s.FillRect(p.X, p.Y, p.Width, p.Height, p.Color)
}

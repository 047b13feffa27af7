package object

import (
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/physics"
)

// Player is the ship at the bottom of the field.
type Player struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Units per frame
	Lives         int
	Color         draw.Color
}

// NewPlayer creates a ship centered horizontally near the bottom of a field.
func NewPlayer(fieldWidth, fieldHeight float64) *Player {
	return &Player{
		X:      fieldWidth/2 - config.PlayerWidth/2,
		Y:      fieldHeight - config.PlayerBottomGap,
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
		Speed:  config.PlayerSpeed,
		Lives:  config.InitialLives,
		Color:  draw.MustHex(config.ColorPlayer),
	}
}

// Move shifts the ship by dir×Speed, keeping it fully inside [0, fieldWidth].
func (p *Player) Move(dir, fieldWidth float64) {
	p.X = physics.Clamp(p.X+dir*p.Speed, 0, fieldWidth-p.Width)
}

// Muzzle returns where a fired projectile starts: centered on the ship, at its top.
func (p *Player) Muzzle() (x, y float64) {
	return p.X + p.Width/2 - config.BulletWidth/2, p.Y
}

// Hit takes one life and reports whether none are left.
// Lives never drop below zero.
func (p *Player) Hit() (dead bool) {
	if p.Lives > 0 {
		p.Lives--
	}
	return p.Lives == 0
}

func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func (p *Player) Draw(s draw.Surface) {
	s.FillRect(p.X, p.Y, p.Width, p.Height, p.Color)
}

package object

import (
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/physics"
)

// Enemy is one member of the descending formation.
type Enemy struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Formation speed of the wave it was spawned in
	Color         draw.Color
	destroyed     bool
}

// NewEnemy creates an enemy at (x,y) belonging to a wave moving at speed.
func NewEnemy(x, y, speed float64) *Enemy {
	return &Enemy{
		X:      x,
		Y:      y,
		Width:  config.EnemyWidth,
		Height: config.EnemyHeight,
		Speed:  speed,
		Color:  draw.MustHex(config.ColorEnemy),
	}
}

// NewWave builds the full formation, row by row, every enemy carrying speed.
func NewWave(speed float64) []*Enemy {
	enemies := make([]*Enemy, 0, config.EnemyRows*config.EnemyCols)
	for row := range config.EnemyRows {
		for col := range config.EnemyCols {
			x := float64(config.EnemyOriginX + col*config.EnemySpacingX)
			y := float64(config.EnemyOriginY + row*config.EnemySpacingY)
			enemies = append(enemies, NewEnemy(x, y, speed))
		}
	}
	return enemies
}

// Shift moves the enemy by (dx, dy).
func (e *Enemy) Shift(dx, dy float64) {
	e.X += dx
	e.Y += dy
}

// AtEdge reports whether the enemy touches either side of the field.
func (e *Enemy) AtEdge(fieldWidth float64) bool {
	return e.X <= 0 || e.X >= fieldWidth-e.Width
}

// Muzzle returns where the enemy's shot starts: centered under it.
func (e *Enemy) Muzzle() (x, y float64) {
	return e.X + e.Width/2 - config.BulletWidth/2, e.Y + e.Height
}

// MarkDestroyed marks the enemy for removal.
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is marked for destruction.
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}

func (e *Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

func (e *Enemy) Draw(s draw.Surface) {
	s.FillRect(e.X, e.Y, e.Width, e.Height, e.Color)
}

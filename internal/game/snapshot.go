package game

import (
	"fmt"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Width, Height float64

	Player       object.Player
	Bullets      []object.Projectile
	EnemyBullets []object.Projectile
	Enemies      []object.Enemy
	Explosions   []object.Explosion

	Score      int
	Lives      int
	Wave       int
	EnemySpeed float64
	GameOver   bool
}

// Snapshot copies the current state. Mutating the result never affects the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:        g.width,
		Height:       g.height,
		Player:       *g.player,
		Bullets:      copyValues(g.bullets),
		EnemyBullets: copyValues(g.enemyBullets),
		Enemies:      copyValues(g.enemies),
		Explosions:   copyValues(g.explosions),
		Score:        g.score,
		Lives:        g.player.Lives,
		Wave:         g.wave,
		EnemySpeed:   g.enemySpeed,
		GameOver:     g.gameOver,
	}
}

func copyValues[T any](s []*T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[i] = *v
	}
	return out
}

// Draw renders the current state onto s.
func (g *Game) Draw(s draw.Surface) {
	snap := g.Snapshot()
	snap.Draw(s)
}

var (
	backgroundColor = draw.MustHex(config.ColorBackground)
	textColor       = draw.MustHex(config.ColorText)
)

// Draw renders the snapshot back to front: explosions, player, bullets,
// enemies, then the HUD.
func (snap *Snapshot) Draw(s draw.Surface) {
	s.Clear(backgroundColor)

	for i := range snap.Explosions {
		snap.Explosions[i].Draw(s)
	}
	snap.Player.Draw(s)
	for i := range snap.Bullets {
		snap.Bullets[i].Draw(s)
	}
	for i := range snap.EnemyBullets {
		snap.EnemyBullets[i].Draw(s)
	}
	for i := range snap.Enemies {
		snap.Enemies[i].Draw(s)
	}

	for _, t := range snap.hud() {
		t.Draw(s)
	}
}

func (snap *Snapshot) hud() []object.Text {
	texts := []object.Text{
		{X: 10, Y: 30, Value: fmt.Sprintf("Score: %d", snap.Score), Size: config.HUDFontSize, Color: textColor},
		{X: 10, Y: 60, Value: fmt.Sprintf("Lives: %d", snap.Lives), Size: config.HUDFontSize, Color: textColor},
		{X: snap.Width - 10, Y: 30, Value: fmt.Sprintf("Wave: %d", snap.Wave), Size: config.HUDFontSize, Align: draw.AlignRight, Color: textColor},
	}
	if snap.GameOver {
		cx, cy := snap.Width/2, snap.Height/2
		texts = append(texts,
			object.Text{X: cx, Y: cy, Value: "GAME OVER", Size: config.GameOverFontSize, Align: draw.AlignCenter, Color: textColor},
			object.Text{X: cx, Y: cy + 40, Value: "Press ENTER to restart", Size: config.HUDFontSize, Align: draw.AlignCenter, Color: textColor},
		)
	}
	return texts
}

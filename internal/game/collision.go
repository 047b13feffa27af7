package game

import (
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
)

// gridCellSize is about two enemies wide so a bullet rarely spans more than
// two cells.
const gridCellSize = 80.0

// resolveEnemyHits tests every player bullet against every enemy present at
// the start of the step. Every overlapping pair scores, so the result does not
// depend on iteration order; matches are only marked here and filtered after.
func (g *Game) resolveEnemyHits() {
	if len(g.bullets) == 0 || len(g.enemies) == 0 {
		return
	}

	g.grid.Clear()
	for i, e := range g.enemies {
		g.grid.Insert(e.Bounds(), i)
	}

	for _, b := range g.bullets {
		bounds := b.Bounds()
		g.grid.QueryRect(bounds, func(i int) bool {
			e := g.enemies[i]
			if !bounds.Overlaps(e.Bounds()) {
				return false
			}
			if !e.IsDestroyed() {
				g.explosions = append(g.explosions, object.NewExplosion(e.Bounds().Center()))
			}
			e.MarkDestroyed()
			b.MarkDestroyed()
			g.score += config.ScorePerEnemy
			return false
		})
	}

	g.bullets = object.RemoveDestroyed(g.bullets)
	g.enemies = object.RemoveDestroyed(g.enemies)
}

// resolvePlayerHits costs a life for every enemy bullet touching the player.
func (g *Game) resolvePlayerHits() {
	ship := g.player.Bounds()
	for _, b := range g.enemyBullets {
		if !ship.Overlaps(b.Bounds()) {
			continue
		}
		g.explosions = append(g.explosions, object.NewExplosion(b.X, b.Y))
		b.MarkDestroyed()
		if g.player.Hit() {
			g.gameOver = true
		}
	}
	g.enemyBullets = object.RemoveDestroyed(g.enemyBullets)
}

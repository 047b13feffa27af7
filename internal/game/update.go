package game

import (
	"time"

	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
)

// Update advances the session by one frame. now is the wall-clock time of the
// frame, used only for the enemy fire cooldown. Once the game is over Update
// does nothing.
func (g *Game) Update(now time.Time, keys input.KeySet) {
	if g.gameOver {
		return
	}

	g.ageExplosions()
	g.movePlayer(keys)
	g.firePlayer(keys)
	g.advanceProjectiles()
	g.fireEnemy(now)
	g.moveFormation()
	g.resolveEnemyHits()
	g.resolvePlayerHits()
	g.completeWave()

	if g.gameOver {
		g.logger.Debug("game over", "score", g.score, "wave", g.wave, "lives", g.player.Lives)
	}
}

func (g *Game) ageExplosions() {
	for _, e := range g.explosions {
		e.Age()
	}
	g.explosions = object.RemoveDestroyed(g.explosions)
}

func (g *Game) movePlayer(keys input.KeySet) {
	if keys.Held(input.KeyLeft) {
		g.player.Move(-1, g.width)
	}
	if keys.Held(input.KeyRight) {
		g.player.Move(1, g.width)
	}
}

// firePlayer spawns a bullet on every frame fire is held while fewer than
// MaxPlayerBullets are in flight.
func (g *Game) firePlayer(keys input.KeySet) {
	if !keys.Held(input.KeyFire) || len(g.bullets) >= config.MaxPlayerBullets {
		return
	}
	g.bullets = append(g.bullets, object.NewPlayerProjectile(g.player.Muzzle()))
}

func (g *Game) advanceProjectiles() {
	for _, p := range g.bullets {
		p.Advance(g.height)
	}
	g.bullets = object.RemoveDestroyed(g.bullets)

	for _, p := range g.enemyBullets {
		p.Advance(g.height)
	}
	g.enemyBullets = object.RemoveDestroyed(g.enemyBullets)
}

func (g *Game) fireEnemy(now time.Time) {
	if len(g.enemies) == 0 || now.Sub(g.lastEnemyShot) <= config.EnemyFireCooldown {
		return
	}
	shooter := g.enemies[g.rand.Intn(len(g.enemies))]
	g.enemyBullets = append(g.enemyBullets, object.NewEnemyProjectile(shooter.Muzzle()))
	g.lastEnemyShot = now
}

// moveFormation drifts every enemy sideways. When any of them touches a side
// the formation turns around and steps down; reaching the floor ends the game.
func (g *Game) moveFormation() {
	edge := false
	for _, e := range g.enemies {
		e.Shift(g.enemySpeed*g.direction, 0)
		if e.AtEdge(g.width) {
			edge = true
		}
	}
	if !edge {
		return
	}

	g.direction = -g.direction
	floor := g.height - config.FloorMargin
	for _, e := range g.enemies {
		e.Shift(0, config.FormationStep)
		if e.Y >= floor {
			g.gameOver = true
		}
	}
}

// completeWave refills an emptied formation with a faster one.
func (g *Game) completeWave() {
	if len(g.enemies) > 0 {
		return
	}
	g.enemySpeed += config.EnemySpeedIncrement
	g.wave++
	g.enemies = object.NewWave(g.enemySpeed)
	g.logger.Debug("wave cleared", "wave", g.wave, "speed", g.enemySpeed, "score", g.score)
}

// Package game is the simulation engine: it owns every entity of one session
// and advances them one frame at a time.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// Rand is the random source used to pick which enemy fires.
// *rand.Rand satisfies it; tests inject a fixed one.
type Rand interface {
	Intn(n int) int
}

// Game is one single-player session.
type Game struct {
	width, height float64
	rand          Rand
	logger        *log.Logger
	grid          *physics.SpatialGrid // Broad phase for bullet/enemy hits

	player       *object.Player
	bullets      []*object.Projectile // Player-owned, moving up
	enemyBullets []*object.Projectile // Enemy-owned, moving down
	enemies      []*object.Enemy
	explosions   []*object.Explosion

	direction     float64 // Formation drift, +1 right or -1 left
	enemySpeed    float64
	lastEnemyShot time.Time
	score         int
	wave          int
	gameOver      bool
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source for enemy fire.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rand = r
	}
}

// WithLogger sets the logger for wave and game-over events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithField overrides the play-field size used for every boundary check.
func WithField(width, height float64) Option {
	return func(g *Game) {
		g.width = width
		g.height = height
	}
}

// New creates a session with a full first wave and the player at the bottom.
func New(opts ...Option) *Game {
	g := &Game{
		width:      config.FieldWidth,
		height:     config.FieldHeight,
		direction:  1,
		enemySpeed: config.InitialEnemySpeed,
		wave:       1,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.grid = physics.NewSpatialGrid(g.width, g.height, gridCellSize)
	g.player = object.NewPlayer(g.width, g.height)
	g.enemies = object.NewWave(g.enemySpeed)
	return g
}

// GameOver reports whether the session has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Score returns the points earned so far.
func (g *Game) Score() int {
	return g.score
}

// Lives returns the player's remaining lives.
func (g *Game) Lives() int {
	return g.player.Lives
}

// Wave returns the number of the current wave, starting at 1.
func (g *Game) Wave() int {
	return g.wave
}

// Field returns the play-field size.
func (g *Game) Field() (width, height float64) {
	return g.width, g.height
}

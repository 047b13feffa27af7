// Package config centralizes all tunable game parameters.
package config

import "time"

// Field dimensions - every boundary check uses these logical units.
// Renderers scale the field to whatever surface they draw on.
const (
	FieldWidth  = 800
	FieldHeight = 600
)

// Player
const (
	InitialLives     = 3
	PlayerWidth      = 50
	PlayerHeight     = 30
	PlayerSpeed      = 5.0 // Units per frame
	PlayerBottomGap  = 60  // Distance from the bottom edge to the ship's top
	MaxPlayerBullets = 3
)

// Projectiles
const (
	BulletWidth       = 4
	BulletHeight      = 10
	PlayerBulletSpeed = 7.0 // Upward, units per frame
	EnemyBulletSpeed  = 3.0 // Downward, units per frame
)

// Enemy formation
const (
	EnemyRows           = 4
	EnemyCols           = 8
	EnemyWidth          = 40
	EnemyHeight         = 30
	EnemyOriginX        = 100
	EnemyOriginY        = 50
	EnemySpacingX       = 70
	EnemySpacingY       = 50
	InitialEnemySpeed   = 1.0
	EnemySpeedIncrement = 0.5 // Added every cleared wave
	FormationStep       = 20  // Downward shift on every bounce
	FloorMargin         = 50  // Enemies at or below FieldHeight-FloorMargin end the game
	EnemyFireCooldown   = time.Second
)

// Explosions
const (
	ExplosionStartRadius = 5.0
	ExplosionMaxRadius   = 30.0
	ExplosionGrowth      = 1.0  // Radius added per frame
	ExplosionFade        = 0.02 // Alpha removed per frame
)

// Scoring
const (
	ScorePerEnemy = 10
)

// Colors (hex, as CSS would spell them)
const (
	ColorBackground  = "#000"
	ColorPlayer      = "#0f0"
	ColorPlayerShot  = "#ff0"
	ColorEnemyShot   = "#f00"
	ColorEnemy       = "#f00"
	ColorExplosion   = "#ffa500"
	ColorText        = "#fff"
	HUDFontSize      = 24
	GameOverFontSize = 48
)

// Terminal rendering
const (
	MaxTermWidth  = 160 // Larger terminals get a centered, bordered play area
	MaxTermHeight = 60
)

// Input
const (
	// Terminals report key presses (and auto-repeats) but never releases, so a
	// key counts as held for this long after its last press.
	KeyHoldDuration = 120 * time.Millisecond
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

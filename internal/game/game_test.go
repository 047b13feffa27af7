package game

import (
	"slices"
	"testing"
	"time"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/draw/drawtest"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
)

// fixedRand always picks the same index (modulo n).
type fixedRand int

func (r fixedRand) Intn(n int) int {
	return int(r) % n
}

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestGame() *Game {
	return New(WithRand(fixedRand(0)))
}

// quiet stops enemy fire for the next frame at now.
func (g *Game) quiet(now time.Time) {
	g.lastEnemyShot = now
}

func frameTime(i int) time.Time {
	return t0.Add(time.Duration(i) * time.Second / 60)
}

func TestNewGame(t *testing.T) {
	g := newTestGame()

	if g.Lives() != 3 || g.Score() != 0 || g.Wave() != 1 || g.GameOver() {
		t.Errorf("Expected 3 lives, score 0, wave 1, playing; got %d, %d, %d, %v",
			g.Lives(), g.Score(), g.Wave(), g.GameOver())
	}
	if len(g.enemies) != 32 {
		t.Errorf("Expected 32 enemies, got %d", len(g.enemies))
	}
	if g.direction != 1 || g.enemySpeed != 1 {
		t.Errorf("Expected direction 1 and speed 1, got %v and %v", g.direction, g.enemySpeed)
	}
	if w, h := g.Field(); w != 800 || h != 600 {
		t.Errorf("Expected 800x600 field, got %vx%v", w, h)
	}
}

func TestOneSecondWithoutInputFiresOnce(t *testing.T) {
	g := newTestGame()

	for i := 0; i <= 60; i++ {
		g.Update(frameTime(i), input.Keys{})
	}

	if len(g.enemyBullets) != 1 {
		t.Errorf("Expected exactly one enemy bullet after 1000ms, got %d", len(g.enemyBullets))
	}
	if g.Score() != 0 || g.Lives() != 3 {
		t.Errorf("Expected no score or life change, got score %d lives %d", g.Score(), g.Lives())
	}

	// The cooldown is strict: the next shot needs more than a full second.
	g.Update(frameTime(61), input.Keys{})
	if len(g.enemyBullets) != 2 {
		t.Errorf("Expected a second enemy bullet just past the cooldown, got %d", len(g.enemyBullets))
	}
}

func TestEnemyFireUsesRandomShooter(t *testing.T) {
	g := New(WithRand(fixedRand(31)))
	g.Update(t0, input.Keys{})

	if len(g.enemyBullets) != 1 {
		t.Fatalf("Expected one enemy bullet, got %d", len(g.enemyBullets))
	}
	// The last enemy sits at (590,200) when it fires, before the formation moves.
	b := g.enemyBullets[0]
	if b.X != 608 || b.Y != 230 {
		t.Errorf("Expected bullet under the last enemy at (608,230), got (%v,%v)", b.X, b.Y)
	}
}

func TestBulletOverlappingEnemy(t *testing.T) {
	g := newTestGame()
	g.quiet(t0)
	target := g.enemies[0]
	// Advancing moves the bullet up 7 and the enemy right 1; both still overlap.
	g.bullets = []*object.Projectile{object.NewPlayerProjectile(target.X+10, target.Y+10)}

	g.Update(t0, input.Keys{})

	if g.Score() != 10 {
		t.Errorf("Expected score 10, got %d", g.Score())
	}
	if len(g.bullets) != 0 {
		t.Errorf("Expected bullet removed, got %d", len(g.bullets))
	}
	if len(g.enemies) != 31 || slices.Contains(g.enemies, target) {
		t.Errorf("Expected the hit enemy removed, %d left", len(g.enemies))
	}
	if len(g.explosions) != 1 {
		t.Fatalf("Expected one explosion, got %d", len(g.explosions))
	}
	if e := g.explosions[0]; e.X != 121 || e.Y != 65 || e.Radius != 5 || e.Alpha != 1 {
		t.Errorf("Expected fresh explosion at enemy center (121,65), got %+v", *e)
	}
}

func TestScoringIsOrderIndependent(t *testing.T) {
	setup := func(reverse bool) *Game {
		g := newTestGame()
		g.quiet(t0)
		a, b := g.enemies[0], g.enemies[9]
		bullets := []*object.Projectile{
			object.NewPlayerProjectile(a.X+5, a.Y+10),
			object.NewPlayerProjectile(a.X+20, a.Y+10),
			object.NewPlayerProjectile(b.X+10, b.Y+10),
		}
		if reverse {
			slices.Reverse(bullets)
		}
		g.bullets = bullets
		return g
	}

	for _, reverse := range []bool{false, true} {
		g := setup(reverse)
		g.Update(t0, input.Keys{})

		if g.Score() != 30 {
			t.Errorf("reverse=%v: expected 10 per overlapping pair (30), got %d", reverse, g.Score())
		}
		if len(g.enemies) != 30 {
			t.Errorf("reverse=%v: expected 2 enemies removed, %d left", reverse, len(g.enemies))
		}
		if len(g.explosions) != 2 {
			t.Errorf("reverse=%v: expected one explosion per destroyed enemy, got %d", reverse, len(g.explosions))
		}
		if len(g.bullets) != 0 {
			t.Errorf("reverse=%v: expected all matched bullets removed, got %d", reverse, len(g.bullets))
		}
	}
}

func TestLastLifeEndsGameAndFreezes(t *testing.T) {
	g := newTestGame()
	g.quiet(t0)
	g.player.Lives = 1
	g.enemyBullets = []*object.Projectile{object.NewEnemyProjectile(g.player.X+10, g.player.Y)}

	g.Update(t0, input.Keys{})

	if g.Lives() != 0 || !g.GameOver() {
		t.Fatalf("Expected 0 lives and game over on the same frame, got %d, %v", g.Lives(), g.GameOver())
	}
	if len(g.explosions) != 1 {
		t.Errorf("Expected an explosion at the hit, got %d", len(g.explosions))
	}

	before := g.Snapshot()
	held := input.Keys{}.With(input.KeyLeft).With(input.KeyFire)
	for i := 1; i <= 120; i++ {
		g.Update(frameTime(i), held)
	}
	after := g.Snapshot()

	if after.Player.X != before.Player.X || after.Score != before.Score || after.Lives != 0 {
		t.Errorf("Expected frozen player and score, got x %v→%v score %d→%d",
			before.Player.X, after.Player.X, before.Score, after.Score)
	}
	if len(after.Bullets) != 0 || len(after.EnemyBullets) != len(before.EnemyBullets) {
		t.Error("Expected no projectiles to spawn after game over")
	}
	for i := range after.Enemies {
		if after.Enemies[i].X != before.Enemies[i].X || after.Enemies[i].Y != before.Enemies[i].Y {
			t.Fatalf("Expected enemy %d frozen", i)
		}
	}
	if after.Explosions[0].Radius != before.Explosions[0].Radius {
		t.Error("Expected explosions frozen")
	}
}

func TestLivesNeverNegative(t *testing.T) {
	g := newTestGame()
	g.quiet(t0)
	g.player.Lives = 1
	g.enemyBullets = []*object.Projectile{
		object.NewEnemyProjectile(g.player.X+5, g.player.Y),
		object.NewEnemyProjectile(g.player.X+20, g.player.Y),
	}

	g.Update(t0, input.Keys{})

	if g.Lives() != 0 || !g.GameOver() {
		t.Errorf("Expected lives to stop at 0 with game over, got %d, %v", g.Lives(), g.GameOver())
	}
}

func TestClearingWaveRespawnsFaster(t *testing.T) {
	g := newTestGame()
	g.quiet(t0)
	last := g.enemies[0]
	g.enemies = g.enemies[:1]
	g.bullets = []*object.Projectile{object.NewPlayerProjectile(last.X+10, last.Y+10)}

	g.Update(t0, input.Keys{})

	if len(g.enemies) != 32 {
		t.Fatalf("Expected a fresh wave of 32, got %d", len(g.enemies))
	}
	if g.enemySpeed != 1.5 || g.Wave() != 2 {
		t.Errorf("Expected speed 1.5 on wave 2, got %v on wave %d", g.enemySpeed, g.Wave())
	}
	for _, e := range g.enemies {
		if e.Speed != 1.5 {
			t.Fatalf("Expected every new enemy to carry speed 1.5, got %v", e.Speed)
		}
	}
	if g.enemies[0].X != 100 || g.enemies[0].Y != 50 {
		t.Errorf("Expected the new wave at the origin, got (%v,%v)", g.enemies[0].X, g.enemies[0].Y)
	}
}

func TestAutoFireCapsBullets(t *testing.T) {
	g := newTestGame()
	fire := input.Keys{}.With(input.KeyFire)

	for i := range 10 {
		g.Update(t0, fire)
		if len(g.bullets) > 3 {
			t.Fatalf("Frame %d: expected at most 3 bullets, got %d", i, len(g.bullets))
		}
		if want := min(i+1, 3); len(g.bullets) != want {
			t.Errorf("Frame %d: expected %d bullets, got %d", i, want, len(g.bullets))
		}
	}

	b := g.bullets[0]
	if b.X != 398 {
		t.Errorf("Expected bullet centered on the ship at x=398, got %v", b.X)
	}
}

func TestPlayerStaysInField(t *testing.T) {
	g := newTestGame()
	left := input.Keys{}.With(input.KeyLeft)
	right := input.Keys{}.With(input.KeyRight)

	for range 80 {
		g.Update(t0, left)
		if g.player.X < 0 {
			t.Fatalf("Player left the field: x=%v", g.player.X)
		}
	}
	if g.player.X != 0 {
		t.Errorf("Expected player at 0, got %v", g.player.X)
	}

	for range 160 {
		g.Update(t0, right)
		if g.player.X > 750 {
			t.Fatalf("Player left the field: x=%v", g.player.X)
		}
	}
	if g.player.X != 750 {
		t.Errorf("Expected player at 750, got %v", g.player.X)
	}
}

func TestFormationBounce(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		gameOver bool
	}{
		{"bounce above floor", 759, 100, false},
		{"bounce onto floor", 759, 530, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame()
			g.quiet(t0)
			g.enemies = []*object.Enemy{object.NewEnemy(tt.x, tt.y, 1)}

			g.Update(t0, input.Keys{})

			e := g.enemies[0]
			if e.X != 760 || e.Y != tt.y+20 {
				t.Errorf("Expected enemy at (760,%v), got (%v,%v)", tt.y+20, e.X, e.Y)
			}
			if g.direction != -1 {
				t.Errorf("Expected direction reversed, got %v", g.direction)
			}
			if g.GameOver() != tt.gameOver {
				t.Errorf("Expected game over %v, got %v", tt.gameOver, g.GameOver())
			}
		})
	}
}

func TestProjectilesLeaveAtBoundaries(t *testing.T) {
	g := newTestGame()
	g.quiet(t0)
	g.bullets = []*object.Projectile{
		object.NewPlayerProjectile(0, 7),
		object.NewPlayerProjectile(0, 8),
	}
	g.enemyBullets = []*object.Projectile{
		object.NewEnemyProjectile(0, 597),
		object.NewEnemyProjectile(0, 596),
	}

	g.Update(t0, input.Keys{})

	if len(g.bullets) != 1 || g.bullets[0].Y != 1 {
		t.Errorf("Expected only the bullet still below the top to remain, got %d", len(g.bullets))
	}
	if len(g.enemyBullets) != 1 || g.enemyBullets[0].Y != 599 {
		t.Errorf("Expected only the bullet still above the bottom to remain, got %d", len(g.enemyBullets))
	}
}

func TestExplosionAgesOutAfter25Frames(t *testing.T) {
	g := newTestGame()
	g.explosions = []*object.Explosion{object.NewExplosion(400, 300)}

	for i := 1; i <= 24; i++ {
		g.quiet(t0)
		g.Update(t0, input.Keys{})
		if len(g.explosions) != 1 {
			t.Fatalf("Frame %d: expected explosion alive", i)
		}
	}
	g.Update(t0, input.Keys{})
	if len(g.explosions) != 0 {
		t.Errorf("Expected explosion removed on frame 25, radius %v", g.explosions[0].Radius)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame()
	snap := g.Snapshot()

	snap.Enemies[0].X = -100
	snap.Player.X = -100

	if g.enemies[0].X == -100 || g.player.X == -100 {
		t.Error("Expected snapshot mutation not to reach the game")
	}
}

func TestDrawHUD(t *testing.T) {
	g := newTestGame()
	var rec drawtest.Recorder

	g.Draw(&rec)

	if len(rec.Calls) == 0 || rec.Calls[0].Op != drawtest.OpClear {
		t.Fatal("Expected the frame to start with a clear")
	}
	if got := rec.Calls[0].Color.Hex(); got != "#000000" {
		t.Errorf("Expected black background, got %s", got)
	}
	if n := len(rec.Filter(drawtest.OpRect)); n != 33 {
		t.Errorf("Expected player plus 32 enemies drawn, got %d rectangles", n)
	}
	want := []string{"Score: 0", "Lives: 3", "Wave: 1"}
	if got := rec.Texts(); !slices.Equal(got, want) {
		t.Errorf("Expected HUD %v, got %v", want, got)
	}

	hud := rec.Filter(drawtest.OpText)
	if hud[0].X != 10 || hud[0].Y != 30 || hud[0].Size != 24 {
		t.Errorf("Expected score at (10,30) size 24, got %+v", hud[0])
	}
	if hud[2].X != 790 || hud[2].Align != draw.AlignRight {
		t.Errorf("Expected wave right aligned at 790, got %+v", hud[2])
	}
}

func TestDrawGameOver(t *testing.T) {
	g := newTestGame()
	g.gameOver = true
	g.explosions = []*object.Explosion{object.NewExplosion(1, 2)}
	var rec drawtest.Recorder

	g.Draw(&rec)

	texts := rec.Filter(drawtest.OpText)
	if len(texts) != 5 {
		t.Fatalf("Expected HUD plus game over lines, got %v", rec.Texts())
	}
	over := texts[3]
	if over.Text != "GAME OVER" || over.X != 400 || over.Y != 300 || over.Size != 48 || over.Align != draw.AlignCenter {
		t.Errorf("Expected centered GAME OVER at size 48, got %+v", over)
	}
	if texts[4].Text != "Press ENTER to restart" || texts[4].Y != 340 {
		t.Errorf("Expected restart hint below, got %+v", texts[4])
	}

	// Explosions are drawn first, behind everything else.
	if rec.Calls[1].Op != drawtest.OpCircle {
		t.Errorf("Expected explosion drawn right after clear, got %s", rec.Calls[1].Op)
	}
}

package doughfall

import (
	"testing"

	"github.com/vovakirdan/doughfall/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// scriptedInputs builds a deterministic input sequence that moves, fires,
// and occasionally sprints so most systems get exercised.
func scriptedInputs(n int) []core.InputFrame {
	inputs := make([]core.InputFrame, n)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		inputs[i].Set(core.ActionFire)
		switch {
		case i%7 < 3:
			inputs[i].Set(core.ActionLeft)
		case i%7 < 6:
			inputs[i].Set(core.ActionRight)
		}
		if i%13 == 0 {
			inputs[i].Set(core.ActionUp)
		}
		if i%31 == 0 {
			inputs[i].Set(core.ActionSprint)
		}
	}
	return inputs
}

func TestGameDeterminism(t *testing.T) {
	cfg := testRuntime(12345)
	inputs := scriptedInputs(600)

	g1 := New()
	g1.Reset(cfg)
	for _, in := range inputs {
		if g1.Step(in).State.GameOver {
			break
		}
	}
	snap1 := g1.Snapshot()

	g2 := New()
	g2.Reset(cfg)
	for _, in := range inputs {
		if g2.Step(in).State.GameOver {
			break
		}
	}
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestGameDifferentSeedsDiverge(t *testing.T) {
	inputs := scriptedInputs(600)

	g1 := New()
	g1.Reset(testRuntime(1))
	for _, in := range inputs {
		g1.Step(in)
	}

	g2 := New()
	g2.Reset(testRuntime(2))
	for _, in := range inputs {
		g2.Step(in)
	}

	// Different seeds spawn different enemies, so state should diverge.
	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1.Hash() == snap2.Hash() {
		t.Error("Different seeds produced identical runs")
	}
}

func TestGameReset(t *testing.T) {
	cfg := testRuntime(42)
	g := New()
	g.Reset(cfg)

	for _, in := range scriptedInputs(120) {
		g.Step(in)
	}

	g.Reset(cfg)

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.stage != 1 || g.wave != 1 {
		t.Errorf("Reset should return to stage 1 wave 1, got stage %d wave %d", g.stage, g.wave)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.state != StatePlaying {
		t.Errorf("Reset should set state to playing, got %s", g.state)
	}
	if len(g.enemies) != 0 || len(g.enemyBullets) != 0 || len(g.playerBullets) != 0 {
		t.Error("Reset should clear all entities")
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	result := g.Step(pause)
	if !result.State.Paused {
		t.Fatal("Pause action should pause the game")
	}

	ticksBefore := g.tickCount
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.tickCount != ticksBefore {
		t.Error("Simulation should not advance while paused")
	}

	result = g.Step(pause)
	if result.State.Paused {
		t.Error("Second pause action should resume")
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	if !g.screenTooSmall {
		t.Fatal("10x5 screen should be too small")
	}

	g.Step(core.NewInputFrame())
	if g.tickCount != 0 {
		t.Error("Simulation should not run on a too-small screen")
	}
}

func TestGrazeAwardedOncePerBullet(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// A stationary bullet inside the graze ring but outside hit range.
	b := newBullet(g.player.X+20, g.player.Y, 0, 0, core.ColorRed, 10, false)
	g.addEnemyBullets([]*Bullet{b})

	g.checkPlayerHits()
	if g.player.GrazeCount != 1 {
		t.Fatalf("Expected 1 graze, got %d", g.player.GrazeCount)
	}
	if g.score != g.cfg.Scoring.Graze {
		t.Errorf("Graze score = %d, expected %d", g.score, g.cfg.Scoring.Graze)
	}

	g.checkPlayerHits()
	if g.player.GrazeCount != 1 {
		t.Errorf("Same bullet grazed twice, count %d", g.player.GrazeCount)
	}
}

func TestEnemyBulletHitBreaksCombo(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	g.player.Combo = 10
	g.player.updateComboMultiplier()
	healthBefore := g.player.Health

	b := newBullet(g.player.X, g.player.Y, 0, 0, core.ColorRed, 10, false)
	g.addEnemyBullets([]*Bullet{b})
	g.checkPlayerHits()

	if g.player.Health >= healthBefore {
		t.Error("Direct hit should reduce health")
	}
	if g.player.Combo != 0 {
		t.Errorf("Hit should reset combo, got %d", g.player.Combo)
	}
	if len(g.enemyBullets) != 0 {
		t.Error("Connecting bullet should be removed")
	}
}

func TestPhasingPreventsDamage(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	g.player.PhaseThrough = true
	healthBefore := g.player.Health

	b := newBullet(g.player.X, g.player.Y, 0, 0, core.ColorRed, 10, false)
	g.addEnemyBullets([]*Bullet{b})
	g.checkPlayerHits()

	if g.player.Health != healthBefore {
		t.Error("Phasing player should not take damage")
	}
	if len(g.enemyBullets) != 0 {
		t.Error("Bullet should still be consumed while phasing")
	}
}

func TestWaveProgressionSpawnsBoss(t *testing.T) {
	g := New()
	g.Reset(testRuntime(99))

	g.player.Style = StyleLaser
	g.player.DamageMultiplier = 2.0

	// Force every wave to complete immediately.
	for w := 0; w < g.cfg.Waves.PerStage; w++ {
		g.waveTimerMS = g.cfg.Waves.DurationMS
		g.updateWave()
	}

	if g.boss == nil {
		t.Fatal("Completing all waves should spawn a boss")
	}
	if len(g.enemies) != 0 {
		t.Error("Boss spawn should clear remaining enemies")
	}
	if g.player.Style != StyleNormal {
		t.Error("Boss spawn should dispel the weapon style")
	}
	if g.player.DamageMultiplier != 1.0 {
		t.Error("Boss spawn should reset the damage multiplier")
	}
	if g.boss.X != g.fieldW/2 || g.boss.Y != g.fieldH/2 {
		t.Error("Boss should appear at the center of the field")
	}
}

func TestBossKillAdvancesStage(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	g.spawnBoss()
	g.boss.IntroMS = 0
	g.boss.Health = 1
	scoreBefore := g.score

	b := newPlayerBullet(g.boss.X, g.boss.Y, up, 50, KindNormal)
	g.addPlayerBullets([]*Bullet{b})
	g.updateBoss()

	if g.boss != nil {
		t.Fatal("Boss at 1 health should die to a direct hit")
	}
	if g.stage != 2 {
		t.Errorf("Boss kill should advance to stage 2, got %d", g.stage)
	}
	if g.wave != 1 {
		t.Errorf("New stage should start at wave 1, got %d", g.wave)
	}
	want := g.cfg.Scoring.BossKill*1 + g.cfg.Scoring.StageComplete
	if g.score-scoreBefore != want {
		t.Errorf("Boss kill awarded %d, expected %d", g.score-scoreBefore, want)
	}
}

func TestBossHitChargesUltimate(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	g.spawnBoss()
	g.boss.IntroMS = 0

	b := newPlayerBullet(g.boss.X, g.boss.Y, up, 1, KindNormal)
	g.addPlayerBullets([]*Bullet{b})
	g.updateBoss()

	if g.boss == nil {
		t.Fatal("Boss should survive a 1 damage hit")
	}
	if g.player.UltimateCharge != 1 {
		t.Errorf("Boss hit should add 1 ultimate charge, got %.0f", g.player.UltimateCharge)
	}
	if len(g.playerBullets) != 0 {
		t.Error("Bullet should be consumed on boss hit")
	}
}

func TestUltimateRequiresFullCharge(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	g.player.UltimateCharge = 50
	g.activateUltimate()
	if g.player.UltimateActive {
		t.Error("Ultimate should not fire below full charge")
	}
}

func TestLaserUltimateClearsField(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	g.enemies = append(g.enemies, newEnemy(EnemyBasic, 100, 100, 1, 1, 0, &g.cfg))
	g.addEnemyBullets([]*Bullet{newBullet(200, 200, 0, 5, core.ColorRed, 10, false)})

	g.player.Ultimate = UltimateFullscreenLaser
	g.player.UltimateCharge = g.player.UltimateMax
	killsBefore := g.kills

	g.activateUltimate()

	if len(g.enemyBullets) != 0 {
		t.Error("Laser ultimate should wipe enemy bullets")
	}
	if len(g.enemies) != 0 {
		t.Error("Laser ultimate should kill regular enemies")
	}
	if g.kills != killsBefore+1 {
		t.Errorf("Ultimate kill count = %d, expected %d", g.kills, killsBefore+1)
	}
	if g.player.UltimateCharge != 0 {
		t.Error("Ultimate should consume the full meter")
	}
}

func TestUltimateLeavesBossStanding(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	g.spawnBoss()
	g.boss.IntroMS = 0
	g.boss.Health = 100

	g.player.Ultimate = UltimateFullscreenLaser
	g.player.UltimateCharge = g.player.UltimateMax
	g.activateUltimate()

	// The blast drains boss health but only a direct hit removes it.
	if g.boss == nil {
		t.Fatal("Ultimate should not remove the boss outright")
	}
	if g.boss.Health > 0 {
		t.Errorf("Boss health should be depleted, got %.0f", g.boss.Health)
	}
}

func TestCloneUltimateSpawnsClones(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	g.player.Ultimate = UltimateClone
	g.player.UltimateCharge = g.player.UltimateMax
	g.activateUltimate()

	if len(g.clones) != 3 {
		t.Fatalf("Clone ultimate should spawn 3 clones, got %d", len(g.clones))
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := New()
	g.Reset(testRuntime(8))

	g.player.Health = 1
	g.player.InvincibleMS = 0
	b := newBullet(g.player.X, g.player.Y, 0, 0, core.ColorRed, 10, false)
	g.addEnemyBullets([]*Bullet{b})

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver {
		t.Fatal("Lethal hit should end the game")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	result = g.Step(restart)
	if result.State.GameOver {
		t.Error("Restart should start a fresh run")
	}
}

func TestRunStats(t *testing.T) {
	g := New()
	g.Reset(testRuntime(11))

	g.score = 5000
	g.stage = 3
	g.kills = 42
	g.bestCombo = 17
	g.player.GrazeCount = 9
	g.tickCount = 1200

	stats := g.RunStats()
	if stats.Score != 5000 || stats.Stage != 3 || stats.Kills != 42 ||
		stats.BestCombo != 17 || stats.Grazes != 9 || stats.Ticks != 1200 {
		t.Errorf("RunStats mismatch: %+v", stats)
	}
}

func TestRenderDoesNotMutateState(t *testing.T) {
	g := New()
	g.Reset(testRuntime(21))

	for _, in := range scriptedInputs(120) {
		g.Step(in)
	}

	before := g.Snapshot()
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("Render must not mutate simulation state")
	}
}

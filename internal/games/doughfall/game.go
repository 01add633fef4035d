package doughfall

import (
	"math"

	"github.com/vovakirdan/doughfall/internal/config"
	"github.com/vovakirdan/doughfall/internal/core"
	"github.com/vovakirdan/doughfall/internal/registry"
)

// GameState constants
const (
	StatePlaying  = "playing"
	StateGameOver = "gameover"
	StatePaused   = "paused"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the DoughFall simulation: a vertical bullet-hell run
// through waves and bosses. All positions are in field units; the renderer
// projects them onto terminal cells.
type Game struct {
	player        *Player
	clones        []*Clone
	enemies       []*Enemy
	boss          *Boss
	playerBullets []*Bullet
	enemyBullets  []*Bullet
	powerups      []*Powerup

	state     string
	score     int
	stage     int
	wave      int
	kills     int
	bestCombo int

	waveTimerMS  float64
	spawnTimerMS float64
	spawnRateMS  float64
	tickCount    int
	dtMS         float64

	fieldW, fieldH float64

	// Graze bookkeeping. Bullet IDs are monotonic so a bullet can only
	// ever be grazed once.
	grazed       map[uint64]struct{}
	nextBulletID uint64

	// HUD announcement (powerup pickups, tricks, boss intro).
	announcement string
	announceMS   float64

	rng     *core.Rand
	runtime core.RuntimeConfig
	cfg     config.DoughfallConfig

	minScreenW     int
	minScreenH     int
	screenTooSmall bool

	sounds []core.SoundCue
}

// New creates a new DoughFall game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "doughfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "DoughFall"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDoughfall(configPath)
	if err != nil {
		cfg = config.DefaultDoughfallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDoughfallPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.fieldW = cfg.Field.Width
	g.fieldH = cfg.Field.Height
	g.dtMS = 1000 / float64(core.Max(1, runtime.TickRate))

	g.minScreenW = 40
	g.minScreenH = 20
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.rng = core.NewRand(runtime.Seed)

	g.player = newPlayer(g.fieldW/2, g.fieldH-100, &g.cfg)
	g.clones = nil
	g.enemies = nil
	g.boss = nil
	g.playerBullets = nil
	g.enemyBullets = nil
	g.powerups = nil

	g.score = 0
	g.stage = 1
	g.wave = 1
	g.kills = 0
	g.bestCombo = 0
	g.waveTimerMS = 0
	g.spawnTimerMS = 0
	g.spawnRateMS = cfg.Waves.BaseSpawnIntervalMS
	g.tickCount = 0
	g.grazed = make(map[uint64]struct{})
	g.nextBulletID = 0
	g.announcement = ""
	g.announceMS = 0
	g.sounds = nil

	g.state = StatePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.sounds = nil

	if in.Has(core.ActionUltimate) {
		g.activateUltimate()
	}
	if in.Has(core.ActionAbility) && g.player.ActivateAbility() {
		g.announce("ABILITY: " + g.player.Ability.String())
		g.playSound("powerup", 1.0)
	}

	g.updatePlaying(in)

	return core.StepResult{State: g.State(), Sounds: g.sounds}
}

// updatePlaying runs one tick of the live simulation. The order matters:
// player and clones first, then bullets, pickups, the boss-or-wave branch,
// and finally enemy bullets against the player.
func (g *Game) updatePlaying(in core.InputFrame) {
	g.player.Update(g.dtMS, in, g.fieldW, g.fieldH)

	g.updateClones()

	if trick := g.player.CheckTricks(g.fieldW); trick != TrickNone {
		g.score += g.cfg.Scoring.Trick
		g.announce(trick.String())
		g.playSound("powerup", 1.0)
	}

	if in.Has(core.ActionFire) {
		if bullets := g.player.Shoot(); len(bullets) > 0 {
			g.addPlayerBullets(bullets)
			g.playSound("player_shoot", 1.0)
		}
	}

	g.updatePlayerBullets()
	g.updateEnemyBullets()
	g.updatePowerups()

	if g.boss != nil {
		g.updateBoss()
	} else {
		g.updateWave()
	}

	g.checkPlayerHits()

	if g.announceMS > 0 {
		g.announceMS -= g.dtMS
		if g.announceMS <= 0 {
			g.announcement = ""
		}
	}

	if !g.player.Alive() {
		if g.player.Combo > g.bestCombo {
			g.bestCombo = g.player.Combo
		}
		g.state = StateGameOver
	}
}

func (g *Game) updateClones() {
	alive := g.clones[:0]
	for _, c := range g.clones {
		if !c.Update(g.dtMS) {
			continue
		}
		c.Follow(g.player.X, g.player.Y)
		if bullets := c.Shoot(g.enemies, g.cfg.Player.BulletDamage); len(bullets) > 0 {
			g.addPlayerBullets(bullets)
		}
		alive = append(alive, c)
	}
	g.clones = alive
}

// updatePlayerBullets steers homing shots toward the nearest target and
// drops bullets that left the field.
func (g *Game) updatePlayerBullets() {
	kept := g.playerBullets[:0]
	for _, b := range g.playerBullets {
		if b.Homing {
			tx, ty, ok := g.nearestTarget(b.X, b.Y)
			b.Update(g.dtMS, tx, ty, ok)
		} else {
			b.Update(g.dtMS, 0, 0, false)
		}
		if !b.OffField(g.fieldW, g.fieldH) {
			kept = append(kept, b)
		}
	}
	g.playerBullets = kept
}

// nearestTarget returns the closest of the boss and all enemies.
func (g *Game) nearestTarget(x, y float64) (float64, float64, bool) {
	var tx, ty float64
	found := false
	minDist := math.Inf(1)

	if g.boss != nil {
		minDist = core.Dist(x, y, g.boss.X, g.boss.Y)
		tx, ty = g.boss.X, g.boss.Y
		found = true
	}
	for _, e := range g.enemies {
		if d := core.Dist(x, y, e.X, e.Y); d < minDist {
			minDist = d
			tx, ty = e.X, e.Y
			found = true
		}
	}
	return tx, ty, found
}

func (g *Game) updateEnemyBullets() {
	kept := g.enemyBullets[:0]
	for _, b := range g.enemyBullets {
		b.Update(g.dtMS, g.player.X, g.player.Y, b.Homing)
		if !b.OffField(g.fieldW, g.fieldH) {
			kept = append(kept, b)
		}
	}
	g.enemyBullets = kept
}

func (g *Game) updatePowerups() {
	kept := g.powerups[:0]
	for _, p := range g.powerups {
		p.Update(g.dtMS)
		if p.Gone(g.fieldH) {
			continue
		}
		if rectOverlap(p.X, p.Y, p.Size, g.player.X, g.player.Y, g.player.HitboxRadius) {
			g.announce(p.Apply(g.player))
			g.score += g.cfg.Scoring.Powerup
			g.playSound("powerup", 1.0)
			continue
		}
		kept = append(kept, p)
	}
	g.powerups = kept
}

func (g *Game) updateBoss() {
	bullets := g.boss.Update(g.dtMS, g.player.X, g.player.Y, g.fieldW, g.fieldH, g.rng, &g.cfg)
	g.addEnemyBullets(bullets)

	if !g.boss.InIntro() && g.boss.ShouldDropPowerup(g.cfg.Boss.PowerupDropMS) {
		x := g.boss.X + float64(g.rng.IntBetween(-40, 40))
		if p := rollPowerup(g.rng, x, g.boss.Y+50, &g.cfg); p != nil {
			g.powerups = append(g.powerups, p)
			g.announce("BOSS DROPPED A POWERUP")
		}
	}

	for i, b := range g.playerBullets {
		if !rectOverlap(b.X, b.Y, b.Size, g.boss.X, g.boss.Y, g.boss.Size) {
			continue
		}
		if g.boss.TakeDamage(b.Damage) {
			g.score += g.cfg.Scoring.BossKill * g.stage
			g.playSound("enemy_death", 1.0)

			for j := 0; j < 3; j++ {
				if p := rollPowerup(g.rng, g.boss.X+float64(j-1)*30, g.boss.Y, &g.cfg); p != nil {
					g.powerups = append(g.powerups, p)
				}
			}
			g.player.UltimateCharge = math.Min(g.player.UltimateMax, g.player.UltimateCharge+5)

			g.boss = nil
			g.startNewStage()
		} else {
			g.player.UltimateCharge = math.Min(g.player.UltimateMax, g.player.UltimateCharge+1)
			g.playSound("boss_hit", 1.0+(g.player.ComboMultiplier-1.0)*0.1)
		}
		g.playerBullets = append(g.playerBullets[:i], g.playerBullets[i+1:]...)
		break
	}
}

func (g *Game) updateWave() {
	g.waveTimerMS += g.dtMS
	g.spawnTimerMS += g.dtMS

	stageMult := math.Pow(g.cfg.Scaling.EnemyCount, float64(g.stage-1))
	maxEnemies := int(float64(g.cfg.Enemies.PerWave)*stageMult) + (g.wave-1)*2
	maxEnemies = core.Min(maxEnemies, g.cfg.Enemies.MaxOnScreen)

	if g.spawnTimerMS >= g.spawnRateMS && len(g.enemies) < maxEnemies {
		g.enemies = append(g.enemies, spawnEnemy(g.rng, g.stage, g.wave, len(g.enemies), g.fieldW, &g.cfg))
		g.spawnTimerMS = 0
	}

	kept := g.enemies[:0]
	for _, e := range g.enemies {
		g.addEnemyBullets(e.Update(g.dtMS, g.player.X, g.player.Y))

		killed := false
		for i, b := range g.playerBullets {
			if !rectOverlap(b.X, b.Y, b.Size, e.X, e.Y, e.Size) {
				continue
			}
			if e.TakeDamage(b.Damage) {
				g.onEnemyKilled(e)
				killed = true
			} else {
				g.playSound("enemy_hit", 1.0+(g.player.ComboMultiplier-1.0)*0.08)
			}
			g.playerBullets = append(g.playerBullets[:i], g.playerBullets[i+1:]...)
			break
		}
		if !killed {
			kept = append(kept, e)
		}
	}
	g.enemies = kept

	if g.waveTimerMS >= g.cfg.Waves.DurationMS {
		g.wave++
		g.waveTimerMS = 0

		waveProgress := float64(g.wave-1) / float64(g.cfg.Waves.PerStage)
		rate := g.cfg.Waves.BaseSpawnIntervalMS *
			math.Pow(g.cfg.Scaling.SpawnRate, float64(g.stage-1)) * (1 - waveProgress*0.4)
		g.spawnRateMS = math.Max(g.cfg.Waves.MinSpawnIntervalMS, math.Floor(rate))

		if g.wave > g.cfg.Waves.PerStage {
			g.spawnBoss()
		}
	}
}

// onEnemyKilled handles scoring, combo, meters, and the drop roll.
func (g *Game) onEnemyKilled(e *Enemy) {
	g.player.IncrementCombo()

	g.score += int(float64(g.cfg.Scoring.EnemyKill) * g.player.ComboMultiplier)
	g.kills++
	if g.player.Combo > g.bestCombo {
		g.bestCombo = g.player.Combo
	}

	g.playSound("enemy_death", 1.0+(g.player.ComboMultiplier-1.0)*0.15)

	g.player.UltimateCharge = math.Min(g.player.UltimateMax, g.player.UltimateCharge+2)
	g.player.AbilityCharge = math.Min(g.player.AbilityMax, g.player.AbilityCharge+8)

	if p := rollPowerup(g.rng, e.X, e.Y, &g.cfg); p != nil {
		g.powerups = append(g.powerups, p)
	}
}

// checkPlayerHits runs grazing and hit detection for every enemy bullet.
// A bullet inside the graze ring but outside the hitbox awards graze score
// once; a bullet touching the hitbox connects unless the player is
// phasing. Connecting bullets are removed either way.
func (g *Game) checkPlayerHits() {
	kept := g.enemyBullets[:0]
	for _, b := range g.enemyBullets {
		dist := core.Dist(b.X, b.Y, g.player.X, g.player.Y)

		if _, seen := g.grazed[b.ID]; !seen {
			if dist < g.cfg.Scoring.GrazeDistance && dist > g.player.HitboxRadius {
				g.grazed[b.ID] = struct{}{}
				g.player.GrazeCount++
				g.score += g.cfg.Scoring.Graze
				g.player.AbilityCharge = math.Min(g.player.AbilityMax, g.player.AbilityCharge+2)
			}
		}

		if dist <= b.Size+g.player.HitboxRadius {
			if !g.player.PhaseThrough {
				if g.player.TakeDamage(b.Damage) {
					g.playSound("player_hit", 1.0)
				}
			}
			delete(g.grazed, b.ID)
			continue
		}
		kept = append(kept, b)
	}
	g.enemyBullets = kept
}

// activateUltimate fires the charged ultimate. The laser ultimates wipe
// enemy bullets and damage everything on the field; the clone ultimate
// spawns three autofiring copies instead.
func (g *Game) activateUltimate() {
	if g.player.UltimateCharge < g.player.UltimateMax {
		return
	}
	g.player.UltimateCharge = 0
	g.player.UltimateActive = true
	g.player.UltimateDurationMS = 800

	var damage float64
	switch g.player.Ultimate {
	case UltimateLaserGrid:
		damage = 300
		g.announce("ULTIMATE: GRID")
	case UltimateClone:
		g.announce("ULTIMATE: CLONE")
		for i := 0; i < 3; i++ {
			g.clones = append(g.clones, newClone(g.player.X+float64(i-1)*40, g.player.Y, g.player.Size))
		}
	case UltimateFullscreenLaser:
		damage = 2500
		g.announce("ULTIMATE: LASER")
	}

	if damage > 0 {
		g.enemyBullets = g.enemyBullets[:0]
		g.grazed = make(map[uint64]struct{})

		if g.boss != nil {
			// The boss survives the blast even at zero health; the next
			// direct hit finishes it.
			g.boss.TakeDamage(damage)
		}

		kept := g.enemies[:0]
		for _, e := range g.enemies {
			if e.TakeDamage(damage) {
				g.score += g.cfg.Scoring.EnemyKill
				g.kills++
				continue
			}
			kept = append(kept, e)
		}
		g.enemies = kept
	}

	g.playSound("boss_hit", 1.0)
}

// startNewStage advances to the next stage after a boss kill.
func (g *Game) startNewStage() {
	g.stage++
	g.wave = 1
	g.waveTimerMS = 0
	g.spawnTimerMS = 0

	g.enemyBullets = g.enemyBullets[:0]
	g.enemies = g.enemies[:0]
	g.grazed = make(map[uint64]struct{})

	rate := g.cfg.Waves.BaseSpawnIntervalMS * math.Pow(g.cfg.Scaling.SpawnRate, float64(g.stage-1))
	g.spawnRateMS = math.Max(g.cfg.Waves.MinSpawnIntervalMS, math.Floor(rate))

	g.score += g.cfg.Scoring.StageComplete
	g.announce("STAGE COMPLETE")
}

// spawnBoss starts the stage-end encounter. The boss dispels every
// collected powerup.
func (g *Game) spawnBoss() {
	g.boss = createBoss(g.rng, g.stage, g.fieldW, g.fieldH, &g.cfg)
	g.enemies = g.enemies[:0]
	g.player.ClearPowerups()
	g.announce(g.boss.Name + " APPEARS")
}

// addPlayerBullets stamps IDs and appends to the live list.
func (g *Game) addPlayerBullets(bullets []*Bullet) {
	for _, b := range bullets {
		g.nextBulletID++
		b.ID = g.nextBulletID
	}
	g.playerBullets = append(g.playerBullets, bullets...)
}

// addEnemyBullets stamps IDs and appends to the live list.
func (g *Game) addEnemyBullets(bullets []*Bullet) {
	for _, b := range bullets {
		g.nextBulletID++
		b.ID = g.nextBulletID
	}
	g.enemyBullets = append(g.enemyBullets, bullets...)
}

func (g *Game) announce(msg string) {
	if msg == "" {
		return
	}
	g.announcement = msg
	g.announceMS = 2000
}

func (g *Game) playSound(name string, pitch float64) {
	g.sounds = append(g.sounds, core.SoundCue{Name: name, Pitch: pitch})
}

// rectOverlap checks two axis-aligned boxes given by center and half-size.
func rectOverlap(x1, y1, half1, x2, y2, half2 float64) bool {
	return math.Abs(x1-x2) < half1+half2 && math.Abs(y1-y2) < half1+half2
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// RunStats returns the end-of-run record for persistence.
func (g *Game) RunStats() core.RunStats {
	return core.RunStats{
		Score:     g.score,
		Stage:     g.stage,
		Kills:     g.kills,
		Grazes:    g.player.GrazeCount,
		BestCombo: g.bestCombo,
		Ticks:     g.tickCount,
	}
}

// Register the game with the registry
func init() {
	registry.Register("doughfall", func() registry.Game {
		return New()
	})
}

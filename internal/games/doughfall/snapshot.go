package doughfall

import (
	"math"
	"sort"

	"github.com/vovakirdan/doughfall/internal/core"
)

// Snapshot contains the complete game state for replay/save/determinism
// checks. Uses primitive types only for stable serialization; entity lists
// are flattened into float64 slices.
type Snapshot struct {
	Tick      uint64
	State     string
	Score     int
	Stage     int
	Wave      int
	Kills     int
	BestCombo int

	WaveTimerMS  float64
	SpawnTimerMS float64
	SpawnRateMS  float64
	NextBulletID uint64

	// Player scalars.
	PlayerX            float64
	PlayerY            float64
	PlayerHealth       float64
	PlayerSpeed        float64
	PlayerFocusSpeed   float64
	PhaseCharge        float64
	PhaseTimeMS        float64
	PhaseThrough       bool
	ShootCooldownMS    float64
	DamageMultiplier   float64
	InvincibleMS       float64
	Shield             bool
	PowerLevel         int
	Style              int
	StyleTimerMS       float64
	TrickCooldownMS    float64
	BorderTouched      [4]bool
	ShotsFired         int
	DamageTaken        float64
	UltimateCharge     float64
	UltimateActive     bool
	UltimateDurationMS float64
	Ultimate           int
	AbilityCharge      float64
	AbilityActive      bool
	AbilityDurationMS  float64
	Ability            int
	Combo              int
	ComboMultiplier    float64
	GrazeCount         int

	// Path history (each sample is 3 floats: X, Y, DtMS).
	HistoryCount int
	HistoryData  []float64

	// Bullets (each bullet is 14 floats: ID, X, Y, Angle, Speed, VX, VY,
	// Size, Damage, Color, Homing, Kind, AgeMS, MaxAgeMS).
	PlayerBulletCount int
	PlayerBulletData  []float64
	EnemyBulletCount  int
	EnemyBulletData   []float64

	// Enemies (each enemy is 16 floats: Kind, X, Y, TargetX, TargetY,
	// Health, MaxHealth, Speed, BulletSpeed, BulletDamage, Size, Color,
	// ShootTimerMS, CooldownMS, MovementTimerMS, Rotation).
	EnemyCount int
	EnemyData  []float64

	// Boss (24 floats when present, see flattenBoss).
	HasBoss  bool
	BossData []float64

	// Powerups (each pickup is 6 floats: Kind, X, Y, Size, FallSpeed,
	// LifetimeMS).
	PowerupCount int
	PowerupData  []float64

	// Clones (each clone is 7 floats: X, Y, Size, AgeMS, LifetimeMS,
	// ShootTimerMS, CooldownMS).
	CloneCount int
	CloneData  []float64

	// Grazed bullet IDs, sorted for stable hashing.
	GrazedIDs []uint64

	RNGState uint64
}

func boolToF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func flattenBullets(bullets []*Bullet) []float64 {
	data := make([]float64, 0, len(bullets)*14)
	for _, b := range bullets {
		data = append(data,
			float64(b.ID), b.X, b.Y, b.Angle, b.Speed, b.VX, b.VY,
			b.Size, b.Damage, float64(b.Color), boolToF(b.Homing),
			float64(b.Kind), b.AgeMS, b.MaxAgeMS)
	}
	return data
}

func restoreBullets(data []float64, count int) []*Bullet {
	bullets := make([]*Bullet, 0, count)
	for i := 0; i < count; i++ {
		idx := i * 14
		if idx+13 >= len(data) {
			break
		}
		bullets = append(bullets, &Bullet{
			ID:       uint64(data[idx]),
			X:        data[idx+1],
			Y:        data[idx+2],
			Angle:    data[idx+3],
			Speed:    data[idx+4],
			VX:       data[idx+5],
			VY:       data[idx+6],
			Size:     data[idx+7],
			Damage:   data[idx+8],
			Color:    colorFromF(data[idx+9]),
			Homing:   data[idx+10] == 1,
			Kind:     BulletKind(data[idx+11]),
			AgeMS:    data[idx+12],
			MaxAgeMS: data[idx+13],
		})
	}
	return bullets
}

func flattenBoss(b *Boss) []float64 {
	return []float64{
		float64(b.Kind), b.X, b.Y, b.TargetX, b.TargetY,
		b.Health, b.MaxHealth, b.Size, b.BulletSpeed, b.BulletDamage,
		float64(b.Phase), float64(b.MaxPhases), b.AttackTimerMS,
		b.AttackCooldownMS, float64(b.CurrentAttack), b.PhaseTransitionMS,
		b.IntroMS, b.PowerupDropMS, b.MovementTimerMS, b.Rotation,
		b.DashTimerMS, b.DashDurationMS, b.TeleportMS, boolToF(b.Visible),
	}
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.player

	historyData := make([]float64, 0, len(p.History)*3)
	for _, h := range p.History {
		historyData = append(historyData, h.X, h.Y, h.DtMS)
	}

	enemyData := make([]float64, 0, len(g.enemies)*16)
	for _, e := range g.enemies {
		enemyData = append(enemyData,
			float64(e.Kind), e.X, e.Y, e.TargetX, e.TargetY,
			e.Health, e.MaxHealth, e.Speed, e.BulletSpeed, e.BulletDamage,
			e.Size, float64(e.Color), e.ShootTimerMS, e.CooldownMS,
			e.MovementTimerMS, e.Rotation)
	}

	powerupData := make([]float64, 0, len(g.powerups)*6)
	for _, pu := range g.powerups {
		powerupData = append(powerupData,
			float64(pu.Kind), pu.X, pu.Y, pu.Size, pu.FallSpeed, pu.LifetimeMS)
	}

	cloneData := make([]float64, 0, len(g.clones)*7)
	for _, c := range g.clones {
		cloneData = append(cloneData,
			c.X, c.Y, c.Size, c.AgeMS, c.LifetimeMS, c.ShootTimerMS, c.CooldownMS)
	}

	grazedIDs := make([]uint64, 0, len(g.grazed))
	for id := range g.grazed {
		grazedIDs = append(grazedIDs, id)
	}
	sort.Slice(grazedIDs, func(i, j int) bool { return grazedIDs[i] < grazedIDs[j] })

	snap := Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:     g.state,
		Score:     g.score,
		Stage:     g.stage,
		Wave:      g.wave,
		Kills:     g.kills,
		BestCombo: g.bestCombo,

		WaveTimerMS:  g.waveTimerMS,
		SpawnTimerMS: g.spawnTimerMS,
		SpawnRateMS:  g.spawnRateMS,
		NextBulletID: g.nextBulletID,

		PlayerX:            p.X,
		PlayerY:            p.Y,
		PlayerHealth:       p.Health,
		PlayerSpeed:        p.Speed,
		PlayerFocusSpeed:   p.FocusSpeed,
		PhaseCharge:        p.PhaseCharge,
		PhaseTimeMS:        p.PhaseTimeMS,
		PhaseThrough:       p.PhaseThrough,
		ShootCooldownMS:    p.ShootCooldownMS,
		DamageMultiplier:   p.DamageMultiplier,
		InvincibleMS:       p.InvincibleMS,
		Shield:             p.Shield,
		PowerLevel:         p.PowerLevel,
		Style:              int(p.Style),
		StyleTimerMS:       p.StyleTimerMS,
		TrickCooldownMS:    p.TrickCooldownMS,
		BorderTouched:      p.BorderTouched,
		ShotsFired:         p.ShotsFired,
		DamageTaken:        p.DamageTaken,
		UltimateCharge:     p.UltimateCharge,
		UltimateActive:     p.UltimateActive,
		UltimateDurationMS: p.UltimateDurationMS,
		Ultimate:           int(p.Ultimate),
		AbilityCharge:      p.AbilityCharge,
		AbilityActive:      p.AbilityActive,
		AbilityDurationMS:  p.AbilityDurationMS,
		Ability:            int(p.Ability),
		Combo:              p.Combo,
		ComboMultiplier:    p.ComboMultiplier,
		GrazeCount:         p.GrazeCount,

		HistoryCount: len(p.History),
		HistoryData:  historyData,

		PlayerBulletCount: len(g.playerBullets),
		PlayerBulletData:  flattenBullets(g.playerBullets),
		EnemyBulletCount:  len(g.enemyBullets),
		EnemyBulletData:   flattenBullets(g.enemyBullets),

		EnemyCount: len(g.enemies),
		EnemyData:  enemyData,

		PowerupCount: len(g.powerups),
		PowerupData:  powerupData,
		CloneCount:   len(g.clones),
		CloneData:    cloneData,

		GrazedIDs: grazedIDs,
		RNGState:  g.rng.State(),
	}

	if g.boss != nil {
		snap.HasBoss = true
		snap.BossData = flattenBoss(g.boss)
	}

	return snap
}

// ApplySnapshot restores game state from a snapshot. The game must have
// been Reset first so the config and field dimensions are in place.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.state = snap.State
	g.score = snap.Score
	g.stage = snap.Stage
	g.wave = snap.Wave
	g.kills = snap.Kills
	g.bestCombo = snap.BestCombo

	g.waveTimerMS = snap.WaveTimerMS
	g.spawnTimerMS = snap.SpawnTimerMS
	g.spawnRateMS = snap.SpawnRateMS
	g.nextBulletID = snap.NextBulletID

	p := newPlayer(snap.PlayerX, snap.PlayerY, &g.cfg)
	p.Health = snap.PlayerHealth
	p.Speed = snap.PlayerSpeed
	p.FocusSpeed = snap.PlayerFocusSpeed
	p.PhaseCharge = snap.PhaseCharge
	p.PhaseTimeMS = snap.PhaseTimeMS
	p.PhaseThrough = snap.PhaseThrough
	p.ShootCooldownMS = snap.ShootCooldownMS
	p.DamageMultiplier = snap.DamageMultiplier
	p.InvincibleMS = snap.InvincibleMS
	p.Shield = snap.Shield
	p.PowerLevel = snap.PowerLevel
	p.Style = WeaponStyle(snap.Style)
	p.StyleTimerMS = snap.StyleTimerMS
	p.TrickCooldownMS = snap.TrickCooldownMS
	p.BorderTouched = snap.BorderTouched
	p.ShotsFired = snap.ShotsFired
	p.DamageTaken = snap.DamageTaken
	p.UltimateCharge = snap.UltimateCharge
	p.UltimateActive = snap.UltimateActive
	p.UltimateDurationMS = snap.UltimateDurationMS
	p.Ultimate = UltimateType(snap.Ultimate)
	p.AbilityCharge = snap.AbilityCharge
	p.AbilityActive = snap.AbilityActive
	p.AbilityDurationMS = snap.AbilityDurationMS
	p.Ability = AbilityType(snap.Ability)
	p.Combo = snap.Combo
	p.ComboMultiplier = snap.ComboMultiplier
	p.GrazeCount = snap.GrazeCount

	p.History = make([]historyPoint, 0, snap.HistoryCount)
	for i := 0; i < snap.HistoryCount; i++ {
		idx := i * 3
		if idx+2 >= len(snap.HistoryData) {
			break
		}
		p.History = append(p.History, historyPoint{
			X:    snap.HistoryData[idx],
			Y:    snap.HistoryData[idx+1],
			DtMS: snap.HistoryData[idx+2],
		})
	}
	g.player = p

	g.playerBullets = restoreBullets(snap.PlayerBulletData, snap.PlayerBulletCount)
	g.enemyBullets = restoreBullets(snap.EnemyBulletData, snap.EnemyBulletCount)

	g.enemies = make([]*Enemy, 0, snap.EnemyCount)
	for i := 0; i < snap.EnemyCount; i++ {
		idx := i * 16
		if idx+15 >= len(snap.EnemyData) {
			break
		}
		d := snap.EnemyData[idx:]
		g.enemies = append(g.enemies, &Enemy{
			Kind:            EnemyKind(d[0]),
			X:               d[1],
			Y:               d[2],
			TargetX:         d[3],
			TargetY:         d[4],
			Health:          d[5],
			MaxHealth:       d[6],
			Speed:           d[7],
			BulletSpeed:     d[8],
			BulletDamage:    d[9],
			Size:            d[10],
			Color:           colorFromF(d[11]),
			ShootTimerMS:    d[12],
			CooldownMS:      d[13],
			MovementTimerMS: d[14],
			Rotation:        d[15],
		})
	}

	g.boss = nil
	if snap.HasBoss && len(snap.BossData) >= 24 {
		d := snap.BossData
		kind := BossKind(d[0])
		g.boss = &Boss{
			Kind:              kind,
			Name:              bossNames[kind],
			X:                 d[1],
			Y:                 d[2],
			TargetX:           d[3],
			TargetY:           d[4],
			Health:            d[5],
			MaxHealth:         d[6],
			Size:              d[7],
			BulletSpeed:       d[8],
			BulletDamage:      d[9],
			Color:             bossColors[kind],
			Phase:             int(d[10]),
			MaxPhases:         int(d[11]),
			AttackTimerMS:     d[12],
			AttackCooldownMS:  d[13],
			CurrentAttack:     int(d[14]),
			PhaseTransitionMS: d[15],
			IntroMS:           d[16],
			PowerupDropMS:     d[17],
			MovementTimerMS:   d[18],
			Rotation:          d[19],
			DashTimerMS:       d[20],
			DashDurationMS:    d[21],
			TeleportMS:        d[22],
			Visible:           d[23] == 1,
		}
	}

	g.powerups = make([]*Powerup, 0, snap.PowerupCount)
	for i := 0; i < snap.PowerupCount; i++ {
		idx := i * 6
		if idx+5 >= len(snap.PowerupData) {
			break
		}
		d := snap.PowerupData[idx:]
		kind := PowerupKind(d[0])
		g.powerups = append(g.powerups, &Powerup{
			Kind:       kind,
			X:          d[1],
			Y:          d[2],
			Size:       d[3],
			FallSpeed:  d[4],
			LifetimeMS: d[5],
			Color:      powerupColors[kind],
		})
	}

	g.clones = make([]*Clone, 0, snap.CloneCount)
	for i := 0; i < snap.CloneCount; i++ {
		idx := i * 7
		if idx+6 >= len(snap.CloneData) {
			break
		}
		d := snap.CloneData[idx:]
		g.clones = append(g.clones, &Clone{
			X:            d[0],
			Y:            d[1],
			Size:         d[2],
			AgeMS:        d[3],
			LifetimeMS:   d[4],
			ShootTimerMS: d[5],
			CooldownMS:   d[6],
		})
	}

	g.grazed = make(map[uint64]struct{}, len(snap.GrazedIDs))
	for _, id := range snap.GrazedIDs {
		g.grazed[id] = struct{}{}
	}

	g.rng.SetState(snap.RNGState)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BestCombo) //#nosec G115 -- hash computation
	h = h*31 + snap.NextBulletID

	h = mixF(h, snap.WaveTimerMS)
	h = mixF(h, snap.SpawnTimerMS)
	h = mixF(h, snap.SpawnRateMS)

	h = mixF(h, snap.PlayerX)
	h = mixF(h, snap.PlayerY)
	h = mixF(h, snap.PlayerHealth)
	h = mixF(h, snap.PhaseCharge)
	h = mixF(h, snap.ShootCooldownMS)
	h = mixF(h, snap.DamageMultiplier)
	h = mixF(h, snap.InvincibleMS)
	h = mixF(h, snap.UltimateCharge)
	h = mixF(h, snap.AbilityCharge)
	h = mixF(h, snap.ComboMultiplier)
	h = mixB(h, snap.PhaseThrough)
	h = mixB(h, snap.Shield)
	h = mixB(h, snap.UltimateActive)
	h = mixB(h, snap.AbilityActive)
	h = h*31 + uint64(snap.PowerLevel) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Style)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ultimate)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ability)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GrazeCount) //#nosec G115 -- hash computation

	for _, v := range snap.HistoryData {
		h = mixF(h, v)
	}
	for _, v := range snap.PlayerBulletData {
		h = mixF(h, v)
	}
	for _, v := range snap.EnemyBulletData {
		h = mixF(h, v)
	}
	for _, v := range snap.EnemyData {
		h = mixF(h, v)
	}
	for _, v := range snap.PowerupData {
		h = mixF(h, v)
	}
	for _, v := range snap.CloneData {
		h = mixF(h, v)
	}
	h = mixB(h, snap.HasBoss)
	for _, v := range snap.BossData {
		h = mixF(h, v)
	}
	for _, id := range snap.GrazedIDs {
		h = h*31 + id
	}

	h = h*31 + snap.RNGState
	return h
}

// mixF folds the exact bit pattern of a float into the hash so any drift
// between runs shows up.
func mixF(h uint64, v float64) uint64 {
	return h*31 + math.Float64bits(v)
}

func mixB(h uint64, b bool) uint64 {
	if b {
		return h*31 + 1
	}
	return h * 31
}

func colorFromF(v float64) core.Color {
	return core.Color(v)
}

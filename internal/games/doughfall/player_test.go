package doughfall

import (
	"testing"

	"github.com/vovakirdan/doughfall/internal/config"
	"github.com/vovakirdan/doughfall/internal/core"
)

// Default field dimensions, matching the embedded config.
const (
	testFieldW = 915.0
	testFieldH = 1320.0
)

func testPlayer() *Player {
	cfg := config.DefaultDoughfallConfig()
	return newPlayer(testFieldW/2, testFieldH-100, &cfg)
}

func TestComboMultiplierLadder(t *testing.T) {
	p := testPlayer()

	cases := []struct {
		combo int
		want  float64
	}{
		{0, 1.0},
		{4, 1.0},
		{5, 1.5},
		{14, 1.5},
		{15, 2.0},
		{30, 3.0},
		{50, 5.0},
		{120, 5.0},
	}
	for _, c := range cases {
		p.Combo = c.combo
		p.updateComboMultiplier()
		if p.ComboMultiplier != c.want {
			t.Errorf("Combo %d: multiplier %.1f, expected %.1f", c.combo, p.ComboMultiplier, c.want)
		}
	}
}

func TestTakeDamageShieldAbsorbsHit(t *testing.T) {
	p := testPlayer()
	p.Shield = true
	p.Combo = 8
	healthBefore := p.Health

	dead := p.TakeDamage(10)

	if dead {
		t.Error("Shielded hit should not kill")
	}
	if p.Shield {
		t.Error("Shield should break on the hit")
	}
	if p.Health != healthBefore {
		t.Error("Shield should absorb all damage")
	}
	if p.Combo != 0 {
		t.Error("Even a shielded hit should break the combo")
	}
}

func TestTakeDamageInvincibilityWindow(t *testing.T) {
	p := testPlayer()

	p.TakeDamage(10)
	if p.InvincibleMS != p.cfg.Player.InvincibilityMS {
		t.Errorf("Hit should grant %v ms invincibility, got %v", p.cfg.Player.InvincibilityMS, p.InvincibleMS)
	}

	healthAfterFirst := p.Health
	p.TakeDamage(10)
	if p.Health != healthAfterFirst {
		t.Error("Hit during invincibility window should be ignored")
	}
}

func TestTakeDamageDeath(t *testing.T) {
	p := testPlayer()
	p.Health = 5

	if !p.TakeDamage(10) {
		t.Error("Lethal damage should report death")
	}
	if p.Health != 0 {
		t.Errorf("Dead player health should be 0, got %.1f", p.Health)
	}
	if p.Alive() {
		t.Error("Dead player should not report alive")
	}
}

func TestHealAndBoostClamps(t *testing.T) {
	p := testPlayer()

	p.Health = p.MaxHealth - 5
	p.Heal(30)
	if p.Health != p.MaxHealth {
		t.Errorf("Heal should clamp at max health, got %.1f", p.Health)
	}

	for i := 0; i < 10; i++ {
		p.AddPower()
	}
	if p.PowerLevel != 4 {
		t.Errorf("Power level should cap at 4, got %d", p.PowerLevel)
	}

	for i := 0; i < 10; i++ {
		p.AddDamageBoost()
	}
	if p.DamageMultiplier != 3.0 {
		t.Errorf("Damage multiplier should cap at 3.0, got %.1f", p.DamageMultiplier)
	}
}

func TestShootBulletCountsPerStyle(t *testing.T) {
	cases := []struct {
		style WeaponStyle
		power int
		want  int
	}{
		{StyleNormal, 1, 1},
		{StyleNormal, 2, 2},
		{StyleNormal, 3, 3},
		{StyleNormal, 4, 5},
		{StyleBurst, 1, 1},
		{StyleBurst, 2, 3},
		{StyleLaser, 1, 3},
		{StyleLaser, 4, 6},
		{StyleSpread, 1, 6},
		{StyleSpread, 3, 8},
		{StyleHoming, 1, 1},
		{StyleHoming, 2, 3},
		{StyleHoming, 4, 5},
		{StyleRapid, 1, 1},
		{StyleRapid, 2, 3},
		{StyleRapid, 3, 5},
	}
	for _, c := range cases {
		p := testPlayer()
		p.Style = c.style
		p.PowerLevel = c.power
		bullets := p.Shoot()
		if len(bullets) != c.want {
			t.Errorf("%s at power %d: %d bullets, expected %d", c.style, c.power, len(bullets), c.want)
		}
		if p.ShootCooldownMS <= 0 {
			t.Errorf("%s: shooting should set a cooldown", c.style)
		}
	}
}

func TestShootCooldownBlocks(t *testing.T) {
	p := testPlayer()

	if p.Shoot() == nil {
		t.Fatal("First shot should fire")
	}
	if p.Shoot() != nil {
		t.Error("Second shot should be blocked by cooldown")
	}
}

func TestHomingShotsAreHoming(t *testing.T) {
	p := testPlayer()
	p.Style = StyleHoming
	p.PowerLevel = 4

	for _, b := range p.Shoot() {
		if !b.Homing {
			t.Error("Homing style should produce homing bullets")
		}
	}
}

func TestAbilityActivation(t *testing.T) {
	p := testPlayer()

	p.AbilityCharge = 50
	if p.ActivateAbility() {
		t.Error("Ability should not fire on a half meter")
	}

	p.AbilityCharge = p.AbilityMax
	p.Ability = AbilityGlassCannon
	if !p.ActivateAbility() {
		t.Fatal("Full meter should activate the ability")
	}
	if p.Health != 20 {
		t.Errorf("Glass cannon should drop health to 20, got %.1f", p.Health)
	}
	if p.AbilityCharge != 0 {
		t.Error("Activation should drain the meter")
	}
	if p.AbilityDurationMS != 8000 {
		t.Errorf("Glass cannon duration = %v, expected 8000", p.AbilityDurationMS)
	}
}

func TestBerserkerDamageScalesWithHealth(t *testing.T) {
	p := testPlayer()
	p.Ability = AbilityBerserker
	p.AbilityActive = true

	cases := []struct {
		health float64
		want   float64
	}{
		{p.MaxHealth, 1.5},
		{p.MaxHealth * 0.45, 2.0},
		{p.MaxHealth * 0.2, 2.5},
	}
	for _, c := range cases {
		p.Health = c.health
		if got := p.abilityDamageMultiplier(); got != c.want {
			t.Errorf("Berserker at %.0f health: multiplier %.1f, expected %.1f", c.health, got, c.want)
		}
	}
}

func TestInvincibleAbilityBlocksDamage(t *testing.T) {
	p := testPlayer()
	p.Ability = AbilityInvincible
	p.AbilityActive = true
	healthBefore := p.Health

	if p.TakeDamage(1000) {
		t.Error("Invincible ability should prevent death")
	}
	if p.Health != healthBefore {
		t.Error("Invincible ability should prevent all damage")
	}
}

func TestClearPowerups(t *testing.T) {
	p := testPlayer()
	p.DamageMultiplier = 2.5
	p.Shield = true
	p.Style = StyleLaser
	p.PowerLevel = 3

	p.ClearPowerups()

	if p.DamageMultiplier != 1.0 || p.Shield || p.Style != StyleNormal {
		t.Error("ClearPowerups should reset all boosts")
	}
	if p.PowerLevel != 2 {
		t.Errorf("ClearPowerups should drop power by one step, got %d", p.PowerLevel)
	}

	p.PowerLevel = 1
	p.ClearPowerups()
	if p.PowerLevel != 1 {
		t.Errorf("Power level should never drop below 1, got %d", p.PowerLevel)
	}
}

func TestStyleAndUltimateCycling(t *testing.T) {
	p := testPlayer()

	seen := map[WeaponStyle]bool{p.Style: true}
	for i := 0; i < int(numWeaponStyles)-1; i++ {
		seen[p.SwitchStyle()] = true
	}
	if len(seen) != int(numWeaponStyles) {
		t.Errorf("Style cycle visited %d styles, expected %d", len(seen), numWeaponStyles)
	}
	if p.SwitchStyle() != StyleNormal {
		t.Error("Style cycle should wrap around")
	}

	p.Ultimate = UltimateFullscreenLaser
	if p.SwitchUltimateType() != UltimateLaserGrid {
		t.Error("Ultimate cycle should wrap around")
	}
}

func TestPhaseMeterDepletesAndRegens(t *testing.T) {
	p := testPlayer()
	sprint := core.NewInputFrame()
	sprint.Set(core.ActionSprint)

	// One second of sprinting at 60 ticks.
	for i := 0; i < 60; i++ {
		p.Update(1000.0/60, sprint, testFieldW, testFieldH)
	}
	if !p.PhaseThrough {
		t.Error("Sprinting with charge should keep phasing")
	}
	if p.PhaseCharge >= 100 {
		t.Errorf("Sprinting should drain the phase meter, got %.1f", p.PhaseCharge)
	}
	drained := p.PhaseCharge

	// One second idle.
	for i := 0; i < 60; i++ {
		p.Update(1000.0/60, core.NewInputFrame(), testFieldW, testFieldH)
	}
	if p.PhaseThrough {
		t.Error("Phasing should end shortly after sprint is released")
	}
	if p.PhaseCharge <= drained {
		t.Error("Idle phase meter should regenerate")
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	p := testPlayer()
	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	left.Set(core.ActionUp)

	for i := 0; i < 1000; i++ {
		p.Update(1000.0/60, left, testFieldW, testFieldH)
	}
	if p.X < p.Size || p.Y < p.Size {
		t.Errorf("Player escaped the field at (%.1f, %.1f)", p.X, p.Y)
	}
	if !p.BorderTouched[borderLeft] || !p.BorderTouched[borderTop] {
		t.Error("Hugging the corner should mark left and top borders touched")
	}
}

func TestFocusSlowsMovement(t *testing.T) {
	fast := testPlayer()
	slow := testPlayer()

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	focusRight := right.Clone()
	focusRight.Set(core.ActionFocus)

	fast.Update(1000.0/60, right, testFieldW, testFieldH)
	slow.Update(1000.0/60, focusRight, testFieldW, testFieldH)

	if slow.X-testFieldW/2 >= fast.X-testFieldW/2 {
		t.Error("Focus movement should be slower than normal movement")
	}
}

package doughfall

import (
	"fmt"

	"github.com/vovakirdan/doughfall/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '▲'
	CloneChar       = '△'
	EnemyChar       = '▼'
	BossChar        = '█'
	EnemyBulletChar = '•'
	PlayerShotChar  = '|'
	LaserChar       = '║'
	BurstChar       = '●'
	HomingShotChar  = '+'
)

var powerupGlyphs = map[PowerupKind]rune{
	PowerupHealth:             'H',
	PowerupDamage:             'D',
	PowerupShield:             'S',
	PowerupPower:              'P',
	PowerupStyle:              'W',
	PowerupUltimateType:       'U',
	PowerupAbilityBerserker:   'A',
	PowerupAbilityGlassCannon: 'A',
	PowerupAbilityInvincible:  'A',
}

// Render draws the current game state to the screen. The field is
// projected onto the area between the HUD rows and the meter row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	top, bottom := 2, dst.Height()-2
	for _, p := range g.powerups {
		x, y := g.project(dst, p.X, p.Y, top, bottom)
		dst.SetCell(x, y, powerupGlyphs[p.Kind], p.Color)
	}
	for _, b := range g.enemyBullets {
		x, y := g.project(dst, b.X, b.Y, top, bottom)
		dst.SetCell(x, y, EnemyBulletChar, b.Color)
	}
	for _, b := range g.playerBullets {
		x, y := g.project(dst, b.X, b.Y, top, bottom)
		dst.SetCell(x, y, playerShotGlyph(b), b.Color)
	}
	for _, e := range g.enemies {
		x, y := g.project(dst, e.X, e.Y, top, bottom)
		dst.SetCell(x, y, EnemyChar, e.Color)
	}
	if g.boss != nil {
		g.renderBoss(dst, top, bottom)
	}
	for _, c := range g.clones {
		x, y := g.project(dst, c.X, c.Y, top, bottom)
		dst.SetCell(x, y, CloneChar, core.ColorBlue)
	}

	px, py := g.project(dst, g.player.X, g.player.Y, top, bottom)
	playerColor := core.ColorCyan
	if g.player.InvincibleMS > 0 && (g.tickCount/6)%2 == 0 {
		playerColor = core.ColorGray
	} else if g.player.PhaseThrough {
		playerColor = core.ColorBrightCyan
	}
	dst.SetCell(px, py, PlayerChar, playerColor)

	g.renderMeters(dst)
	g.renderOverlay(dst)
}

func playerShotGlyph(b *Bullet) rune {
	switch b.Kind {
	case KindLaser:
		return LaserChar
	case KindBurst:
		return BurstChar
	case KindHoming:
		return HomingShotChar
	}
	return PlayerShotChar
}

// project maps a field position to a screen cell inside the play area.
func (g *Game) project(dst *core.Screen, x, y float64, top, bottom int) (int, int) {
	w := dst.Width()
	h := bottom - top
	cx := int(x / g.fieldW * float64(w))
	cy := top + int(y/g.fieldH*float64(h))
	return core.Clamp(cx, 0, w-1), core.Clamp(cy, 0, bottom-1)
}

// renderBoss draws the boss as a block scaled to its size, with the phase
// transition shown by a dimmed color. An invisible boss is not drawn.
func (g *Game) renderBoss(dst *core.Screen, top, bottom int) {
	b := g.boss
	if !b.Visible {
		return
	}

	color := b.Color
	if b.PhaseTransitionMS > 0 || b.InIntro() {
		color = core.ColorGray
	}

	// Half extents in cells, at least 1x1.
	hw := core.Max(1, int(b.Size/g.fieldW*float64(dst.Width())))
	hh := core.Max(1, int(b.Size/g.fieldH*float64(bottom-top)))
	cx, cy := g.project(dst, b.X, b.Y, top, bottom)
	for dy := -hh; dy <= hh; dy++ {
		for dx := -hw; dx <= hw; dx++ {
			y := cy + dy
			if y >= top && y < bottom {
				dst.SetCell(cx+dx, y, BossChar, color)
			}
		}
	}
}

// renderHUD draws score, stage/wave, health, and combo on the top rows.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	var mid string
	if g.boss != nil {
		mid = fmt.Sprintf("Stage %d  %s", g.stage, g.boss.Name)
	} else {
		mid = fmt.Sprintf("Stage %d  Wave %d/%d", g.stage, g.wave, g.cfg.Waves.PerStage)
	}
	dst.DrawTextCentered(0, mid)

	right := fmt.Sprintf("HP %.0f/%.0f", g.player.Health, g.player.MaxHealth)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	if g.boss != nil {
		g.renderBossBar(dst, 1)
	} else if g.player.Combo > 0 {
		combo := fmt.Sprintf("Combo %d x%.1f", g.player.Combo, g.player.ComboMultiplier)
		dst.DrawTextColored(1, 1, combo, core.ColorYellow)
	} else {
		dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDefault)
	}
}

// renderBossBar draws the boss health bar with phase pips.
func (g *Game) renderBossBar(dst *core.Screen, y int) {
	b := g.boss
	barW := dst.Width() - 12
	if barW < 10 {
		barW = 10
	}
	filled := int(b.Health / b.MaxHealth * float64(barW))
	filled = core.Clamp(filled, 0, barW)

	dst.DrawText(1, y, "BOSS ")
	for i := 0; i < barW; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		dst.SetCell(6+i, y, ch, b.Color)
	}
	dst.DrawText(7+barW, y, fmt.Sprintf("P%d/%d", b.Phase, b.MaxPhases))
}

// renderMeters draws the phase, ultimate, and ability meters on the
// bottom rows along with the current loadout.
func (g *Game) renderMeters(dst *core.Screen) {
	y := dst.Height() - 2
	dst.DrawHLine(0, y, dst.Width(), '─', core.ColorDefault)

	y = dst.Height() - 1
	w := dst.Width()

	phase := meterString("PHS", g.player.PhaseCharge, g.player.PhaseMax)
	ult := meterString("ULT", g.player.UltimateCharge, g.player.UltimateMax)
	ability := meterString("ABL", g.player.AbilityCharge, g.player.AbilityMax)

	dst.DrawTextColored(1, y, phase, core.ColorCyan)
	dst.DrawTextColored(len(phase)+3, y, ult, ultColor(g.player))
	dst.DrawTextColored(len(phase)+len(ult)+5, y, ability, abilityColor(g.player))

	loadout := fmt.Sprintf("%s  %s", g.player.Style, g.player.Ability)
	if len(loadout)+1 < w {
		dst.DrawText(w-len(loadout)-1, y, loadout)
	}
}

func meterString(label string, value, max float64) string {
	const width = 8
	filled := core.Clamp(int(value/max*width), 0, width)
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return label + " " + string(bar)
}

func ultColor(p *Player) core.Color {
	if p.UltimateCharge >= p.UltimateMax {
		return core.ColorBrightYellow
	}
	return core.ColorYellow
}

func abilityColor(p *Player) core.Color {
	if p.AbilityActive {
		return core.ColorBrightRed
	}
	if p.AbilityCharge >= p.AbilityMax {
		return core.ColorBrightGreen
	}
	return core.ColorGreen
}

// renderOverlay draws announcements and game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.announcement != "" && g.state == StatePlaying {
		dst.DrawTextCentered(3, g.announcement)
	}

	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  Stage: %d  |  Press R to restart", g.score, g.stage)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorDefault)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

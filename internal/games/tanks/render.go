package tanks

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tank-battle/internal/core"
	"github.com/vovakirdan/tank-battle/internal/games/tanks/engine"
)

// Glyphs
const (
	PlayerGlyph       = '█'
	EnemyGlyph        = '▓'
	BossGlyph         = '█'
	PlayerBulletGlyph = '•'
	EnemyBulletGlyph  = '∙'
	BarFullGlyph      = '■'
	BarEmptyGlyph     = '·'
)

// hudRows is the number of screen rows above the arena border.
const hudRows = 2

// viewport maps arena coordinates to screen cells.
type viewport struct {
	arena  core.Box
	inner  core.Rect // Cells inside the border
	sx, sy float64
}

func newViewport(arena core.Box, screenW, screenH int) viewport {
	inner := core.NewRect(1, hudRows+1, screenW-2, screenH-hudRows-2)
	return viewport{
		arena: arena,
		inner: inner,
		sx:    float64(inner.W) / arena.W,
		sy:    float64(inner.H) / arena.H,
	}
}

// cells returns the screen rectangle covered by b, at least one cell in
// each direction. The result may extend past the inner area.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor((b.X - v.arena.X) * v.sx))
	x1 := int(math.Ceil((b.Right() - v.arena.X) * v.sx))
	y0 := int(math.Floor((b.Y - v.arena.Y) * v.sy))
	y1 := int(math.Ceil((b.Bottom() - v.arena.Y) * v.sy))
	return core.NewRect(v.inner.X+x0, v.inner.Y+y0, max(x1-x0, 1), max(y1-y0, 1))
}

// point returns the cell containing c.
func (v viewport) point(c core.Vec) (int, int) {
	x := int(math.Floor((c.X - v.arena.X) * v.sx))
	y := int(math.Floor((c.Y - v.arena.Y) * v.sy))
	return v.inner.X + x, v.inner.Y + y
}

// fill draws r clipped to the inner area.
func (v viewport) fill(dst *core.Screen, r core.Rect, glyph rune) {
	for y := max(r.Y, v.inner.Y); y < min(r.Bottom(), v.inner.Bottom()); y++ {
		for x := max(r.X, v.inner.X); x < min(r.Right(), v.inner.Right()); x++ {
			dst.Set(x, y, glyph)
		}
	}
}

func (v viewport) contains(x, y int) bool {
	return x >= v.inner.X && x < v.inner.Right() && y >= v.inner.Y && y < v.inner.Bottom()
}

// Render draws the arena, HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	view := g.sim.World.View()
	vp := newViewport(view.Arena, dst.Width(), dst.Height())

	g.renderHUD(dst, view.HUD)

	dst.SetColor(core.ColorGray)
	dst.DrawBox(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows))

	for _, e := range view.Entities {
		g.renderEntity(dst, vp, e)
	}

	g.renderOverlay(dst, view)
}

func (g *Game) renderEntity(dst *core.Screen, vp viewport, e engine.EntityView) {
	switch e.Kind {
	case engine.KindPlayer:
		color := core.ColorBrightGreen
		switch {
		case g.hitFlash > 0 && g.hitFlash%4 < 2:
			color = core.ColorBrightRed
		case g.sim.World.Player.Invincible:
			color = core.ColorBrightCyan
		}
		dst.SetColor(color)
		vp.fill(dst, vp.cells(e.Box), PlayerGlyph)

	case engine.KindEnemy:
		r := vp.cells(e.Box)
		dst.SetColor(core.ColorRed)
		vp.fill(dst, r, EnemyGlyph)
		renderHealthBar(dst, vp, r, e.Health)

	case engine.KindBoss:
		r := vp.cells(e.Box)
		dst.SetColor(core.ColorBrightMagenta)
		vp.fill(dst, r, BossGlyph)
		renderHealthBar(dst, vp, r, e.Health)

	case engine.KindPlayerBullet, engine.KindEnemyBullet:
		x, y := vp.point(e.Box.Center())
		if !vp.contains(x, y) {
			return
		}
		if e.Kind == engine.KindPlayerBullet {
			dst.SetColor(core.ColorBrightYellow)
			dst.Set(x, y, PlayerBulletGlyph)
		} else {
			dst.SetColor(core.ColorOrange)
			dst.Set(x, y, EnemyBulletGlyph)
		}

	case engine.KindPowerUp:
		dst.SetColor(powerUpColor(e.PowerUp))
		vp.fill(dst, vp.cells(e.Box), powerUpGlyph(e.PowerUp))
	}
}

// renderHealthBar draws a bar on the row above r.
func renderHealthBar(dst *core.Screen, vp viewport, r core.Rect, ratio float64) {
	y := r.Y - 1
	if y < vp.inner.Y {
		return
	}
	filled := int(math.Round(ratio * float64(r.W)))
	dst.SetColor(healthColor(ratio))
	for i := range r.W {
		x := r.X + i
		if !vp.contains(x, y) {
			continue
		}
		if i == filled {
			dst.SetColor(core.ColorGray)
		}
		if i < filled {
			dst.Set(x, y, BarFullGlyph)
		} else {
			dst.Set(x, y, BarEmptyGlyph)
		}
	}
}

func healthColor(ratio float64) core.Color {
	switch {
	case ratio > 0.6:
		return core.ColorGreen
	case ratio > 0.3:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

func powerUpGlyph(k engine.PowerUpKind) rune {
	switch k {
	case engine.PowerUpScoreMultiplier:
		return 'M'
	case engine.PowerUpHealth:
		return 'H'
	case engine.PowerUpInvincibility:
		return 'S'
	case engine.PowerUpAmmo:
		return 'A'
	default:
		return '?'
	}
}

func powerUpColor(k engine.PowerUpKind) core.Color {
	switch k {
	case engine.PowerUpScoreMultiplier:
		return core.ColorYellow
	case engine.PowerUpHealth:
		return core.ColorGreen
	case engine.PowerUpInvincibility:
		return core.ColorCyan
	default:
		return core.ColorBlue
	}
}

// bar renders a text progress bar of the given width.
func bar(ratio float64, width int) string {
	filled := int(math.Round(core.ClampF(ratio, 0, 1) * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// seconds converts ticks to whole seconds at the runtime tick rate.
func (g *Game) seconds(ticks int) int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return (ticks + rate - 1) / rate
}

// renderHUD draws score, lives and ammo on row 0 and progress and effects on row 1.
func (g *Game) renderHUD(dst *core.Screen, hud engine.HUD) {
	dst.SetColor(core.ColorWhite)
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Hi: %d", hud.Score, hud.HighScore))

	dst.SetColor(healthColor(hud.Health))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d  HP %s  Ammo: %d", hud.Lives, bar(hud.Health, 8), hud.Bullets))

	dst.SetColor(core.ColorWhite)
	levelText := fmt.Sprintf("Level: %s  Next: %s", hud.Level, hud.NextLevel)
	dst.DrawText(dst.Width()-len([]rune(levelText))-1, 0, levelText)

	var left string
	if hud.BossPhase != "" {
		dst.SetColor(core.ColorBrightMagenta)
		left = fmt.Sprintf("BOSS %s %s", bar(hud.BossHealth, 20), hud.BossPhase)
	} else {
		dst.SetColor(core.ColorCyan)
		w := g.sim.World
		left = fmt.Sprintf("Kills %s %d/%d", bar(hud.Progress, 20), w.EnemiesKilled, w.MaxEnemies)
	}
	dst.DrawText(1, 1, left)

	var effects []string
	if hud.MultiplierTicks > 0 {
		effects = append(effects, fmt.Sprintf("x%d %ds", hud.Multiplier, g.seconds(hud.MultiplierTicks)))
	}
	if hud.InvincibleTicks > 0 {
		effects = append(effects, fmt.Sprintf("Shield %ds", g.seconds(hud.InvincibleTicks)))
	}
	if len(effects) > 0 {
		text := strings.Join(effects, "  ")
		dst.SetColor(core.ColorYellow)
		dst.DrawText(dst.Width()-len([]rune(text))-1, 1, text)
	}
}

// renderOverlay draws the pause, level-cleared and game-over boxes.
func (g *Game) renderOverlay(dst *core.Screen, view engine.View) {
	dst.SetColor(core.ColorWhite)
	switch {
	case view.Phase == engine.PhaseVictory:
		drawCenteredBox(dst,
			fmt.Sprintf("LEVEL %s CLEARED", view.HUD.Level),
			fmt.Sprintf("Enter: go to level %s  |  Q: quit", view.HUD.NextLevel))

	case view.Phase == engine.PhaseGameOver && view.Won:
		drawCenteredBox(dst, "BOSS DEFEATED - YOU WIN!",
			fmt.Sprintf("Final Score: %d  |  Press R to restart", view.HUD.Score))

	case view.Phase == engine.PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  High: %d  |  Press R to restart", view.HUD.Score, view.HUD.HighScore))

	case view.Phase == engine.PhaseQuit:
		drawCenteredBox(dst, "THANKS FOR PLAYING", fmt.Sprintf("Score: %d", view.HUD.Score))

	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a bordered message box in the middle of the screen.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := min(max(titleLen, subtitleLen)+4, dst.Width())
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-titleLen)/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-subtitleLen)/2, box.Y+3, subtitle)
}

package tanks

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/core"
	"github.com/vovakirdan/tank-battle/internal/games/tanks/engine"
)

func newTestGame(seed int64) *Game {
	g := New(Options{Config: config.DefaultTanksConfig()})
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func TestGameIdentity(t *testing.T) {
	g := New(Options{Config: config.DefaultTanksConfig()})
	if g.ID() != "tanks" {
		t.Errorf("ID() = %q, expected tanks", g.ID())
	}
	if g.Title() != "Tank Battle" {
		t.Errorf("Title() = %q", g.Title())
	}
	if g.Difficulty() != config.DifficultyNormal {
		t.Errorf("default difficulty = %q, expected normal", g.Difficulty())
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame())

	res := g.Step(core.FrameOf(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("Pause should pause the game")
	}
	tick := g.World().Tick
	for range 10 {
		g.Step(core.FrameOf(core.ActionRight, core.ActionFire))
	}
	if g.World().Tick != tick {
		t.Errorf("world ticked while paused: %d -> %d", tick, g.World().Tick)
	}

	res = g.Step(core.FrameOf(core.ActionPause))
	if res.State.Paused {
		t.Error("second Pause should resume")
	}
	if g.World().Tick != tick+1 {
		t.Errorf("resume frame should tick, got %d", g.World().Tick)
	}
}

func TestVictoryPromptContinue(t *testing.T) {
	g := newTestGame(1)
	g.World().Phase = engine.PhaseVictory

	if !g.State().AwaitingChoice {
		t.Fatal("State should report the pending choice")
	}
	g.Step(core.FrameOf(core.ActionFire, core.ActionDown))
	if g.World().Phase != engine.PhaseVictory {
		t.Fatal("only Confirm or Quit answer the prompt")
	}

	g.Step(core.FrameOf(core.ActionConfirm))
	if g.World().Phase != engine.PhasePlaying || g.World().Level != 2 {
		t.Errorf("after confirm: phase %s level %s", g.World().Phase, g.World().Level)
	}
	if n := g.LastTick().Count(engine.EventLevelStarted); n != 1 {
		t.Errorf("LastTick reports %d level starts, want 1", n)
	}
}

func TestVictoryPromptQuit(t *testing.T) {
	g := newTestGame(1)
	g.World().Phase = engine.PhaseVictory

	res := g.Step(core.FrameOf(core.ActionQuit))
	if !res.State.Quit {
		t.Error("declining to continue should end the session")
	}
	if res.State.AwaitingChoice {
		t.Error("prompt should be answered")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(1)
	for range 5 {
		g.Step(core.FrameOf(core.ActionRestart))
	}
	if g.World().Tick != 5 {
		t.Fatalf("Restart while playing should be ignored, tick = %d", g.World().Tick)
	}

	w := g.World()
	w.Player.Score = 400
	w.HighScore = 400
	w.Phase = engine.PhaseGameOver
	if !g.State().GameOver {
		t.Fatal("State should report game over")
	}

	g.Step(core.FrameOf(core.ActionRestart))
	w = g.World()
	if w.Phase != engine.PhasePlaying || w.Tick != 0 || w.Player.Score != 0 {
		t.Errorf("restart did not reset the run: %+v", w.Snapshot())
	}
	if w.HighScore != 400 {
		t.Errorf("HighScore = %d, expected 400", w.HighScore)
	}
}

func TestResetKeepsHighScore(t *testing.T) {
	g := newTestGame(1)
	g.World().HighScore = 900
	g.Reset(core.DefaultConfig())
	if g.World().HighScore != 900 {
		t.Errorf("HighScore = %d after Reset, expected 900", g.World().HighScore)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (engine.Snapshot, uint64) {
		g := newTestGame(12345)
		for range 3000 {
			g.Step(Autopilot(g.World().View()))
			if g.State().GameOver {
				g.Step(core.FrameOf(core.ActionRestart))
			}
		}
		return g.Snapshot(), g.World().Hash()
	}

	snap1, hash1 := run()
	snap2, hash2 := run()
	if snap1 != snap2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if hash1 != hash2 {
		t.Errorf("hashes differ: %x vs %x", hash1, hash2)
	}
}

func TestRenderArena(t *testing.T) {
	g := newTestGame(1)
	for range 30 {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if got := screen.Get(0, hudRows); got != '┌' {
		t.Errorf("arena corner = %q, expected '┌'", got)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "Kills") {
		t.Errorf("progress row = %q", screen.Row(1))
	}

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			c := screen.GetCell(x, y)
			if c.Rune == PlayerGlyph && c.Color == core.ColorBrightGreen {
				found = true
			}
		}
	}
	if !found {
		t.Error("player tank not drawn")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  string
	}{
		{"victory", func(g *Game) { g.World().Phase = engine.PhaseVictory }, "LEVEL 1 CLEARED"},
		{"game over", func(g *Game) { g.World().Phase = engine.PhaseGameOver }, "GAME OVER"},
		{"won", func(g *Game) {
			g.World().Phase = engine.PhaseGameOver
			g.World().Won = true
		}, "YOU WIN"},
		{"paused", func(g *Game) { g.Step(core.FrameOf(core.ActionPause)) }, "PAUSED"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(1)
			tc.setup(g)
			screen := core.NewScreen(80, 24)
			g.Render(screen)
			if !strings.Contains(screen.String(), tc.want) {
				t.Errorf("screen does not contain %q:\n%s", tc.want, screen.String())
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screens should show a size hint")
	}
}

func TestResult(t *testing.T) {
	g := newTestGame(1)
	w := g.World()
	w.Player.Score = 1200
	w.TotalKills = 12
	w.Level = 2

	r := g.Result()
	if r.Score != 1200 || r.Kills != 12 || r.Level != "2" || r.BossDefeated {
		t.Errorf("Result() = %+v", r)
	}
	if r.Difficulty != config.DifficultyNormal {
		t.Errorf("Result().Difficulty = %q", r.Difficulty)
	}
}

func TestNewWithPresetLeavesBaseUntouched(t *testing.T) {
	base := config.DefaultTanksConfig()
	g := NewWithPreset(base, config.DifficultyHard, nil)
	g.Reset(core.DefaultConfig())

	if g.Difficulty() != config.DifficultyHard {
		t.Errorf("Difficulty() = %q, expected hard", g.Difficulty())
	}
	if g.World().Player.Lives != 2 {
		t.Errorf("hard lives = %d, expected 2", g.World().Player.Lives)
	}
	if base.Player.Lives != 3 {
		t.Errorf("base config lives changed to %d", base.Player.Lives)
	}
}

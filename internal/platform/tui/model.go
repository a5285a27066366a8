package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tank-battle/internal/core"
	"github.com/vovakirdan/tank-battle/internal/games/tanks"
	"github.com/vovakirdan/tank-battle/internal/storage"
)

// Game is the contract between the platform and a game.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and rendering.
type Game interface {
	ID() string
	Title() string
	// Reset starts a fresh run.
	Reset(cfg core.RuntimeConfig)
	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult
	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)
	State() core.GameState
	// Result summarizes the current run for the leaderboard.
	Result() tanks.Result
}

var _ Game = (*tanks.Game)(nil)

// ModelOptions configures a game Model.
type ModelOptions struct {
	Store    *storage.Store // Nil disables the leaderboard
	Player   string         // Name recorded with saved runs
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // Nil uses stdout
	// Embedded makes Q hand control back to the parent model without a
	// command. Ctrl+C and declining the next level still exit.
	Embedded bool
	// MenuOnQuit makes Q stop this program and report BackToMenu so the
	// caller can show its menu again. Ctrl+C and declining the next level
	// still report IsQuitting.
	MenuOnQuit bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	output     *ScreenRenderer
	opts       ModelOptions
	config     core.RuntimeConfig
	keys       *KeyMapper
	held       *HeldKeys
	tick       uint64
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
	lastRunID  string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		output: NewScreenRenderer(opts.Renderer),
		opts:   opts,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   NewHeldKeys(uint64(cfg.TickRate / 6)),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The arena is resolution independent, so only the buffer changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.exit()
	}
	// Q answers the level-cleared prompt; anywhere else it exits.
	if action == core.ActionQuit && !m.gameState.AwaitingChoice {
		return m.quit()
	}

	m.held.Press(action, m.tick)
	return m, nil
}

// quit ends the run on Q. Embedded and MenuOnQuit models go back to the
// menu; a standalone model exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.saveRun()
	switch {
	case m.opts.Embedded:
		m.backToMenu = true
		return m, nil
	case m.opts.MenuOnQuit:
		m.backToMenu = true
		return m, tea.Quit
	}
	m.quitting = true
	return m, tea.Quit
}

// exit ends the run and asks the whole program to stop.
func (m Model) exit() (tea.Model, tea.Cmd) {
	m.saveRun()
	m.quitting = true
	return m, tea.Quit
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.held.Frame(m.tick)
	m.tick++

	wasOver := m.gameState.GameOver
	result := m.game.Step(frame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		// Restarted: the next run gets its own record.
		m.runSaved = false
		m.held.Release()
	}
	if m.gameState.GameOver {
		m.saveRun()
	}
	if m.gameState.Quit {
		return m.exit()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run once. Runs that never scored are skipped.
func (m *Model) saveRun() {
	if m.runSaved || m.opts.Store == nil {
		return
	}
	res := m.game.Result()
	if res.Score <= 0 {
		return
	}
	m.runSaved = true

	id, err := m.opts.Store.SaveRun(storage.Run{
		Player:       m.opts.Player,
		Score:        res.Score,
		Level:        res.Level,
		Kills:        res.Kills,
		BossDefeated: res.BossDefeated,
		Ticks:        int64(res.Ticks),
		Difficulty:   string(res.Difficulty),
	})
	if err != nil {
		// Best-effort save, the game continues regardless
		m.opts.Logger.Warn("could not save run", "error", err)
		return
	}
	m.lastRunID = id
	m.opts.Logger.Info("run saved", "id", id, "player", m.opts.Player, "score", res.Score, "level", res.Level)
}

// LastRunID returns the ID of the most recently saved run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// BackToMenu returns true once Q has ended the run of an embedded or
// MenuOnQuit model.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true once the model has asked the program to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tankbattle", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.output.Render(m.screen)
}

// Run starts the Bubble Tea program with the given game and returns the
// final model so the caller can tell a return to the menu from an exit.
func Run(game Game, cfg core.RuntimeConfig, opts ModelOptions) (Model, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, fmt.Errorf("unexpected model type %T", final)
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/road-rush/road-rush/internal/core"
	"github.com/road-rush/road-rush/internal/registry"
	"github.com/road-rush/road-rush/internal/storage"
)

// bestSeeder is implemented by games that track a persistent best distance.
type bestSeeder interface {
	SetBest(best int)
}

// GameModel is the Bubble Tea model that runs a single game session.
// It owns the tick loop, translates key presses into input frames, and
// measures real elapsed time between ticks for the simulation.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState

	lastTick time.Time // Timestamp of the previous tick, zero on the first
	runStart time.Time

	runSaved   bool // Whether the finished run has been persisted
	wantScores bool // Set when the user asks for the scoreboard
	quitting   bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		runStart:   time.Now(),
	}

	// Seed the in-game best from persisted runs so the HUD shows the
	// all-time record from the first frame.
	if store != nil {
		if seeder, ok := game.(bestSeeder); ok {
			if best, err := store.BestDistance(game.ID()); err == nil {
				seeder.SetBest(best)
			}
		}
	}

	return m
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		m.wantScores = true
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// fixed world units, so a resize only adjusts the display buffer and
// never disturbs the session in progress.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the measured frame time.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Real elapsed time since the previous tick. The game sanitizes
	// degenerate values itself, so the first tick can pass zero.
	var deltaMS float64
	if !m.lastTick.IsZero() {
		deltaMS = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame, deltaMS)
	m.gameState = result.State

	// A restart mid-flight or after a crash begins a fresh run.
	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
		m.runStart = now
	}
	if m.inputFrame.Has(core.ActionRestart) && !m.gameState.GameOver {
		m.runSaved = false
		m.runStart = now
	}

	// Persist the finished run once per crash.
	if m.gameState.GameOver && !m.runSaved {
		if m.store != nil && m.gameState.Distance > 0 {
			duration := int(now.Sub(m.runStart).Seconds())
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.RecordRun(m.game.ID(), m.gameState.Distance, duration)
		}
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".roadrush", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// WantsScores reports and clears the scoreboard request.
func (m *GameModel) WantsScores() bool {
	want := m.wantScores
	m.wantScores = false
	return want
}

// Run starts the Bubble Tea program for a single game session.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewSessionModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

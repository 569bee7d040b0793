package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/road-rush/road-rush/internal/core"
	"github.com/road-rush/road-rush/internal/registry"
	"github.com/road-rush/road-rush/internal/storage"
)

// SessionModel manages the full session flow: driving with the scoreboard
// one Tab away. It is the top-level model for both local play and SSH
// sessions.
type SessionModel struct {
	store     *storage.Store
	config    core.RuntimeConfig
	gameModel GameModel
	scores    ScoreboardModel
	inScores  bool
	quitting  bool
}

// NewSessionModel creates a session running the given game.
func NewSessionModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:     store,
		config:    cfg,
		gameModel: NewGameModel(game, store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.gameModel.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so the scoreboard opens at the right size.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inScores {
		return m.updateScores(msg)
	}
	return m.updateGame(msg)
}

// updateGame routes messages to the game and watches for mode switches.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.gameModel = gm
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Tab opens the run history. The tick chain stops here, so the
	// simulation holds still until the player returns.
	if m.gameModel.WantsScores() {
		game := m.gameModel.game
		m.scores = NewScoreboardModel(m.store, game.ID(), game.Title(), m.config.ScreenW, m.config.ScreenH)
		m.inScores = true
		return m, nil
	}

	return m, cmd
}

// updateScores routes messages to the scoreboard and swaps back on demand.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Back resumes the game. The scoreboard's quit command is dropped;
	// restarting the tick chain revives the frozen simulation.
	if m.scores.IsGoingBack() {
		m.inScores = false
		m.gameModel.lastTick = time.Time{}
		return m, tickCmd(m.config.TickRate)
	}

	return m, cmd
}

// View renders the current mode.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inScores {
		return m.scores.View()
	}
	return m.gameModel.View()
}

package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dice-baseball/internal/config"
	"github.com/vovakirdan/dice-baseball/internal/dice"
	"github.com/vovakirdan/dice-baseball/internal/engine"
	"github.com/vovakirdan/dice-baseball/internal/roster"
	"github.com/vovakirdan/dice-baseball/internal/scorebug"
	"github.com/vovakirdan/dice-baseball/internal/storage"
)

// Watcher layout constants
const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeLines   = 4 // status, help and spacing around the play-by-play
	minLogLines   = 3
)

// Settings carries what a session needs to start games. Store may be nil,
// in which case finished games are not saved.
type Settings struct {
	League *roster.League
	Config config.GameConfig
	Store  *storage.Store
	Logger *log.Logger
}

// NewGame sets up home against away in home's ballpark with the
// configured rules.
func (st Settings) NewGame(home, away *roster.Team) (*engine.Modern, error) {
	return engine.NewModern(home, away, st.League.HomePark(home),
		engine.WithOddities(st.Config.Rules.Oddities),
		engine.WithWalkOff(st.Config.Rules.WalkOff),
		engine.WithExtraInningsFrom(st.Config.Rules.ExtraInningsFrom),
		engine.WithLogger(st.Logger),
	)
}

// Seed returns the configured seed, or a time-based one when unset.
func (st Settings) Seed() int64 {
	if st.Config.Sim.Seed != 0 {
		return st.Config.Sim.Seed
	}
	return dice.TimeSeed()
}

// WatchModel is the Bubble Tea model for watching and managing one game.
type WatchModel struct {
	id    int64
	game  *engine.Modern
	state *engine.State
	dice  dice.Source
	seed  int64
	mgr   engine.Manager

	store  *storage.Store
	logger *log.Logger

	keys     WatchKeyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int

	pace     time.Duration
	auto     bool
	ticking  bool
	status   string
	saved    bool
	embedded bool // Inside a session: back returns to the picker
	quitting bool
	back     bool
}

// NewWatchModel creates a watcher for game, rolling dice from seed.
func NewWatchModel(game *engine.Modern, seed int64, st Settings) WatchModel {
	logger := st.Logger
	if logger == nil {
		logger = game.Logger()
	}
	h := help.New()
	h.ShowAll = false

	m := WatchModel{
		id:       nextWatchID(),
		game:     game,
		state:    game.NewState(),
		dice:     dice.NewRoller(seed),
		seed:     seed,
		mgr:      engine.Manager{Aggression: st.Config.Manager.Aggression},
		store:    st.Store,
		logger:   logger,
		keys:     DefaultWatchKeyMap(),
		help:     h,
		viewport: viewport.New(defaultWidth, defaultHeight-scorebug.Height-chromeLines),
		width:    defaultWidth,
		height:   defaultHeight,
		pace:     st.Config.Sim.Pace(),
	}
	m.auto = m.pace > 0
	m.ticking = m.auto
	m.status = fmt.Sprintf("%s at %s, seed %d.", game.Away.FullName(), game.Home.FullName(), seed)
	return m
}

// Init starts the auto-play ticker when a pace is set.
func (m WatchModel) Init() tea.Cmd {
	if m.auto {
		return tickCmd(m.id, m.pace)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.back = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.Auto):
		if m.pace <= 0 {
			m.status = "Auto play needs sim.pace_ms above zero."
			return m, nil
		}
		m.auto = !m.auto
		if m.auto && !m.ticking && m.state.Status != engine.StatusOver {
			m.ticking = true
			return m, tickCmd(m.id, m.pace)
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if !m.play(m.mgr.Choose(m.game, m.state)) {
			m.play(engine.PlaySwing)
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if p, ok := m.keys.PlayFor(msg); ok {
		m.play(p)
	}
	return m, nil
}

// handleTick advances an auto-playing game.
func (m WatchModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.auto || m.state.Status == engine.StatusOver {
		m.ticking = false
		return m, nil
	}
	play := m.mgr.Choose(m.game, m.state)
	if !m.play(play) {
		m.play(engine.PlaySwing)
	}
	m.ticking = true
	return m, tickCmd(m.id, m.pace)
}

// play runs one step and reports whether the play was allowed.
func (m *WatchModel) play(p engine.Play) bool {
	if m.state.Status == engine.StatusOver {
		m.status = "The game is over. Press esc to go back or q to quit."
		return true
	}

	err := m.game.Step(m.state, m.dice, p)
	switch {
	case errors.Is(err, engine.ErrIllegalPlay):
		m.status = fmt.Sprintf("Cannot %s with %s.", p, m.state.Bases.Occupancy())
		return false
	case err != nil:
		m.status = err.Error()
		m.logger.Error("step failed", "play", p, "error", err)
		return false
	}

	m.status = ""
	m.viewport.SetContent(m.state.Narration())
	m.viewport.GotoBottom()

	if m.state.Status == engine.StatusOver {
		m.auto = false
		m.saveResult()
	}
	return true
}

// saveResult stores the finished game once.
func (m *WatchModel) saveResult() {
	if m.saved {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}
	id, err := m.store.SaveResult(storage.NewResult(m.game, m.state, m.seed))
	if err != nil {
		m.logger.Warn("could not save game", "error", err)
		m.status = "Game not saved."
		return
	}
	m.status = fmt.Sprintf("Saved game %s.", id.String()[:8])
}

// resize fits the play-by-play between the scorebug and the help bar.
func (m *WatchModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	helpLines := 1
	if m.help.ShowAll {
		helpLines = 4
	}
	logLines := height - scorebug.Height - chromeLines - helpLines
	if logLines < minLogLines {
		logLines = minLogLines
	}
	m.viewport.Width = width
	m.viewport.Height = logLines
}

// View renders the current state to a string for display.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	bug := RenderScreen(scorebug.Draw(m.game, m.state))
	box := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)
	ls := box.Render(m.game.Linescore(m.state).String())
	if m.width >= scorebug.Width+lipgloss.Width(ls)+2 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, bug, "  ", ls))
	} else {
		b.WriteString(bug)
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	status := m.status
	if m.auto {
		status = strings.TrimSpace(status + " [auto]")
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// State returns the game in progress.
func (m WatchModel) State() *engine.State {
	return m.state
}

// Saved reports whether the finished game has been handled by the store.
func (m WatchModel) Saved() bool {
	return m.saved
}

// IsQuitting returns true if the user requested to quit entirely.
func (m WatchModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back.
func (m WatchModel) BackToMenu() bool {
	return m.back
}

// Run starts a standalone Bubble Tea program watching game.
func Run(game *engine.Modern, seed int64, st Settings) error {
	model := NewWatchModel(game, seed, st)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

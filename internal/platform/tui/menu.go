package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dice-baseball/internal/roster"
)

// MenuModel is the Bubble Tea model for picking a matchup: first the
// visitors, then the hosts.
type MenuModel struct {
	teams    []*roster.Team
	cursor   int
	away     *roster.Team // Set once the visitors are picked
	home     *roster.Team // Set when the matchup is complete
	keys     MenuKeyMap
	help     help.Model
	rng      *rand.Rand
	width    int
	height   int
	quitting bool
}

// NewMenuModel creates a picker over the league's teams.
func NewMenuModel(league *roster.League, width, height int, seed int64) MenuModel {
	return MenuModel{
		teams:  league.Teams,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		height: height,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Prev):
		m.move(-1)

	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Next):
		m.move(1)

	case key.Matches(msg, m.keys.Back):
		if m.away != nil {
			m.away = nil
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.Random):
		if len(m.teams) < 2 {
			return m, nil
		}
		order := m.rng.Perm(len(m.teams))
		m.away, m.home = m.teams[order[0]], m.teams[order[1]]
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		if len(m.teams) == 0 {
			return m, nil
		}
		picked := m.teams[m.cursor]
		if m.away == nil {
			m.away = picked
			m.cursor = 0
			if m.teams[0] == picked && len(m.teams) > 1 {
				m.cursor = 1
			}
			return m, nil
		}
		if picked == m.away {
			return m, nil
		}
		m.home = picked
		return m, tea.Quit
	}

	return m, nil
}

// move steps the cursor, skipping the team already picked as visitors.
func (m *MenuModel) move(delta int) {
	n := len(m.teams)
	if n == 0 {
		return
	}
	for range n {
		m.cursor = (m.cursor + delta + n) % n
		if m.teams[m.cursor] != m.away {
			return
		}
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("D I C E   B A S E B A L L"), m.width))
	b.WriteString("\n\n")

	subtitle := "Pick the visitors"
	if m.away != nil {
		subtitle = fmt.Sprintf("Pick the hosts for the %s", m.away.Name)
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	for i, t := range m.teams {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-24s %s", cursor, t.FullName(), t.Ballpark)
		if t == m.away {
			line = dim.Render(line + "  (visitors)")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dim.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Matchup returns the picked teams. ok is false until both are chosen.
func (m MenuModel) Matchup() (home, away *roster.Team, ok bool) {
	if m.home == nil || m.away == nil {
		return nil, nil, false
	}
	return m.home, m.away, true
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// RunMenu runs the picker and returns the chosen matchup. ok is false when
// the user quit without choosing.
func RunMenu(league *roster.League, width, height int, seed int64) (home, away *roster.Team, ok bool, err error) {
	model := NewMenuModel(league, width, height, seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, nil, false, err
	}

	m, isMenu := finalModel.(MenuModel)
	if !isMenu {
		return nil, nil, false, nil
	}
	home, away, ok = m.Matchup()
	return home, away, ok, nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dice-baseball/internal/roster"
	"github.com/vovakirdan/dice-baseball/internal/storage"
)

// Results layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the standings sidebar
	sidebarWidth       = 24  // Width of the standings sidebar
	maxResults         = 100 // Max games to load
)

// ResultsKeyMap defines the key bindings for the results browser.
type ResultsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextTeam key.Binding
	PrevTeam key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTeam, k.PrevTeam, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTeam, k.PrevTeam},
		{k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTeam: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next team"),
		),
		PrevTeam: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev team"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for browsing stored games.
type ResultsModel struct {
	teams       []*roster.Team
	filter      int // 0 shows every game, i > 0 shows teams[i-1]
	store       *storage.Store
	results     []storage.GameResult
	records     map[string]storage.Record
	table       table.Model
	help        help.Model
	keys        ResultsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewResultsModel creates a results browser for the league's teams.
func NewResultsModel(store *storage.Store, league *roster.League, width, height int) ResultsModel {
	h := help.New()
	h.ShowAll = false

	m := ResultsModel{
		teams:       league.Teams,
		store:       store,
		keys:        DefaultResultsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadRecords()
	m.loadResults()
	return m
}

// createTable creates a new table sized to the window.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Away", Width: 10},
		{Title: "R", Width: 3},
		{Title: "Home", Width: 10},
		{Title: "R", Width: 3},
		{Title: "Inn", Width: 4},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if extra := tableWidth - 54; extra > 0 {
		grow := min(extra/2, 10)
		columns[1].Width += grow
		columns[3].Width += grow
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRecords fetches every team's win/loss record.
func (m *ResultsModel) loadRecords() {
	m.records = make(map[string]storage.Record, len(m.teams))
	if m.store == nil {
		return
	}
	for _, t := range m.teams {
		if rec, err := m.store.TeamRecord(t.ID); err == nil {
			m.records[t.ID] = rec
		}
	}
}

// loadResults loads games for the current filter.
func (m *ResultsModel) loadResults() {
	m.results = nil
	if m.store != nil {
		var err error
		if m.filter == 0 {
			m.results, err = m.store.RecentResults(maxResults)
		} else {
			m.results, err = m.store.TeamResults(m.teams[m.filter-1].ID)
		}
		if err != nil {
			m.results = nil
		}
	}
	m.updateTableRows()
}

// updateTableRows refills the table from the loaded games.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.AwayName,
			fmt.Sprintf("%d", r.AwayRuns),
			r.HomeName,
			fmt.Sprintf("%d", r.HomeRuns),
			fmt.Sprintf("%d", r.Innings),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results browser.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTeam):
			m.filter = (m.filter + 1) % (len(m.teams) + 1)
			m.loadResults()
			return m, nil

		case key.Matches(msg, m.keys.PrevTeam):
			m.filter = (m.filter + len(m.teams)) % (len(m.teams) + 1)
			m.loadResults()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Title names what the table currently shows.
func (m ResultsModel) Title() string {
	if m.filter == 0 {
		return "RESULTS - all games"
	}
	t := m.teams[m.filter-1]
	rec := m.records[t.ID]
	return fmt.Sprintf("RESULTS - %s (%d-%d)", t.FullName(), rec.Wins, rec.Losses)
}

// View renders the results browser.
func (m ResultsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(m.Title(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderStandings(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStandings renders the win/loss sidebar.
func (m ResultsModel) renderStandings() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Standings\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, t := range m.teams {
		style := lipgloss.NewStyle()
		cursor := "  "
		if i+1 == m.filter {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		rec := m.records[t.ID]
		name := t.Name
		if maxLen := sidebarWidth - 12; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(fmt.Sprintf("%s%-*s %2d-%-2d", cursor, sidebarWidth-12, name, rec.Wins, rec.Losses)))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or an empty message.
func (m ResultsModel) renderTableContent() string {
	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nPlay one with `baseball sim`!")
	}

	return m.table.View()
}

// Results returns the games currently listed.
func (m ResultsModel) Results() []storage.GameResult {
	return m.results
}

// IsGoingBack returns true if user wants to go back.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}

// RunResults runs the results browser.
func RunResults(store *storage.Store, league *roster.League, width, height int) error {
	model := NewResultsModel(store, league, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

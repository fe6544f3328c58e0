package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dice-baseball/internal/engine"
)

// WatchKeyMap defines the key bindings for the game watcher.
type WatchKeyMap struct {
	Next        key.Binding
	Swing       key.Binding
	StealSecond key.Binding
	StealThird  key.Binding
	StealHome   key.Binding
	DoubleSteal key.Binding
	Bunt        key.Binding
	HitAndRun   key.Binding
	Auto        key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Help        key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WatchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Auto, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k WatchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Swing, k.Auto},
		{k.StealSecond, k.StealThird, k.StealHome, k.DoubleSteal},
		{k.Bunt, k.HitAndRun},
		{k.ScrollUp, k.ScrollDown, k.Help, k.Back, k.Quit},
	}
}

// DefaultWatchKeyMap returns default key bindings.
func DefaultWatchKeyMap() WatchKeyMap {
	return WatchKeyMap{
		Next: key.NewBinding(
			key.WithKeys(" ", "enter", "n"),
			key.WithHelp("space", "manager's call"),
		),
		Swing: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "swing away"),
		),
		StealSecond: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "steal 2nd"),
		),
		StealThird: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "steal 3rd"),
		),
		StealHome: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "steal home"),
		),
		DoubleSteal: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "double steal"),
		),
		Bunt: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bunt"),
		),
		HitAndRun: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "hit and run"),
		),
		Auto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto play"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("up/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("down/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PlayFor translates a key to the play it calls. The second result is
// false for keys that are not plays.
func (k WatchKeyMap) PlayFor(msg tea.KeyMsg) (engine.Play, bool) {
	switch {
	case key.Matches(msg, k.Swing):
		return engine.PlaySwing, true
	case key.Matches(msg, k.StealSecond):
		return engine.PlayStealSecond, true
	case key.Matches(msg, k.StealThird):
		return engine.PlayStealThird, true
	case key.Matches(msg, k.StealHome):
		return engine.PlayStealHome, true
	case key.Matches(msg, k.DoubleSteal):
		return engine.PlayDoubleSteal, true
	case key.Matches(msg, k.Bunt):
		return engine.PlayBunt, true
	case key.Matches(msg, k.HitAndRun):
		return engine.PlayHitAndRun, true
	}
	return engine.PlaySwing, false
}

// MenuKeyMap defines the key bindings for list screens.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Random key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Random, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Select, k.Random, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random matchup"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next team"),
		),
		Prev: key.NewBinding(
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

// Package tui provides the Bubble Tea front end: a matchup picker, the game
// watcher, the results browser and an SSH server that serves them.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance an auto-playing game by one play. ID names
// the watcher that asked for it.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastWatchID atomic.Int64

func nextWatchID() int64 {
	return lastWatchID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick after pace.
func tickCmd(id int64, pace time.Duration) tea.Cmd {
	return tea.Tick(pace, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

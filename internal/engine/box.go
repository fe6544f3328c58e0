package engine

import (
	"fmt"
	"strings"
)

// Line is one side of a linescore.
type Line struct {
	Team    string
	Innings []int
	Runs    int
	Hits    int
	Errors  int
}

// Linescore is the inning-by-inning summary of a game.
type Linescore struct {
	Innings int
	Away    Line
	Home    Line
}

func lineFor(name string, t *TeamState) Line {
	return Line{
		Team:    name,
		Innings: append([]int(nil), t.Runs...),
		Runs:    t.TotalRuns(),
		Hits:    t.TotalHits(),
		Errors:  t.TotalErrors(),
	}
}

// Linescore summarizes s.
func (m *Modern) Linescore(s *State) Linescore {
	ls := Linescore{
		Away: lineFor(m.Away.Name, &s.Away),
		Home: lineFor(m.Home.Name, &s.Home),
	}
	ls.Innings = max(len(ls.Away.Innings), len(ls.Home.Innings))
	return ls
}

// Winner returns the leading team name, or "" for a tie.
func (l Linescore) Winner() string {
	switch {
	case l.Away.Runs > l.Home.Runs:
		return l.Away.Team
	case l.Home.Runs > l.Away.Runs:
		return l.Home.Team
	}
	return ""
}

// String renders the linescore as a fixed-width table.
func (l Linescore) String() string {
	width := 3
	for _, line := range []Line{l.Away, l.Home} {
		width = max(width, len(line.Team))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s", width, "")
	for i := 1; i <= max(l.Innings, 9); i++ {
		fmt.Fprintf(&b, " %2d", i)
	}
	b.WriteString("   R  H  E\n")

	for _, line := range []Line{l.Away, l.Home} {
		fmt.Fprintf(&b, "%-*s", width, line.Team)
		for i := 0; i < max(l.Innings, 9); i++ {
			if i < len(line.Innings) {
				fmt.Fprintf(&b, " %2d", line.Innings[i])
			} else {
				b.WriteString("  -")
			}
		}
		fmt.Fprintf(&b, "  %2d %2d %2d\n", line.Runs, line.Hits, line.Errors)
	}
	return b.String()
}

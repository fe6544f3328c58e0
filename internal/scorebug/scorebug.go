// Package scorebug draws the compact game summary shown above the
// play-by-play: both scores, the inning, outs, the diamond and the
// current matchup. It has no terminal dependencies; callers style the
// returned screen themselves.
package scorebug

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/dice-baseball/internal/bases"
	"github.com/vovakirdan/dice-baseball/internal/engine"
)

// Scorebug dimensions.
const (
	Width  = 44
	Height = 7
)

// Glyphs.
const (
	runnerOn   = '◆'
	runnerOff  = '◇'
	homePlate  = '⌂'
	outMarked  = '●'
	outEmpty   = '○'
	batsMarker = '▸'
)

// diamond positions of each base, relative to the screen.
var diamond = map[bases.Base][2]int{
	bases.Second: {37, 1},
	bases.Third:  {34, 2},
	bases.First:  {40, 2},
}

// Draw renders the state of m into a new screen.
func Draw(m *engine.Modern, s *engine.State) *Screen {
	scr := NewScreen(Width, Height)
	away, home := s.Score()

	drawTeam(scr, 1, abbrev(m.Away.Name), away, s.Status == engine.StatusOngoing && s.Half == engine.Top)
	drawTeam(scr, 2, abbrev(m.Home.Name), home, s.Status == engine.StatusOngoing && s.Half == engine.Bottom)

	ls := m.Linescore(s)
	scr.DrawTextColor(16, 1, inningLabel(s, ls.Innings), ColorBrightWhite)
	scr.DrawText(16, 2, "OUTS")
	for i := 0; i < engine.MaxOuts-1; i++ {
		if i < s.Outs {
			scr.SetColor(21+2*i, 2, outMarked, ColorRed)
		} else {
			scr.SetColor(21+2*i, 2, outEmpty, ColorGray)
		}
	}

	for base, at := range diamond {
		if s.Bases.Occupied(base) {
			scr.SetColor(at[0], at[1], runnerOn, ColorYellow)
		} else {
			scr.SetColor(at[0], at[1], runnerOff, ColorGray)
		}
	}
	scr.SetColor(37, 3, homePlate, ColorGray)

	if s.Status == engine.StatusOngoing {
		if b := m.Batter(s); b != nil {
			scr.DrawText(2, 4, "AB")
			scr.DrawTextColor(6, 4, fmt.Sprintf("%s (%s)", b.ShortName(), b.Position), ColorCyan)
		}
		if p := s.Fielding().Pitcher; p != nil {
			scr.DrawText(2, 5, "P")
			scr.DrawTextColor(6, 5, p.ShortName(), ColorCyan)
		}
	} else if s.Status == engine.StatusOver {
		if w := ls.Winner(); w != "" {
			scr.DrawTextColor(2, 4, w+" win", ColorGreen)
		}
	}

	scr.DrawBox(Rect{X: 0, Y: 0, W: Width, H: Height}, ColorGray)
	return scr
}

func drawTeam(scr *Screen, y int, name string, runs int, batting bool) {
	c := ColorDefault
	if batting {
		scr.SetColor(2, y, batsMarker, ColorYellow)
		c = ColorYellow
	}
	scr.DrawTextColor(4, y, name, c)
	scr.DrawTextColor(9, y, fmt.Sprintf("%2d", runs), ColorBrightWhite)
}

// inningLabel names the half inning, or the final with the number of
// innings played when it was not nine.
func inningLabel(s *engine.State, innings int) string {
	switch s.Status {
	case engine.StatusNotStarted:
		return "PREGAME"
	case engine.StatusOver:
		if innings != 9 {
			return fmt.Sprintf("FINAL/%d", innings)
		}
		return "FINAL"
	}
	arrow := "▲"
	if s.Half == engine.Bottom {
		arrow = "▼"
	}
	return fmt.Sprintf("%s %d", arrow, s.Inning)
}

// abbrev returns the first three letters of name in upper case.
func abbrev(name string) string {
	r := []rune(strings.ToUpper(name))
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

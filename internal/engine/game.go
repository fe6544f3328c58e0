// Package engine resolves plate appearances and special plays and drives a
// game inning by inning.
//
// A Modern holds the immutable setup of one game. Every entry point takes
// the single *State in flight plus a dice.Source and mutates the state in
// place; dice are drawn in a fixed order per play so a scripted source
// replays a play exactly.
package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dice-baseball/internal/dice"
	"github.com/vovakirdan/dice-baseball/internal/player"
	"github.com/vovakirdan/dice-baseball/internal/roster"
)

// DefaultExtraInningsFrom is the first inning whose start ends a game with
// unequal scores.
const DefaultExtraInningsFrom = 10

// walkOffInning is the first inning in which the home side can win in its
// own half.
const walkOffInning = 9

// Modern is the setup of a modern-era game.
type Modern struct {
	Home     *roster.Team
	Away     *roster.Team
	Ballpark roster.Ballpark

	Oddities         bool
	WalkOff          bool
	ExtraInningsFrom int

	homeLineup []*player.Player
	awayLineup []*player.Player
	logger     *log.Logger
}

// Option customizes a Modern.
type Option func(*Modern)

// WithOddities turns the oddity table on or off.
func WithOddities(on bool) Option {
	return func(m *Modern) { m.Oddities = on }
}

// WithWalkOff ends games in the bottom half once the home side leads in
// the ninth or later.
func WithWalkOff(on bool) Option {
	return func(m *Modern) { m.WalkOff = on }
}

// WithExtraInningsFrom overrides the inning at which unequal scores end
// the game.
func WithExtraInningsFrom(inning int) Option {
	return func(m *Modern) {
		if inning > 1 {
			m.ExtraInningsFrom = inning
		}
	}
}

// WithLogger sets the logger used for dice and invariant reports.
func WithLogger(l *log.Logger) Option {
	return func(m *Modern) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModern validates both teams and builds a game setup. Oddities are on
// by default.
func NewModern(home, away *roster.Team, park roster.Ballpark, opts ...Option) (*Modern, error) {
	for _, t := range []*roster.Team{home, away} {
		if t == nil {
			return nil, fmt.Errorf("%w: missing team", ErrInvalidGame)
		}
		if t.Era != roster.EraModern && t.Era != "" {
			return nil, &EraError{Team: t.FullName(), Era: t.Era}
		}
		if n := t.PositionPlayers(); n < roster.MinPositionPlayers {
			return nil, &RosterError{Team: t.FullName(), Count: n}
		}
		if t.Starter() == nil {
			return nil, fmt.Errorf("%w: %s has no pitchers", ErrInvalidGame, t.FullName())
		}
	}

	m := &Modern{
		Home:             home,
		Away:             away,
		Ballpark:         park,
		Oddities:         true,
		ExtraInningsFrom: DefaultExtraInningsFrom,
		homeLineup:       home.Lineup(),
		awayLineup:       away.Lineup(),
		logger:           log.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Logger returns the game's logger.
func (m *Modern) Logger() *log.Logger {
	return m.logger
}

// NewState creates the single state for this game from both starters.
func (m *Modern) NewState() *State {
	return &State{
		Status: StatusNotStarted,
		Inning: 1,
		Half:   Top,
		Away:   newTeamState(m.Away.Starter()),
		Home:   newTeamState(m.Home.Starter()),
	}
}

// BattingTeam returns the roster at the plate.
func (m *Modern) BattingTeam(s *State) *roster.Team {
	if s.Half == Bottom {
		return m.Home
	}
	return m.Away
}

// Lineup returns the batting order of the side at the plate.
func (m *Modern) Lineup(s *State) []*player.Player {
	if s.Half == Bottom {
		return m.homeLineup
	}
	return m.awayLineup
}

// Batter returns the player due up.
func (m *Modern) Batter(s *State) *player.Player {
	lineup := m.Lineup(s)
	if len(lineup) == 0 {
		return nil
	}
	return lineup[s.Batting().BatterIndex%len(lineup)]
}

// Fielder returns the defender at pos, or nil when nobody plays there.
func (m *Modern) Fielder(s *State, pos player.Position) *player.Player {
	if pos == player.PositionPitcher {
		return s.Fielding().Pitcher
	}
	if s.Half == Bottom {
		return roster.FielderIn(m.awayLineup, pos)
	}
	return roster.FielderIn(m.homeLineup, pos)
}

// roll draws one die and reports it at debug level.
func (m *Modern) roll(d dice.Source, sides int, what string) int {
	v := d.Roll(sides)
	m.logger.Debug("roll", "die", sides, "value", v, "for", what)
	return v
}

// invariant logs a state the rules cannot reach under valid dice.
func (m *Modern) invariant(msg string, keyvals ...any) {
	m.logger.Error(msg, keyvals...)
}

// Package roster holds teams and ballparks and loads them from the
// line-oriented KEY: value text format.
package roster

import (
	"strings"

	"github.com/vovakirdan/dice-baseball/internal/player"
)

// Era selects a rules variant.
type Era string

const (
	EraModern  Era = "modern"
	EraAncient Era = "ancient"
)

// LineupSize is the number of batters in a batting order.
const LineupSize = 9

// MinPositionPlayers is the smallest roster a game can be played with; the
// starting pitcher bats ninth when only eight are available.
const MinPositionPlayers = 8

// Ballpark is where a game is played.
type Ballpark struct {
	Name     string
	Location string
	Traits   []string
}

// Team is a roster plus a pitching staff.
type Team struct {
	ID       string
	Name     string
	City     string
	Era      Era
	Ballpark string

	// Players lists position players in the order they appear on file.
	Players []*player.Player
	// Pitchers lists the staff; the first entry starts.
	Pitchers []*player.Player
}

// FullName returns "City Name" when a city is set.
func (t *Team) FullName() string {
	if t.City == "" {
		return t.Name
	}
	return t.City + " " + t.Name
}

// PositionPlayers returns the number of non-pitchers on the roster.
func (t *Team) PositionPlayers() int {
	return len(t.Players)
}

// Starter returns the starting pitcher, or nil for a team without a staff.
func (t *Team) Starter() *player.Player {
	if len(t.Pitchers) == 0 {
		return nil
	}
	return t.Pitchers[0]
}

// Lineup returns the batting order: the first nine position players, with
// the starter batting ninth when only eight are available.
func (t *Team) Lineup() []*player.Player {
	lineup := make([]*player.Player, 0, LineupSize)
	for _, p := range t.Players {
		if len(lineup) == LineupSize {
			break
		}
		lineup = append(lineup, p)
	}
	if len(lineup) < LineupSize {
		if sp := t.Starter(); sp != nil {
			lineup = append(lineup, sp)
		}
	}
	return lineup
}

// Fielder returns the player at pos among the batting order, or nil when
// nobody is stationed there. Pitchers are tracked by the game, not here.
func (t *Team) Fielder(pos player.Position) *player.Player {
	return FielderIn(t.Lineup(), pos)
}

// FielderIn returns the player stationed at pos in lineup, or nil.
func FielderIn(lineup []*player.Player, pos player.Position) *player.Player {
	for _, p := range lineup {
		if p.Position == pos {
			return p
		}
	}
	return nil
}

// Slug turns a display name into an identifier.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

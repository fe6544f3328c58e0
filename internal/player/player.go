// Package player models the participants of a game: their targets, pitch
// die, handedness, fielding position and traits.
//
// Players are read-only while a plate appearance is resolved. Trait effects
// are never cached; every accessor rescans the trait list.
package player

import (
	"fmt"
	"strings"
)

// Position is a fielding position using scorebook numbering (1=P .. 9=RF).
type Position int

const (
	PositionNone Position = iota
	PositionPitcher
	PositionCatcher
	PositionFirstBase
	PositionSecondBase
	PositionThirdBase
	PositionShortstop
	PositionLeftField
	PositionCenterField
	PositionRightField
	PositionDesignatedHitter
)

var positionCodes = map[Position]string{
	PositionNone:             "-",
	PositionPitcher:          "P",
	PositionCatcher:          "C",
	PositionFirstBase:        "1B",
	PositionSecondBase:       "2B",
	PositionThirdBase:        "3B",
	PositionShortstop:        "SS",
	PositionLeftField:        "LF",
	PositionCenterField:      "CF",
	PositionRightField:       "RF",
	PositionDesignatedHitter: "DH",
}

// String returns the scorebook abbreviation.
func (p Position) String() string {
	if code, ok := positionCodes[p]; ok {
		return code
	}
	return "?"
}

// Infield reports whether the position is one of C, 1B, 2B, 3B, SS or P.
func (p Position) Infield() bool {
	return p >= PositionPitcher && p <= PositionShortstop
}

// ParsePosition parses a scorebook abbreviation or number.
func ParsePosition(s string) (Position, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for pos, code := range positionCodes {
		if pos != PositionNone && code == s {
			return pos, nil
		}
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil && n >= 1 && n <= 10 {
		return Position(n), nil
	}
	return PositionNone, fmt.Errorf("unknown position %q", s)
}

// Hand is a throwing/batting side.
type Hand int

const (
	HandRight Hand = iota
	HandLeft
	HandSwitch
)

// String returns R, L or S.
func (h Hand) String() string {
	switch h {
	case HandLeft:
		return "L"
	case HandSwitch:
		return "S"
	default:
		return "R"
	}
}

// ParseHand parses R, L or S (case-insensitive).
func ParseHand(s string) (Hand, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "R", "RIGHT":
		return HandRight, nil
	case "L", "LEFT":
		return HandLeft, nil
	case "S", "B", "SWITCH":
		return HandSwitch, nil
	}
	return HandRight, fmt.Errorf("unknown hand %q", s)
}

// SameSide reports whether a pitcher and batter share a side. Switch hitters
// never match.
func SameSide(pitcher, batter Hand) bool {
	return batter != HandSwitch && pitcher == batter
}

// Injury records where and how badly a player is hurt.
type Injury struct {
	Locations  []string
	Severities []string
}

// Injured reports whether any injury is on record.
func (i Injury) Injured() bool {
	return len(i.Locations) > 0
}

// String describes the injury, or "none".
func (i Injury) String() string {
	if !i.Injured() {
		return "none"
	}
	parts := make([]string, 0, len(i.Locations))
	for idx, loc := range i.Locations {
		sev := "minor"
		if idx < len(i.Severities) {
			sev = i.Severities[idx]
		}
		parts = append(parts, sev+" "+loc)
	}
	return strings.Join(parts, ", ")
}

// Player is one member of a roster.
type Player struct {
	FirstName string
	LastName  string
	Nickname  string
	Position  Position
	Hand      Hand

	// BatterTarget is the highest combined roll that is a hit.
	BatterTarget int
	// OnBaseTarget is the highest combined roll that is a walk.
	OnBaseTarget int
	// PitchDie is the signed pitch die; negative values are position-player
	// placeholders.
	PitchDie int

	Traits []Trait
	Injury Injury
}

// Name returns "First Last".
func (p *Player) Name() string {
	if p == nil {
		return "nobody"
	}
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return "unknown"
	}
	return name
}

// ShortName returns the nickname if set, otherwise the last name.
func (p *Player) ShortName() string {
	if p == nil {
		return "nobody"
	}
	if p.Nickname != "" {
		return p.Nickname
	}
	if p.LastName != "" {
		return p.LastName
	}
	return p.Name()
}

// IsPitcher reports whether the player is listed as a pitcher.
func (p *Player) IsPitcher() bool {
	return p != nil && p.Position == PositionPitcher
}

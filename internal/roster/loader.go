package roster

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/dice-baseball/internal/player"
)

//go:embed data/*.team data/*.park
var defaultData embed.FS

// ParseError reports a malformed line in a roster file.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("roster: %s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// League is a set of teams and ballparks.
type League struct {
	Teams     []*Team
	Ballparks []Ballpark
}

// Team finds a team by ID, name or full name (case-insensitive).
func (l *League) Team(key string) (*Team, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, t := range l.Teams {
		if t.ID == key || strings.ToLower(t.Name) == key || strings.ToLower(t.FullName()) == key {
			return t, true
		}
	}
	return nil, false
}

// Ballpark finds a ballpark by name (case-insensitive).
func (l *League) Ballpark(name string) (Ballpark, bool) {
	for _, bp := range l.Ballparks {
		if strings.EqualFold(bp.Name, name) {
			return bp, true
		}
	}
	return Ballpark{}, false
}

// HomePark returns the home ballpark of t, or a placeholder named after it.
func (l *League) HomePark(t *Team) Ballpark {
	if bp, ok := l.Ballpark(t.Ballpark); ok {
		return bp
	}
	name := t.Ballpark
	if name == "" {
		name = t.Name + " Park"
	}
	return Ballpark{Name: name, Location: t.City}
}

// Default returns the embedded demo league.
func Default() (*League, error) {
	return loadFS(defaultData, "data")
}

// LoadDir reads every *.team and *.park file under dir. An empty dir loads
// the embedded league.
func LoadDir(dir string) (*League, error) {
	if dir == "" {
		return Default()
	}
	return loadFS(os.DirFS(dir), ".")
}

func loadFS(fsys fs.FS, root string) (*League, error) {
	league := &League{}
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".team" && ext != ".park" {
			return nil
		}

		f, err := fsys.Open(path)
		if err != nil {
			return fmt.Errorf("roster: opening %s: %w", path, err)
		}
		defer f.Close()

		if ext == ".park" {
			bp, err := ParseBallpark(f, path)
			if err != nil {
				return err
			}
			league.Ballparks = append(league.Ballparks, bp)
			return nil
		}
		team, err := ParseTeam(f, path)
		if err != nil {
			return err
		}
		league.Teams = append(league.Teams, team)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(league.Teams, func(i, j int) bool {
		return league.Teams[i].ID < league.Teams[j].ID
	})
	return league, nil
}

// LoadTeamFile parses a single team file.
func LoadTeamFile(path string) (*Team, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: opening %s: %w", path, err)
	}
	defer f.Close()
	return ParseTeam(f, path)
}

type line struct {
	num        int
	key, value string
}

// scanLines yields KEY: value pairs, skipping blanks and # comments.
func scanLines(r io.Reader, source string, fn func(line) error) error {
	sc := bufio.NewScanner(r)
	num := 0
	for sc.Scan() {
		num++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, value, ok := strings.Cut(text, ":")
		if !ok {
			return &ParseError{Source: source, Line: num, Err: fmt.Errorf("expected KEY: value, got %q", text)}
		}
		if err := fn(line{num: num, key: strings.ToUpper(strings.TrimSpace(key)), value: strings.TrimSpace(value)}); err != nil {
			return &ParseError{Source: source, Line: num, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("roster: reading %s: %w", source, err)
	}
	return nil
}

// ParseTeam reads a team file. Header keys (TEAM, CITY, ERA, BALLPARK) come
// first; each PLAYER key starts a new player block.
func ParseTeam(r io.Reader, source string) (*Team, error) {
	team := &Team{Era: EraModern}
	var cur *player.Player

	flush := func() {
		if cur == nil {
			return
		}
		if cur.Position == player.PositionPitcher {
			team.Pitchers = append(team.Pitchers, cur)
		} else {
			team.Players = append(team.Players, cur)
		}
		cur = nil
	}

	err := scanLines(r, source, func(l line) error {
		if l.key == "PLAYER" {
			flush()
			first, last, _ := strings.Cut(l.value, " ")
			cur = &player.Player{FirstName: first, LastName: strings.TrimSpace(last), PitchDie: -4}
			return nil
		}
		if cur == nil {
			return applyTeamKey(team, l)
		}
		return applyPlayerKey(cur, l)
	})
	if err != nil {
		return nil, err
	}
	flush()

	if team.Name == "" {
		return nil, &ParseError{Source: source, Err: fmt.Errorf("missing TEAM")}
	}
	team.ID = Slug(team.Name)
	return team, nil
}

func applyTeamKey(t *Team, l line) error {
	switch l.key {
	case "TEAM":
		t.Name = l.value
	case "CITY":
		t.City = l.value
	case "ERA":
		era := Era(strings.ToLower(l.value))
		if era != EraModern && era != EraAncient {
			return fmt.Errorf("unknown era %q", l.value)
		}
		t.Era = era
	case "BALLPARK":
		t.Ballpark = l.value
	default:
		return fmt.Errorf("unknown team key %q", l.key)
	}
	return nil
}

func applyPlayerKey(p *player.Player, l line) error {
	var err error
	switch l.key {
	case "NICKNAME":
		p.Nickname = l.value
	case "POSITION":
		p.Position, err = player.ParsePosition(l.value)
	case "HANDS":
		p.Hand, err = player.ParseHand(l.value)
	case "BT":
		p.BatterTarget, err = positiveInt(l.value)
	case "OBT":
		p.OnBaseTarget, err = positiveInt(l.value)
	case "PD":
		p.PitchDie, err = strconv.Atoi(l.value)
		if err == nil && p.PitchDie != 0 {
			p.PitchDie = player.AdjustDie(p.PitchDie, 0)
		}
	case "TRAITS":
		p.Traits, err = player.ParseTraits(l.value)
	case "INJURY":
		loc, sev, ok := strings.Cut(l.value, ",")
		if !ok {
			sev = "minor"
		}
		if strings.EqualFold(strings.TrimSpace(loc), "none") {
			return nil
		}
		p.Injury.Locations = append(p.Injury.Locations, strings.TrimSpace(loc))
		p.Injury.Severities = append(p.Injury.Severities, strings.TrimSpace(sev))
	default:
		return fmt.Errorf("unknown player key %q", l.key)
	}
	return err
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("target must be positive, got %d", n)
	}
	return n, nil
}

// ParseBallpark reads a ballpark file with BALLPARK, LOCATION and TRAITS keys.
func ParseBallpark(r io.Reader, source string) (Ballpark, error) {
	var bp Ballpark
	err := scanLines(r, source, func(l line) error {
		switch l.key {
		case "BALLPARK":
			bp.Name = l.value
		case "LOCATION":
			bp.Location = l.value
		case "TRAITS":
			for _, t := range strings.Split(l.value, ",") {
				if t = strings.TrimSpace(t); t != "" {
					bp.Traits = append(bp.Traits, t)
				}
			}
		default:
			return fmt.Errorf("unknown ballpark key %q", l.key)
		}
		return nil
	})
	if err != nil {
		return Ballpark{}, err
	}
	if bp.Name == "" {
		return Ballpark{}, &ParseError{Source: source, Err: fmt.Errorf("missing BALLPARK")}
	}
	return bp, nil
}

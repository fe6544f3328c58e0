package player

import (
	"fmt"
	"strings"
)

// Trait is a named player attribute such as "P+" or "GB+".
type Trait string

// Batter traits.
const (
	TraitPowerPlus2   Trait = "P++"
	TraitPowerPlus    Trait = "P+"
	TraitPowerMinus   Trait = "P-"
	TraitPowerMinus2  Trait = "P--"
	TraitContact      Trait = "C+"
	TraitFreeSwinger  Trait = "C-"
	TraitFast         Trait = "S+"
	TraitSlow         Trait = "S-"
	TraitDefensePlus  Trait = "D+"
	TraitDefenseMinus Trait = "D-"
	TraitTough        Trait = "T+"
)

// Pitcher traits.
const (
	TraitStrikeout    Trait = "K+"
	TraitGroundball   Trait = "GB+"
	TraitControlPlus  Trait = "CN+"
	TraitControlMinus Trait = "CN-"
	TraitStamina      Trait = "ST+"
)

var knownTraits = map[Trait]bool{
	TraitPowerPlus2: true, TraitPowerPlus: true, TraitPowerMinus: true, TraitPowerMinus2: true,
	TraitContact: true, TraitFreeSwinger: true, TraitFast: true, TraitSlow: true,
	TraitDefensePlus: true, TraitDefenseMinus: true, TraitTough: true,
	TraitStrikeout: true, TraitGroundball: true, TraitControlPlus: true,
	TraitControlMinus: true, TraitStamina: true,
}

// ParseTraits parses a comma or space separated trait list.
func ParseTraits(s string) ([]Trait, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	traits := make([]Trait, 0, len(fields))
	for _, f := range fields {
		t := Trait(strings.ToUpper(f))
		if !knownTraits[t] {
			return nil, fmt.Errorf("unknown trait %q", f)
		}
		traits = append(traits, t)
	}
	return traits, nil
}

// Each modifier family maps traits to a value. When a player carries more
// than one trait of a family the last one in list order wins.
var (
	powerFamily      = map[Trait]int{TraitPowerPlus2: 2, TraitPowerPlus: 1, TraitPowerMinus: -1, TraitPowerMinus2: -2}
	contactFamily    = map[Trait]int{TraitContact: 1, TraitFreeSwinger: -1}
	speedFamily      = map[Trait]int{TraitFast: 1, TraitSlow: -1}
	defenseFamily    = map[Trait]int{TraitDefensePlus: 1, TraitDefenseMinus: -1}
	toughFamily      = map[Trait]int{TraitTough: 1}
	controlFamily    = map[Trait]int{TraitControlPlus: 1, TraitControlMinus: -1}
	staminaFamily    = map[Trait]int{TraitStamina: 1}
	strikeFamily     = map[Trait]int{TraitStrikeout: 1}
	groundballFamily = map[Trait]int{TraitGroundball: 1}
)

func (p *Player) scan(family map[Trait]int) int {
	if p == nil {
		return 0
	}
	v := 0
	for _, t := range p.Traits {
		if m, ok := family[t]; ok {
			v = m
		}
	}
	return v
}

// Has reports whether the player carries t.
func (p *Player) Has(t Trait) bool {
	if p == nil {
		return false
	}
	for _, have := range p.Traits {
		if have == t {
			return true
		}
	}
	return false
}

// Power runs from +2 (P++) to -2 (P--). It shifts the classification
// targets and the hit-table roll.
func (p *Player) Power() int { return p.scan(powerFamily) }

// Contact is +1 for contact hitters and -1 for free swingers.
func (p *Player) Contact() int { return p.scan(contactFamily) }

// Speed is +1 for fast runners and -1 for slow ones.
func (p *Player) Speed() int { return p.scan(speedFamily) }

// Defense is the fielding modifier added to defense rolls.
func (p *Player) Defense() int { return p.scan(defenseFamily) }

// Toughness is +1 for tough players.
func (p *Player) Toughness() int { return p.scan(toughFamily) }

// Control is +1 for control pitchers and -1 for wild ones.
func (p *Player) Control() int { return p.scan(controlFamily) }

// Stamina is +1 for workhorse pitchers.
func (p *Player) Stamina() int { return p.scan(staminaFamily) }

// Strikeout is +1 for strikeout pitchers.
func (p *Player) Strikeout() int { return p.scan(strikeFamily) }

// GroundballInducer reports whether the pitcher carries GB+.
func (p *Player) GroundballInducer() bool { return p.scan(groundballFamily) > 0 }

// IsFast reports the S+ speed trait after conflict resolution.
func (p *Player) IsFast() bool { return p.Speed() > 0 }

// IsSlow reports the S- speed trait after conflict resolution.
func (p *Player) IsSlow() bool { return p.Speed() < 0 }

// IsContactHitter reports the C+ trait after conflict resolution.
func (p *Player) IsContactHitter() bool { return p.Contact() > 0 }

// IsFreeSwinger reports the C- trait after conflict resolution.
func (p *Player) IsFreeSwinger() bool { return p.Contact() < 0 }

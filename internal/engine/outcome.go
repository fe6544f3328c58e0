package engine

// Outcome is the category a combined roll falls into.
type Outcome int

const (
	OutcomeOddity Outcome = iota
	OutcomeCriticalHit
	OutcomeHit
	OutcomeWalk
	OutcomePossibleError
	OutcomeProductiveOut1
	OutcomeProductiveOut2
	OutcomeOut
	OutcomeMegaOut
)

var outcomeNames = map[Outcome]string{
	OutcomeOddity:         "oddity",
	OutcomeCriticalHit:    "critical hit",
	OutcomeHit:            "hit",
	OutcomeWalk:           "walk",
	OutcomePossibleError:  "possible error",
	OutcomeProductiveOut1: "productive out",
	OutcomeProductiveOut2: "productive out (2)",
	OutcomeOut:            "out",
	OutcomeMegaOut:        "mega out",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Classify maps a combined roll to an outcome. Bands are checked in
// ascending order, so a band squeezed out by low targets is simply skipped.
func Classify(batTarget, onBaseTarget, roll int, oddities bool) Outcome {
	switch {
	case roll == 1 && oddities:
		return OutcomeOddity
	case roll <= 5:
		return OutcomeCriticalHit
	case roll <= batTarget:
		return OutcomeHit
	case roll <= onBaseTarget:
		return OutcomeWalk
	case roll <= onBaseTarget+5:
		return OutcomePossibleError
	case roll <= 49:
		return OutcomeProductiveOut1
	case roll <= 69:
		return OutcomeProductiveOut2
	case roll <= 98:
		return OutcomeOut
	case roll == 99:
		if oddities {
			return OutcomeOddity
		}
		return OutcomeOut
	default:
		return OutcomeMegaOut
	}
}

// CritHit promotes a hit-table roll for a critical hit toward extra bases.
func CritHit(roll int) int {
	switch roll {
	case 1, 2, 7, 8, 9:
		return 18
	case 3:
		return 17
	case 4:
		return 16
	case 5, 6:
		return 15
	case 15, 16, 17, 18:
		return 19
	default:
		return roll
	}
}

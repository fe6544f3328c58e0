package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dice-baseball/internal/roster"
)

var (
	// ErrInvalidGame matches every game-creation error.
	ErrInvalidGame = errors.New("engine: invalid game")
	// ErrGameOver is returned when stepping a finished game.
	ErrGameOver = errors.New("engine: game is over")
	// ErrIllegalPlay is returned when a play does not fit the base state.
	ErrIllegalPlay = errors.New("engine: illegal play")
)

// RosterError reports a team with too few position players.
type RosterError struct {
	Team  string
	Count int
}

func (e *RosterError) Error() string {
	return fmt.Sprintf("engine: %s has %d position players, need at least %d",
		e.Team, e.Count, roster.MinPositionPlayers)
}

func (e *RosterError) Is(target error) bool {
	return target == ErrInvalidGame
}

// EraError reports a team from an era the game cannot be played in.
type EraError struct {
	Team string
	Era  roster.Era
}

func (e *EraError) Error() string {
	return fmt.Sprintf("engine: %s is an %s era team, only modern games are supported", e.Team, e.Era)
}

func (e *EraError) Is(target error) bool {
	return target == ErrInvalidGame
}

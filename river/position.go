// Package river models the Priests and Devils crossing puzzle: the bank
// counts, the boat, legal crossings and a breadth-first solver.
package river

import (
	"errors"
	"fmt"
)

const (
	boatCapacity   = 2
	defaultPriests = 3
	defaultDevils  = 3
)

var (
	ErrInvalidSide          = errors.New("boat is on the other side")
	ErrBoatFull             = errors.New("boat can only carry 2 characters")
	ErrUnavailableCharacter = errors.New("character not available")
	ErrEmptyBoat            = errors.New("boat is empty")
	ErrNoHistory            = errors.New("no more moves to undo")
	ErrNoSolution           = errors.New("solution not found")
	ErrInvalidTotals        = errors.New("totals must be >= 0")
	ErrInvalidPosition      = errors.New("position does not match totals")
	ErrPassengersAboard     = errors.New("passengers are still aboard")
)

type Kind int

const (
	Priest Kind = iota
	Devil
)

func (k Kind) String() string {
	switch k {
	case Priest:
		return "priest"
	case Devil:
		return "devil"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Totals is the number of characters of each kind in a puzzle.
type Totals struct {
	Priests int
	Devils  int
}

func DefaultTotals() Totals { return Totals{Priests: defaultPriests, Devils: defaultDevils} }

func (t Totals) Validate() error {
	if t.Priests < 0 || t.Devils < 0 {
		return fmt.Errorf("%w: priests=%d devils=%d", ErrInvalidTotals, t.Priests, t.Devils)
	}
	return nil
}

// Position is the decision-relevant state of the puzzle. Passengers sitting
// in the boat before a crossing are not part of it.
type Position struct {
	PriestsLeft  int
	DevilsLeft   int
	PriestsRight int
	DevilsRight  int
	Boat         Side
}

// Start returns the canonical opening: everyone and the boat on the left.
func Start(t Totals) Position {
	return Position{PriestsLeft: t.Priests, DevilsLeft: t.Devils, Boat: Left}
}

func (p Position) Count(k Kind, s Side) int {
	switch {
	case k == Priest && s == Left:
		return p.PriestsLeft
	case k == Priest && s == Right:
		return p.PriestsRight
	case k == Devil && s == Left:
		return p.DevilsLeft
	default:
		return p.DevilsRight
	}
}

func (p *Position) add(k Kind, s Side, n int) {
	switch {
	case k == Priest && s == Left:
		p.PriestsLeft += n
	case k == Priest && s == Right:
		p.PriestsRight += n
	case k == Devil && s == Left:
		p.DevilsLeft += n
	default:
		p.DevilsRight += n
	}
}

func (p Position) IsWon() bool { return p.PriestsLeft == 0 && p.DevilsLeft == 0 }

// Safe reports whether neither bank has its priests outnumbered.
func (p Position) Safe() bool {
	return bankSafe(p.PriestsLeft, p.DevilsLeft) && bankSafe(p.PriestsRight, p.DevilsRight)
}

func bankSafe(priests, devils int) bool {
	return priests == 0 || priests >= devils
}

// ValidFor reports whether every count is non-negative and each kind adds
// up to its total.
func (p Position) ValidFor(t Totals) bool {
	if p.PriestsLeft < 0 || p.DevilsLeft < 0 || p.PriestsRight < 0 || p.DevilsRight < 0 {
		return false
	}
	if p.Boat != Left && p.Boat != Right {
		return false
	}
	return p.PriestsLeft+p.PriestsRight == t.Priests && p.DevilsLeft+p.DevilsRight == t.Devils
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d,%s)", p.PriestsLeft, p.DevilsLeft, p.PriestsRight, p.DevilsRight, p.Boat)
}

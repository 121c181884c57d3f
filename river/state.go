package river

import "fmt"

// State is a live puzzle session. It is not safe for concurrent use; a
// single owner drives it.
type State struct {
	totals  Totals
	pos     Position
	boarded []Kind
	history []Position
}

func NewState(t Totals) (*State, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &State{totals: t, pos: Start(t)}, nil
}

func (s *State) Totals() Totals { return s.totals }

// Board puts one idle character of kind k from the given side into the boat.
func (s *State) Board(k Kind, side Side) error {
	if side != s.pos.Boat {
		return fmt.Errorf("%w: boat is on the %s side", ErrInvalidSide, s.pos.Boat)
	}
	if len(s.boarded) >= boatCapacity {
		return ErrBoatFull
	}
	if s.Idle(k, side) == 0 {
		return fmt.Errorf("%w: no %s left on the %s side", ErrUnavailableCharacter, k, side)
	}
	s.boarded = append(s.boarded, k)
	return nil
}

// Cross sails the boat with its passengers. The returned bool is false when
// the landing leaves priests outnumbered on either bank; the position is
// committed either way.
func (s *State) Cross() (bool, error) {
	if len(s.boarded) == 0 {
		return false, ErrEmptyBoat
	}
	s.history = append(s.history, s.pos)

	from, to := s.pos.Boat, s.pos.Boat.Opposite()
	for _, k := range s.boarded {
		s.pos.add(k, from, -1)
		s.pos.add(k, to, 1)
	}
	s.pos.Boat = to
	s.boarded = nil
	return s.pos.Safe(), nil
}

// Undo reverts the last crossing from history. The passengers of that
// crossing end up back on their bank, not in the boat.
func (s *State) Undo() error {
	if len(s.history) == 0 {
		return ErrNoHistory
	}
	if len(s.boarded) > 0 {
		return fmt.Errorf("%w: %d boarded", ErrPassengersAboard, len(s.boarded))
	}
	s.pos = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	return nil
}

// Restart returns to the opening position, dropping the boat and history.
func (s *State) Restart() {
	s.pos = Start(s.totals)
	s.boarded = nil
	s.history = nil
}

// Disembark sends every boarded passenger back to the bank.
func (s *State) Disembark() {
	s.boarded = nil
}

func (s *State) IsWon() bool { return s.pos.IsWon() }

func (s *State) Snapshot() Position { return s.pos }

// Restore jumps to p without touching history. The boat is emptied.
func (s *State) Restore(p Position) error {
	if !p.ValidFor(s.totals) {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, p)
	}
	s.pos = p
	s.boarded = nil
	return nil
}

func (s *State) Passengers() []Kind {
	return append([]Kind(nil), s.boarded...)
}

// Crossings is the number of crossings that can still be undone.
func (s *State) Crossings() int { return len(s.history) }

// Idle is the number of characters of kind k on the given bank that are not
// sitting in the boat.
func (s *State) Idle(k Kind, side Side) int {
	if k != Priest && k != Devil {
		return 0
	}
	n := s.pos.Count(k, side)
	if side == s.pos.Boat {
		for _, b := range s.boarded {
			if b == k {
				n--
			}
		}
	}
	return n
}

// Available reports whether the index-th character of kind k on the given
// bank can be selected. Boarded and absent characters are unavailable.
func (s *State) Available(k Kind, side Side, index int) bool {
	return index >= 0 && index < s.Idle(k, side)
}

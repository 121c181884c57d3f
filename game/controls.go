package game

import (
	"fmt"

	"priests-devils/river"
)

// Control is one selectable character button of a front-end.
type Control struct {
	Kind    river.Kind
	Side    river.Side
	Index   int
	Enabled bool
}

// Label is the button caption, e.g. "Priest 2 (L)".
func (c Control) Label() string {
	name := "Priest"
	if c.Kind == river.Devil {
		name = "Devil"
	}
	side := "L"
	if c.Side == river.Right {
		side = "R"
	}
	return fmt.Sprintf("%s %d (%s)", name, c.Index+1, side)
}

// Controls lists a button per character and bank, ordered by index, then
// priests before devils, then left before right. A control is disabled
// when its character is in the boat or on the other bank, or when the player
// does not have control.
func (s *Session) Controls() []Control {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := max(s.totals.Priests, s.totals.Devils)
	out := make([]Control, 0, 4*n)
	for i := 0; i < n; i++ {
		for _, k := range []river.Kind{river.Priest, river.Devil} {
			if (k == river.Priest && i >= s.totals.Priests) || (k == river.Devil && i >= s.totals.Devils) {
				continue
			}
			for _, side := range []river.Side{river.Left, river.Right} {
				out = append(out, Control{
					Kind:    k,
					Side:    side,
					Index:   i,
					Enabled: s.status == Playing && s.state.Available(k, side, i),
				})
			}
		}
	}
	return out
}

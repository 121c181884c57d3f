package river

import "fmt"

// Move is one boat trip: how many of each kind cross together.
type Move struct {
	Priests int
	Devils  int
}

// moves is tried in this order for every node; together with first-discovery
// parents it fixes which shortest solution is returned.
var moves = [...]Move{
	{Priests: 1},
	{Priests: 2},
	{Devils: 1},
	{Devils: 2},
	{Priests: 1, Devils: 1},
}

func (m Move) String() string {
	switch {
	case m.Priests > 0 && m.Devils > 0:
		return fmt.Sprintf("%d priest(s) + %d devil(s)", m.Priests, m.Devils)
	case m.Priests > 0:
		return fmt.Sprintf("%d priest(s)", m.Priests)
	default:
		return fmt.Sprintf("%d devil(s)", m.Devils)
	}
}

// MoveBetween recovers the move that takes a to b. ok is false when b is
// not one crossing away from a.
func MoveBetween(a, b Position) (Move, bool) {
	if a.Boat == b.Boat {
		return Move{}, false
	}
	m := Move{
		Priests: a.Count(Priest, a.Boat) - b.Count(Priest, a.Boat),
		Devils:  a.Count(Devil, a.Boat) - b.Count(Devil, a.Boat),
	}
	if m.Priests < 0 || m.Devils < 0 || m.Priests+m.Devils == 0 || m.Priests+m.Devils > boatCapacity {
		return Move{}, false
	}
	if b.Count(Priest, b.Boat)-a.Count(Priest, b.Boat) != m.Priests ||
		b.Count(Devil, b.Boat)-a.Count(Devil, b.Boat) != m.Devils {
		return Move{}, false
	}
	return m, true
}

// apply returns the position after m from p. ok is false when the boat side
// does not hold enough characters.
func (p Position) apply(m Move) (Position, bool) {
	from, to := p.Boat, p.Boat.Opposite()
	if m.Priests > p.Count(Priest, from) || m.Devils > p.Count(Devil, from) {
		return Position{}, false
	}
	next := p
	next.add(Priest, from, -m.Priests)
	next.add(Devil, from, -m.Devils)
	next.add(Priest, to, m.Priests)
	next.add(Devil, to, m.Devils)
	next.Boat = to
	return next, true
}

// Neighbors lists the legal positions one crossing away from p, in move order.
func (p Position) Neighbors() []Position {
	out := make([]Position, 0, len(moves))
	for _, m := range moves {
		next, ok := p.apply(m)
		if !ok || !next.Safe() {
			continue
		}
		out = append(out, next)
	}
	return out
}

type Solution struct {
	Path     []Position // excludes the start, ends on a won position
	Expanded int
}

// Solve runs a breadth-first search from start and returns the shortest
// sequence of legal positions ending with everyone on the right bank.
func Solve(t Totals, start Position) (Solution, error) {
	if err := t.Validate(); err != nil {
		return Solution{}, err
	}
	if !start.ValidFor(t) {
		return Solution{}, fmt.Errorf("%w: %s", ErrInvalidPosition, start)
	}
	if start.IsWon() {
		return Solution{Path: []Position{}}, nil
	}

	queue := []Position{start}
	visited := map[Position]bool{start: true}
	parent := map[Position]Position{}
	expanded := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		expanded++

		for _, next := range current.Neighbors() {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = current
			if next.IsWon() {
				return Solution{Path: reconstructPath(parent, start, next), Expanded: expanded}, nil
			}
			queue = append(queue, next)
		}
	}
	return Solution{Expanded: expanded}, ErrNoSolution
}

func reconstructPath(parent map[Position]Position, start, goal Position) []Position {
	reversed := []Position{}
	for n := goal; n != start; n = parent[n] {
		reversed = append(reversed, n)
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}

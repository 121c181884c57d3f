package river

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveCanonicalPuzzle(t *testing.T) {
	totals := DefaultTotals()
	result, err := Solve(totals, Start(totals))
	require.NoError(t, err)

	want := []Position{
		{PriestsLeft: 3, DevilsLeft: 1, PriestsRight: 0, DevilsRight: 2, Boat: Right},
		{PriestsLeft: 3, DevilsLeft: 2, PriestsRight: 0, DevilsRight: 1, Boat: Left},
		{PriestsLeft: 3, DevilsLeft: 0, PriestsRight: 0, DevilsRight: 3, Boat: Right},
		{PriestsLeft: 3, DevilsLeft: 1, PriestsRight: 0, DevilsRight: 2, Boat: Left},
		{PriestsLeft: 1, DevilsLeft: 1, PriestsRight: 2, DevilsRight: 2, Boat: Right},
		{PriestsLeft: 2, DevilsLeft: 2, PriestsRight: 1, DevilsRight: 1, Boat: Left},
		{PriestsLeft: 0, DevilsLeft: 2, PriestsRight: 3, DevilsRight: 1, Boat: Right},
		{PriestsLeft: 0, DevilsLeft: 3, PriestsRight: 3, DevilsRight: 0, Boat: Left},
		{PriestsLeft: 0, DevilsLeft: 1, PriestsRight: 3, DevilsRight: 2, Boat: Right},
		{PriestsLeft: 1, DevilsLeft: 1, PriestsRight: 2, DevilsRight: 2, Boat: Left},
		{PriestsLeft: 0, DevilsLeft: 0, PriestsRight: 3, DevilsRight: 3, Boat: Right},
	}
	assert.Equal(t, want, result.Path)
	assert.Greater(t, result.Expanded, 0)

	first, ok := MoveBetween(Start(totals), result.Path[0])
	require.True(t, ok)
	assert.Equal(t, Move{Devils: 2}, first)
}

func TestSolvePathIsLegal(t *testing.T) {
	for _, totals := range []Totals{{3, 3}, {2, 2}, {1, 1}, {4, 3}, {5, 2}, {0, 4}, {3, 0}} {
		start := Start(totals)
		result, err := Solve(totals, start)
		require.NoError(t, err, "totals %+v", totals)
		require.NotEmpty(t, result.Path)

		prev := start
		for _, p := range result.Path {
			assert.True(t, p.ValidFor(totals), "%s for %+v", p, totals)
			assert.True(t, p.Safe(), "%s for %+v", p, totals)
			_, ok := MoveBetween(prev, p)
			assert.True(t, ok, "%s -> %s", prev, p)
			prev = p
		}
		assert.True(t, prev.IsWon())
	}
}

func TestSolveFromMidGame(t *testing.T) {
	totals := DefaultTotals()
	start := Position{PriestsLeft: 0, DevilsLeft: 1, PriestsRight: 3, DevilsRight: 2, Boat: Right}
	result, err := Solve(totals, start)
	require.NoError(t, err)
	require.Len(t, result.Path, 2)
	assert.Equal(t, Position{PriestsLeft: 1, DevilsLeft: 1, PriestsRight: 2, DevilsRight: 2, Boat: Left}, result.Path[0])
	assert.True(t, result.Path[1].IsWon())
}

func TestSolveNoSolution(t *testing.T) {
	totals := Totals{Priests: 4, Devils: 4}
	result, err := Solve(totals, Start(totals))
	assert.ErrorIs(t, err, ErrNoSolution)
	assert.Empty(t, result.Path)
}

func TestSolveAlreadyWon(t *testing.T) {
	totals := DefaultTotals()
	result, err := Solve(totals, Position{PriestsRight: 3, DevilsRight: 3, Boat: Right})
	require.NoError(t, err)
	assert.Empty(t, result.Path)

	result, err = Solve(Totals{}, Start(Totals{}))
	require.NoError(t, err)
	assert.Empty(t, result.Path)
}

func TestSolveRejectsBadInput(t *testing.T) {
	_, err := Solve(Totals{Priests: -2}, Position{})
	assert.ErrorIs(t, err, ErrInvalidTotals)

	_, err = Solve(DefaultTotals(), Position{PriestsLeft: 9, Boat: Left})
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestNeighborsOrderAtStart(t *testing.T) {
	got := Start(DefaultTotals()).Neighbors()
	assert.Equal(t, []Position{
		{PriestsLeft: 3, DevilsLeft: 2, DevilsRight: 1, Boat: Right},
		{PriestsLeft: 3, DevilsLeft: 1, DevilsRight: 2, Boat: Right},
		{PriestsLeft: 2, DevilsLeft: 2, PriestsRight: 1, DevilsRight: 1, Boat: Right},
	}, got)
}

func TestMoveBetween(t *testing.T) {
	start := Start(DefaultTotals())
	tests := []struct {
		name string
		to   Position
		want Move
		ok   bool
	}{
		{"one devil", Position{PriestsLeft: 3, DevilsLeft: 2, DevilsRight: 1, Boat: Right}, Move{Devils: 1}, true},
		{"mixed", Position{PriestsLeft: 2, DevilsLeft: 2, PriestsRight: 1, DevilsRight: 1, Boat: Right}, Move{Priests: 1, Devils: 1}, true},
		{"boat did not move", Position{PriestsLeft: 3, DevilsLeft: 2, DevilsRight: 1, Boat: Left}, Move{}, false},
		{"three passengers", Position{PriestsLeft: 3, DevilsRight: 3, Boat: Right}, Move{}, false},
		{"nobody crossed", Position{PriestsLeft: 3, DevilsLeft: 3, Boat: Right}, Move{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MoveBetween(start, tt.to)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPositionHelpers(t *testing.T) {
	p := Position{PriestsLeft: 1, DevilsLeft: 2, PriestsRight: 2, DevilsRight: 1, Boat: Right}
	assert.Equal(t, "(1,2,2,1,right)", p.String())
	assert.False(t, p.Safe())
	assert.True(t, Position{DevilsLeft: 3, PriestsRight: 3, Boat: Left}.Safe())
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, "devil", Devil.String())
	assert.Equal(t, "1 priest(s) + 1 devil(s)", Move{Priests: 1, Devils: 1}.String())
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFlipsOccupiedTarget(t *testing.T) {
	b := NewBoard()
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b[r][c] != Empty {
				assert.Empty(t, ComputeFlips(b, Black, r, c, Protection{}))
				assert.Empty(t, ComputeFlips(b, White, r, c, Protection{}))
			}
		}
	}
}

func TestComputeFlipsOutOfRange(t *testing.T) {
	b := NewBoard()
	assert.Empty(t, ComputeFlips(b, Black, -1, 0, Protection{}))
	assert.Empty(t, ComputeFlips(b, Black, 0, 8, Protection{}))
}

func TestOpeningMoveFlipsSingleDisc(t *testing.T) {
	b := NewBoard()
	flips := ComputeFlips(b, Black, 2, 3, Protection{})
	require.Equal(t, []Coord{{Row: 3, Col: 3}}, flips)

	nb, applied := ApplyMove(b, Black, 2, 3, Protection{})
	assert.Equal(t, flips, applied)
	black, white := nb.CountDiscs()
	assert.Equal(t, 4, black)
	assert.Equal(t, 1, white)
}

func TestApplyMoveIllegalIsNoOp(t *testing.T) {
	b := NewBoard()
	nb, flips := ApplyMove(b, Black, 0, 0, Protection{})
	assert.Empty(t, flips)
	assert.Equal(t, b, nb)
}

func TestLegalMovesOpening(t *testing.T) {
	b := NewBoard()
	moves := LegalMoves(b, Black, Protection{})
	assert.ElementsMatch(t, []Coord{
		{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4},
	}, moves)
	assert.True(t, HasAnyLegalMove(b, White, Protection{}))
}

func TestShieldedDiscNeverFlips(t *testing.T) {
	b := NewBoard()
	var prot Protection
	prot.Shields[3][3] = true

	// The only capture at (2,3) runs through the shielded disc, so the move
	// is no longer legal at all.
	assert.Empty(t, ComputeFlips(b, Black, 2, 3, prot))
	assert.False(t, IsValidMove(b, Black, 2, 3, prot))

	for _, m := range LegalMoves(b, Black, prot) {
		for _, f := range ComputeFlips(b, Black, m.Row, m.Col, prot) {
			assert.False(t, f.Row == 3 && f.Col == 3, "shielded disc flipped via (%d,%d)", m.Row, m.Col)
		}
	}
}

func TestPartiallyShieldedRayStaysLegal(t *testing.T) {
	var b Board
	b[0][0] = Black
	b[0][1] = White
	b[0][2] = White

	var prot Protection
	prot.Shields[0][2] = true

	// The ray from (0,3) still terminates on (0,0); only the shielded cell
	// drops out of the capture.
	flips := ComputeFlips(b, Black, 0, 3, prot)
	assert.Equal(t, []Coord{{Row: 0, Col: 1}}, flips)
	assert.True(t, IsValidMove(b, Black, 0, 3, prot))
}

func TestBarrierBlocksOnlyOpponent(t *testing.T) {
	b := NewBoard()
	bar := &Barrier{Owner: Black, Center: Coord{Row: 2, Col: 3}, ExpiresOnTurn: 1}
	prot := Protection{Barrier: bar}

	// White's capture of (3,4) is inside the barrier region and is suppressed.
	assert.True(t, bar.Covers(3, 4))
	assert.Empty(t, ComputeFlips(b, White, 2, 4, prot))
	assert.False(t, IsValidMove(b, White, 2, 4, prot))

	// The owner's own captures are unaffected.
	assert.Equal(t, []Coord{{Row: 3, Col: 3}}, ComputeFlips(b, Black, 2, 3, prot))
}

func TestBarrierRegionExcludesCenter(t *testing.T) {
	bar := &Barrier{Owner: White, Center: Coord{Row: 4, Col: 4}}
	assert.False(t, bar.Covers(4, 4))
	assert.True(t, bar.Covers(3, 3))
	assert.True(t, bar.Covers(5, 5))
	assert.False(t, bar.Covers(4, 6))
	assert.Len(t, bar.Cells(), 8)

	corner := &Barrier{Owner: White, Center: Coord{Row: 0, Col: 1}}
	assert.Len(t, corner.Cells(), 5)
}

func TestLegalMoveIncreasesMoverCount(t *testing.T) {
	b := NewBoard()
	for _, p := range []Cell{Black, White} {
		for _, m := range LegalMoves(b, p, Protection{}) {
			before, _ := countFor(b, p)
			totalBefore := totalDiscs(b)
			nb, flips := ApplyMove(b, p, m.Row, m.Col, Protection{})
			require.NotEmpty(t, flips)
			after, _ := countFor(nb, p)
			assert.Greater(t, after, before)
			assert.GreaterOrEqual(t, totalDiscs(nb), totalBefore)
		}
	}
}

func countFor(b Board, p Cell) (own, opp int) {
	black, white := b.CountDiscs()
	if p == Black {
		return black, white
	}
	return white, black
}

func totalDiscs(b Board) int {
	black, white := b.CountDiscs()
	return black + white
}

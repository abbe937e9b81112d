package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoardOpening(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, White, b[3][3])
	assert.Equal(t, Black, b[3][4])
	assert.Equal(t, Black, b[4][3])
	assert.Equal(t, White, b[4][4])

	black, white := b.CountDiscs()
	assert.Equal(t, 2, black)
	assert.Equal(t, 2, white)
}

func TestCornerAndEdgeClassification(t *testing.T) {
	corners := [][2]int{{0, 0}, {0, 7}, {7, 0}, {7, 7}}
	for _, c := range corners {
		assert.True(t, IsCorner(c[0], c[1]), "corner (%d,%d)", c[0], c[1])
		assert.False(t, IsEdge(c[0], c[1]), "corner is not edge (%d,%d)", c[0], c[1])
	}

	assert.True(t, IsEdge(0, 3))
	assert.True(t, IsEdge(5, 7))
	assert.True(t, IsEdge(7, 1))
	assert.False(t, IsEdge(3, 3))
	assert.False(t, IsCorner(3, 3))
}

func TestBoardValueSemantics(t *testing.T) {
	b := NewBoard()
	c := b
	c[0][0] = Black
	assert.Equal(t, Empty, b[0][0], "copies must not alias")
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, White, Opponent(Black))
	assert.Equal(t, Black, Opponent(White))
}

package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill-reversi/internal/game"
)

func testState(b game.Board, current game.Cell) State {
	return State{
		Board:      b,
		Current:    current,
		SkillTiles: map[game.Coord]game.SkillType{},
		Hands: map[game.Cell][]game.SkillType{
			game.Black: {},
			game.White: {},
		},
	}
}

func TestNewStateLayout(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	st := newState(rng, 2)

	assert.Equal(t, game.NewBoard(), st.Board)
	assert.Equal(t, game.Black, st.Current)
	assert.Equal(t, 0, st.TurnIdx)
	assert.Len(t, st.SkillTiles, 12)

	mid := game.BoardSize / 2
	for coord := range st.SkillTiles {
		assert.False(t, game.IsCorner(coord.Row, coord.Col), "tile on corner %v", coord)
		onCenter := (coord.Row == mid-1 || coord.Row == mid) && (coord.Col == mid-1 || coord.Col == mid)
		assert.False(t, onCenter, "tile on center %v", coord)
	}

	// Same seed, same layout.
	again := newState(rand.New(rand.NewSource(7)), 2)
	assert.Equal(t, st.SkillTiles, again.SkillTiles)
}

func TestPlaceDiscAdvancesTurn(t *testing.T) {
	st := testState(game.NewBoard(), game.Black)

	ns, ok := st.PlaceDisc(2, 3)
	require.True(t, ok)
	assert.Equal(t, game.White, ns.Current)
	assert.Equal(t, 1, ns.TurnIdx)
	require.NotNil(t, ns.LastMove)
	assert.Equal(t, game.Black, ns.LastMove.Player)
	assert.Equal(t, game.Coord{Row: 2, Col: 3}, ns.LastMove.Placed)
	assert.Equal(t, []game.Coord{{Row: 3, Col: 3}}, ns.LastMove.Flipped)

	// The original snapshot is untouched.
	assert.Equal(t, 0, st.TurnIdx)
	assert.Equal(t, game.Empty, st.Board[2][3])
}

func TestPlaceDiscRejectionIsIdempotent(t *testing.T) {
	st := testState(game.NewBoard(), game.Black)

	once, ok := st.PlaceDisc(0, 0)
	assert.False(t, ok)
	twice, ok := once.PlaceDisc(0, 0)
	assert.False(t, ok)
	assert.Equal(t, once, twice)
	assert.Equal(t, st, once)
}

func TestTurnSkipWhenOpponentStalled(t *testing.T) {
	var b game.Board
	b[0][0] = game.Black
	b[0][1] = game.White
	b[2][0] = game.Black
	b[2][1] = game.White
	// After black plays (0,2), white has no reply anywhere but black can
	// still take (2,2).
	st := testState(b, game.Black)
	ns, ok := st.PlaceDisc(0, 2)
	require.True(t, ok)
	assert.False(t, ns.GameOver)
	assert.Equal(t, game.Black, ns.Current, "turn must not pass to a stalled player")
	assert.Equal(t, 1, ns.TurnIdx)
}

func TestGameEndAndWinner(t *testing.T) {
	var b game.Board
	b[0][0] = game.Black
	b[0][1] = game.White

	st := testState(b, game.Black)
	ns, ok := st.PlaceDisc(0, 2)
	require.True(t, ok)
	assert.True(t, ns.GameOver)
	assert.Equal(t, game.Black, ns.Winner)

	// Terminal state accepts nothing further.
	rejected, ok := ns.PlaceDisc(0, 3)
	assert.False(t, ok)
	assert.Equal(t, ns, rejected)
	_, ok = ns.ActivateSkill(game.SkillWarp, &game.Coord{Row: 5, Col: 5})
	assert.False(t, ok)
	_, ok = ns.Pass()
	assert.False(t, ok)
}

func TestConvertSkill(t *testing.T) {
	st := testState(game.NewBoard(), game.Black)
	st.Hands[game.Black] = []game.SkillType{game.SkillConvert}
	st.Shields[3][3] = true

	ns, ok := st.ActivateSkill(game.SkillConvert, &game.Coord{Row: 3, Col: 3})
	require.True(t, ok)
	assert.Equal(t, game.Black, ns.Board[3][3])
	assert.False(t, ns.Shields[3][3], "conversion clears the shield")
	assert.Empty(t, ns.Hands[game.Black])
	assert.Equal(t, 1, ns.TurnIdx)
	require.NotNil(t, ns.LastMove)
	assert.Empty(t, ns.LastMove.Flipped)
}

func TestRemoveSkill(t *testing.T) {
	st := testState(game.NewBoard(), game.White)
	st.Hands[game.White] = []game.SkillType{game.SkillRemove}

	ns, ok := st.ActivateSkill(game.SkillRemove, &game.Coord{Row: 3, Col: 4})
	require.True(t, ok)
	assert.Equal(t, game.Empty, ns.Board[3][4])
	assert.Empty(t, ns.Hands[game.White])
}

func TestSkillNotHeldRejected(t *testing.T) {
	st := testState(game.NewBoard(), game.Black)
	ns, ok := st.ActivateSkill(game.SkillConvert, &game.Coord{Row: 3, Col: 3})
	assert.False(t, ok)
	assert.Equal(t, st, ns)
}

func TestOneSkillPerTurn(t *testing.T) {
	st := testState(game.NewBoard(), game.Black)
	st.Hands[game.Black] = []game.SkillType{game.SkillShield, game.SkillShield}

	ns, ok := st.ActivateSkill(game.SkillShield, &game.Coord{Row: 3, Col: 4})
	require.True(t, ok)
	// Shield advanced the turn; pretend it's black again by reusing the
	// pre-advance flag state directly.
	mid := ns
	mid.Current = game.Black
	mid.SkillUsed = true
	_, ok = mid.ActivateSkill(game.SkillShield, &game.Coord{Row: 4, Col: 3})
	assert.False(t, ok, "second skill in one turn must be rejected")
}

func TestBarrierLifecycle(t *testing.T) {
	st := testState(game.NewBoard(), game.Black)
	st.Hands[game.Black] = []game.SkillType{game.SkillBarrier}

	ns, ok := st.ActivateSkill(game.SkillBarrier, &game.Coord{Row: 2, Col: 3})
	require.True(t, ok)
	require.NotNil(t, ns.Barrier)
	assert.Equal(t, game.Black, ns.Barrier.Owner)
	assert.Equal(t, 1, ns.Barrier.ExpiresOnTurn)
	assert.Equal(t, game.White, ns.Current)

	// White cannot capture into the region while the barrier holds.
	_, ok = ns.PlaceDisc(2, 4)
	assert.False(t, ok, "capture into the barrier region must be suppressed")

	// A capture entirely outside the region is fine, and the following turn
	// advance expires the barrier.
	after, ok := ns.PlaceDisc(5, 3)
	require.True(t, ok)
	assert.Greater(t, after.TurnIdx, 1)
	assert.Nil(t, after.Barrier, "barrier must expire once the turn index passes its window")
}

func TestDoubleMoveSequence(t *testing.T) {
	b := game.NewBoard()
	st := testState(b, game.Black)
	st.Hands[game.Black] = []game.SkillType{game.SkillDouble}

	ns, ok := st.ActivateSkill(game.SkillDouble, nil)
	require.True(t, ok)
	assert.Equal(t, 2, ns.DoubleLeft)
	assert.Equal(t, 0, ns.TurnIdx, "starting double must not advance the turn")
	assert.Equal(t, game.Black, ns.Current)
	assert.True(t, ns.SkillUsed)

	// No other skill while the sequence runs.
	ns.Hands[game.Black] = []game.SkillType{game.SkillShield}
	_, ok = ns.ActivateSkill(game.SkillShield, &game.Coord{Row: 3, Col: 4})
	assert.False(t, ok)
	ns.Hands[game.Black] = nil

	first, ok := ns.PlaceDisc(2, 3)
	require.True(t, ok)
	assert.Equal(t, 1, first.DoubleLeft)
	assert.Equal(t, game.Black, first.Current)
	assert.Equal(t, 0, first.TurnIdx)

	second, ok := first.PlaceDisc(5, 5)
	require.True(t, ok)
	assert.Equal(t, 0, second.DoubleLeft)
	assert.Equal(t, 1, second.TurnIdx, "sequence end falls through to the turn advance")
}

func TestDoubleEndsEarlyWithoutMoves(t *testing.T) {
	var b game.Board
	b[0][0] = game.Black
	b[0][1] = game.White
	b[5][5] = game.White // keeps white alive after the capture

	st := testState(b, game.Black)
	st.Hands[game.Black] = []game.SkillType{game.SkillDouble}

	ns, ok := st.ActivateSkill(game.SkillDouble, nil)
	require.True(t, ok)

	after, ok := ns.PlaceDisc(0, 2)
	require.True(t, ok)
	assert.Equal(t, 0, after.DoubleLeft, "sequence ends when mobility runs out")
	assert.Equal(t, 1, after.TurnIdx)
}

func TestWarpSkillAndPickup(t *testing.T) {
	st := testState(game.NewBoard(), game.Black)
	st.Hands[game.Black] = []game.SkillType{game.SkillWarp}
	st.SkillTiles[game.Coord{Row: 0, Col: 0}] = game.SkillConvert

	ns, ok := st.ActivateSkill(game.SkillWarp, &game.Coord{Row: 0, Col: 0})
	require.True(t, ok)
	assert.Equal(t, game.Black, ns.Board[0][0])
	assert.Empty(t, ns.SkillTiles, "warp destination runs tile pickup")
	assert.Equal(t, []game.SkillType{game.SkillConvert}, ns.Hands[game.Black])
	require.NotNil(t, ns.LastMove)
	assert.Empty(t, ns.LastMove.Flipped, "warp performs no capture")
}

func TestPickupOnPlacement(t *testing.T) {
	st := testState(game.NewBoard(), game.Black)
	st.SkillTiles[game.Coord{Row: 2, Col: 3}] = game.SkillShield

	ns, ok := st.PlaceDisc(2, 3)
	require.True(t, ok)
	assert.Equal(t, []game.SkillType{game.SkillShield}, ns.Hands[game.Black])
	assert.Empty(t, ns.SkillTiles)
}

func TestPickupDiscardedWhenHandFull(t *testing.T) {
	st := testState(game.NewBoard(), game.Black)
	st.Hands[game.Black] = []game.SkillType{game.SkillWarp, game.SkillWarp}
	st.SkillTiles[game.Coord{Row: 2, Col: 3}] = game.SkillConvert

	ns, ok := st.PlaceDisc(2, 3)
	require.True(t, ok)
	assert.Equal(t, []game.SkillType{game.SkillWarp, game.SkillWarp}, ns.Hands[game.Black])
	assert.Empty(t, ns.SkillTiles, "tile leaves the board even when discarded")
	assert.Contains(t, ns.Log[len(ns.Log)-2]+ns.Log[len(ns.Log)-1], "discarded")
}

func TestPassOnlyWhenStalled(t *testing.T) {
	st := testState(game.NewBoard(), game.Black)
	rejected, ok := st.Pass()
	assert.False(t, ok, "pass with legal moves available must be rejected")
	assert.Equal(t, st, rejected)

	var b game.Board
	b[0][0] = game.Black
	b[5][5] = game.White
	stalled := testState(b, game.White)
	// Neither isolated disc can capture, so the pass ends the game in a draw.
	ns, ok := stalled.Pass()
	require.True(t, ok)
	assert.True(t, ns.GameOver)
	assert.Equal(t, game.Empty, ns.Winner)
}

func TestConsumeRemovesFirstMatch(t *testing.T) {
	hand := []game.SkillType{game.SkillWarp, game.SkillShield, game.SkillWarp}
	out := consume(hand, game.SkillWarp)
	assert.Equal(t, []game.SkillType{game.SkillShield, game.SkillWarp}, out)
}

package session

import (
	"fmt"
	"math/rand"

	"skill-reversi/internal/game"
)

// HandCapacity is the most skills a player may hold; overflow pickups are
// discarded, not queued.
const HandCapacity = 2

// MoveDescriptor describes the board effect of the last accepted intent:
// who acted, where the disc landed (or which cell a skill touched), and every
// cell that flipped. The effects layer consumes it to chain visuals; the
// rules never read it back.
type MoveDescriptor struct {
	Player  game.Cell    `json:"player"`
	Placed  game.Coord   `json:"placed"`
	Flipped []game.Coord `json:"flipped"`
}

// State is the authoritative game state. It is treated as an immutable value:
// every transition clones it and returns the clone, so retained snapshots
// (renderers, the AI's lookahead, diffing for effects) stay internally
// consistent without locking.
type State struct {
	Board      game.Board
	Current    game.Cell
	TurnIdx    int
	SkillTiles map[game.Coord]game.SkillType
	Hands      map[game.Cell][]game.SkillType
	Shields    [game.BoardSize][game.BoardSize]bool
	Barrier    *game.Barrier
	SkillUsed  bool
	DoubleLeft int
	LastMove   *MoveDescriptor
	GameOver   bool
	Winner     game.Cell // Empty while running and on a draw
	Log        []string
}

func newState(rng *rand.Rand, tilesPerKind int) State {
	return State{
		Board:      game.NewBoard(),
		Current:    game.Black,
		SkillTiles: layoutTiles(rng, tilesPerKind),
		Hands: map[game.Cell][]game.SkillType{
			game.Black: {},
			game.White: {},
		},
		Log: []string{"game started"},
	}
}

// layoutTiles shuffles every non-corner, non-center cell and assigns the
// fixed skill pool (tilesPerKind of each kind, catalog order) to the first
// positions.
func layoutTiles(rng *rand.Rand, tilesPerKind int) map[game.Coord]game.SkillType {
	mid := game.BoardSize / 2
	var cells []game.Coord
	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			if game.IsCorner(r, c) {
				continue
			}
			if (r == mid-1 || r == mid) && (c == mid-1 || c == mid) {
				continue
			}
			cells = append(cells, game.Coord{Row: r, Col: c})
		}
	}
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	tiles := make(map[game.Coord]game.SkillType)
	i := 0
	for _, kind := range game.AllSkills {
		for n := 0; n < tilesPerKind && i < len(cells); n++ {
			tiles[cells[i]] = kind
			i++
		}
	}
	return tiles
}

// clone deep-copies the shared containers so the receiver stays untouched
// while the clone is mutated.
func (st State) clone() State {
	tiles := make(map[game.Coord]game.SkillType, len(st.SkillTiles))
	for k, v := range st.SkillTiles {
		tiles[k] = v
	}
	st.SkillTiles = tiles

	hands := make(map[game.Cell][]game.SkillType, len(st.Hands))
	for p, h := range st.Hands {
		hands[p] = append([]game.SkillType(nil), h...)
	}
	st.Hands = hands

	st.Log = append([]string(nil), st.Log...)
	if st.Barrier != nil {
		bar := *st.Barrier
		st.Barrier = &bar
	}
	return st
}

func (st State) protection() game.Protection {
	return game.Protection{Shields: st.Shields, Barrier: st.Barrier}
}

func (st *State) appendLog(format string, args ...any) {
	st.Log = append(st.Log, fmt.Sprintf(format, args...))
}

// PlaceDisc applies a normal capture placement for the current player. An
// illegal placement returns the state unchanged with ok=false.
func (st State) PlaceDisc(r, c int) (State, bool) {
	if st.GameOver {
		return st, false
	}
	board, flips := game.ApplyMove(st.Board, st.Current, r, c, st.protection())
	if len(flips) == 0 {
		return st, false
	}

	ns := st.clone()
	ns.Board = board
	ns.LastMove = &MoveDescriptor{
		Player:  st.Current,
		Placed:  game.Coord{Row: r, Col: c},
		Flipped: flips,
	}
	ns.appendLog("%s placed at (%d,%d), flipping %d", st.Current, r, c, len(flips))
	ns.pickup(st.Current, r, c)

	if ns.DoubleLeft > 0 {
		ns.DoubleLeft--
		if ns.DoubleLeft > 0 && game.HasAnyLegalMove(ns.Board, ns.Current, ns.protection()) {
			return ns, true
		}
		ns.DoubleLeft = 0
	}
	ns.advanceTurn()
	return ns, true
}

// ActivateSkill applies a skill for the current player. At most one skill per
// turn, never during a double-move sequence, and only from the hand. Illegal
// activations return the state unchanged with ok=false.
func (st State) ActivateSkill(s game.SkillType, target *game.Coord) (State, bool) {
	if st.GameOver || st.SkillUsed || st.DoubleLeft > 0 {
		return st, false
	}
	if !holds(st.Hands[st.Current], s) {
		return st, false
	}
	prot := st.protection()
	var t game.Coord
	if s.NeedsTarget() {
		if target == nil || !game.ValidSkillTarget(st.Board, prot, st.Current, s, target.Row, target.Col) {
			return st, false
		}
		t = *target
	} else if !game.ValidSkillTarget(st.Board, prot, st.Current, s, 0, 0) {
		return st, false
	}

	ns := st.clone()
	ns.Hands[st.Current] = consume(ns.Hands[st.Current], s)
	ns.SkillUsed = true

	switch s {
	case game.SkillConvert:
		ns.Board[t.Row][t.Col] = st.Current
		ns.Shields[t.Row][t.Col] = false
		ns.LastMove = &MoveDescriptor{Player: st.Current, Placed: t}
		ns.appendLog("%s converted the disc at (%d,%d)", st.Current, t.Row, t.Col)
		ns.advanceTurn()
	case game.SkillRemove:
		ns.Board[t.Row][t.Col] = game.Empty
		ns.Shields[t.Row][t.Col] = false
		ns.LastMove = &MoveDescriptor{Player: st.Current, Placed: t}
		ns.appendLog("%s removed the disc at (%d,%d)", st.Current, t.Row, t.Col)
		ns.advanceTurn()
	case game.SkillShield:
		ns.Shields[t.Row][t.Col] = true
		ns.appendLog("%s shielded (%d,%d)", st.Current, t.Row, t.Col)
		ns.advanceTurn()
	case game.SkillBarrier:
		ns.Barrier = &game.Barrier{
			Owner:         st.Current,
			Center:        t,
			ExpiresOnTurn: st.TurnIdx + 1,
		}
		ns.appendLog("%s raised a barrier around (%d,%d)", st.Current, t.Row, t.Col)
		ns.advanceTurn()
	case game.SkillWarp:
		ns.Board[t.Row][t.Col] = st.Current
		ns.LastMove = &MoveDescriptor{Player: st.Current, Placed: t}
		ns.appendLog("%s warped a disc to (%d,%d)", st.Current, t.Row, t.Col)
		ns.pickup(st.Current, t.Row, t.Col)
		ns.advanceTurn()
	case game.SkillDouble:
		ns.DoubleLeft = 2
		ns.appendLog("%s plays a double move", st.Current)
	}
	return ns, true
}

// Pass is accepted only when the current player genuinely has no legal
// placement; the turn machine otherwise never leaves a player stranded.
func (st State) Pass() (State, bool) {
	if st.GameOver || st.DoubleLeft > 0 {
		return st, false
	}
	if game.HasAnyLegalMove(st.Board, st.Current, st.protection()) {
		return st, false
	}
	ns := st.clone()
	ns.appendLog("%s passes", st.Current)
	ns.advanceTurn()
	return ns, true
}

// advanceTurn increments the turn index, expires the barrier when its window
// has closed, and hands the turn to whichever player can move. If neither
// can, the game ends and the majority holder wins.
func (st *State) advanceTurn() {
	st.TurnIdx++
	st.SkillUsed = false
	st.DoubleLeft = 0
	if st.Barrier != nil && st.TurnIdx > st.Barrier.ExpiresOnTurn {
		st.Barrier = nil
		st.appendLog("barrier expired")
	}

	prot := st.protection()
	opp := game.Opponent(st.Current)
	switch {
	case game.HasAnyLegalMove(st.Board, opp, prot):
		st.Current = opp
	case game.HasAnyLegalMove(st.Board, st.Current, prot):
		st.appendLog("%s has no moves, %s goes again", opp, st.Current)
	default:
		st.finish()
	}
}

func (st *State) finish() {
	st.GameOver = true
	black, white := st.Board.CountDiscs()
	switch {
	case black > white:
		st.Winner = game.Black
		st.appendLog("game over: black wins %d-%d", black, white)
	case white > black:
		st.Winner = game.White
		st.appendLog("game over: white wins %d-%d", white, black)
	default:
		st.Winner = game.Empty
		st.appendLog("game over: draw %d-%d", black, white)
	}
}

// pickup runs the skill-tile check for a disc landing at (r, c). It fires on
// every landing, normal placement and warp alike.
func (st *State) pickup(p game.Cell, r, c int) {
	coord := game.Coord{Row: r, Col: c}
	tile, ok := st.SkillTiles[coord]
	if !ok {
		return
	}
	delete(st.SkillTiles, coord)
	if len(st.Hands[p]) >= HandCapacity {
		st.appendLog("%s found %s but their hand is full, tile discarded", p, tile)
		return
	}
	st.Hands[p] = append(st.Hands[p], tile)
	st.appendLog("%s picked up %s", p, tile)
}

// LegalMoves lists the current player's placements.
func (st State) LegalMoves() []game.Coord {
	if st.GameOver {
		return nil
	}
	return game.LegalMoves(st.Board, st.Current, st.protection())
}

// SkillTargets lists the current player's legal targets for a held skill.
func (st State) SkillTargets(s game.SkillType) []game.Coord {
	if st.GameOver || st.SkillUsed || st.DoubleLeft > 0 || !holds(st.Hands[st.Current], s) {
		return nil
	}
	return game.SkillTargets(st.Board, st.protection(), st.Current, s)
}

// CanActivate reports whether the current player may activate the skill at
// all this turn (held, no skill used yet, not mid double sequence, and with
// at least one legal target where one is required).
func (st State) CanActivate(s game.SkillType) bool {
	if st.GameOver || st.SkillUsed || st.DoubleLeft > 0 || !holds(st.Hands[st.Current], s) {
		return false
	}
	if !s.NeedsTarget() {
		return game.ValidSkillTarget(st.Board, st.protection(), st.Current, s, 0, 0)
	}
	return len(game.SkillTargets(st.Board, st.protection(), st.Current, s)) > 0
}

func holds(hand []game.SkillType, s game.SkillType) bool {
	for _, h := range hand {
		if h == s {
			return true
		}
	}
	return false
}

func consume(hand []game.SkillType, s game.SkillType) []game.SkillType {
	for i, h := range hand {
		if h == s {
			return append(hand[:i], hand[i+1:]...)
		}
	}
	return hand
}

package game

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// ComputeFlips returns every opponent disc captured by player placing at
// (r, c). For each of the 8 ray directions it walks outward over opponent
// discs; a ray that terminates on an own-color disc captures the discs it
// passed through. Protected cells (shield, hostile barrier) are dropped from
// the result per cell; they do not invalidate the rest of the ray, so a move
// can still be legal through its unprotected captures.
//
// An occupied or out-of-range target yields an empty result.
func ComputeFlips(b Board, player Cell, r, c int, prot Protection) []Coord {
	if !InBounds(r, c) || b[r][c] != Empty {
		return nil
	}
	opp := Opponent(player)

	var flips []Coord
	for _, d := range directions {
		nr, nc := r+d[0], c+d[1]
		var run []Coord
		for InBounds(nr, nc) && b[nr][nc] == opp {
			run = append(run, Coord{Row: nr, Col: nc})
			nr += d[0]
			nc += d[1]
		}
		if len(run) == 0 || !InBounds(nr, nc) || b[nr][nc] != player {
			continue
		}
		for _, f := range run {
			if !prot.Blocks(player, f.Row, f.Col) {
				flips = append(flips, f)
			}
		}
	}
	return flips
}

// IsValidMove reports whether placing at (r, c) captures at least one disc.
func IsValidMove(b Board, player Cell, r, c int, prot Protection) bool {
	return len(ComputeFlips(b, player, r, c, prot)) > 0
}

// HasAnyLegalMove reports whether some empty cell yields a capture for player.
func HasAnyLegalMove(b Board, player Cell, prot Protection) bool {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b[r][c] == Empty && IsValidMove(b, player, r, c, prot) {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists every coordinate player may place at, in row-major order.
func LegalMoves(b Board, player Cell, prot Protection) []Coord {
	var moves []Coord
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b[r][c] == Empty && IsValidMove(b, player, r, c, prot) {
				moves = append(moves, Coord{Row: r, Col: c})
			}
		}
	}
	return moves
}

// ApplyMove places player's disc at (r, c) and flips the captured discs,
// returning the resulting board and the flip list. An illegal move returns
// the board unchanged with no flips; callers are expected to have validated
// the move already.
func ApplyMove(b Board, player Cell, r, c int, prot Protection) (Board, []Coord) {
	flips := ComputeFlips(b, player, r, c, prot)
	if len(flips) == 0 {
		return b, nil
	}
	b[r][c] = player
	for _, f := range flips {
		b[f.Row][f.Col] = player
	}
	return b, flips
}

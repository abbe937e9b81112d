package game

// Barrier is a time-boxed region overlay around an activation coordinate.
// The region is the 3x3 neighborhood minus the center. It suppresses captures
// into its cells by the opponent of its owner until the turn index passes
// ExpiresOnTurn.
type Barrier struct {
	Owner         Cell  `json:"owner"`
	Center        Coord `json:"center"`
	ExpiresOnTurn int   `json:"expiresOnTurn"`
}

// Covers reports whether (r, c) lies inside the barrier region.
func (bar *Barrier) Covers(r, c int) bool {
	if bar == nil {
		return false
	}
	dr, dc := r-bar.Center.Row, c-bar.Center.Col
	if dr == 0 && dc == 0 {
		return false
	}
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Cells lists the region coordinates that fall on the board.
func (bar *Barrier) Cells() []Coord {
	if bar == nil {
		return nil
	}
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := bar.Center.Row+dr, bar.Center.Col+dc
			if InBounds(r, c) {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Protection is the flip-protection context the capture engine evaluates
// candidates against: the shield overlay plus the active barrier, if any.
// Expiry of the barrier is the session's concern; a Barrier present here is
// taken to be active.
type Protection struct {
	Shields [BoardSize][BoardSize]bool
	Barrier *Barrier
}

// Blocks reports whether the disc at (r, c) may not be flipped by mover.
// A shield protects against both players; a barrier only against the
// opponent of its owner.
func (p Protection) Blocks(mover Cell, r, c int) bool {
	if p.Shields[r][c] {
		return true
	}
	return p.Barrier != nil && p.Barrier.Owner != mover && p.Barrier.Covers(r, c)
}

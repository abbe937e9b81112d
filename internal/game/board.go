package game

// NewBoard returns the standard opening position: the center 2x2 occupied in
// the canonical diagonal pattern, two discs per color.
func NewBoard() Board {
	var b Board
	mid := BoardSize / 2
	b[mid-1][mid-1] = White
	b[mid][mid] = White
	b[mid-1][mid] = Black
	b[mid][mid-1] = Black
	return b
}

func InBounds(r, c int) bool {
	return r >= 0 && r < BoardSize && c >= 0 && c < BoardSize
}

func IsCorner(r, c int) bool {
	return (r == 0 || r == BoardSize-1) && (c == 0 || c == BoardSize-1)
}

// IsEdge reports whether the cell lies on the border but is not a corner.
func IsEdge(r, c int) bool {
	if IsCorner(r, c) {
		return false
	}
	return r == 0 || r == BoardSize-1 || c == 0 || c == BoardSize-1
}

// CountDiscs returns the number of cells owned by each player.
func (b Board) CountDiscs() (black, white int) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			switch b[r][c] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

package game

// ValidSkillTarget reports whether (r, c) is a legal target for player
// activating skill s on the given board. The double skill takes no target;
// its legality is whole-board mobility, checked here against any coordinate.
//
// Corners are permanently exempt from convert, remove, shield and barrier.
func ValidSkillTarget(b Board, prot Protection, player Cell, s SkillType, r, c int) bool {
	if !InBounds(r, c) {
		return false
	}
	switch s {
	case SkillConvert:
		return b[r][c] == Opponent(player) && !IsCorner(r, c)
	case SkillRemove:
		return b[r][c] != Empty && !IsCorner(r, c)
	case SkillShield:
		return b[r][c] == player && !IsCorner(r, c) && !prot.Shields[r][c]
	case SkillBarrier:
		return b[r][c] == Empty && !IsCorner(r, c) && !prot.Barrier.Covers(r, c)
	case SkillWarp:
		return b[r][c] == Empty
	case SkillDouble:
		return HasAnyLegalMove(b, player, prot)
	}
	return false
}

// SkillTargets lists every legal target for the skill in row-major order.
// Used by the rendering layer for highlighting; the targetless double skill
// yields nothing.
func SkillTargets(b Board, prot Protection, player Cell, s SkillType) []Coord {
	if !s.NeedsTarget() {
		return nil
	}
	var out []Coord
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if ValidSkillTarget(b, prot, player, s, r, c) {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

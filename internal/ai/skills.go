package ai

import (
	"skill-reversi/internal/game"
	"skill-reversi/internal/session"
)

// bestSkillAction evaluates every distinct held skill with its own target
// heuristic and returns the highest-scoring legal action. A non-positive
// best score means no skill is worth playing.
func (e *Engine) bestSkillAction(st session.State, side game.Cell, prot game.Protection, bestMove *scoredMove) (skillAction, bool) {
	var best skillAction
	found := false

	seen := map[game.SkillType]bool{}
	for _, skill := range st.Hands[side] {
		if seen[skill] {
			continue
		}
		seen[skill] = true

		act, ok := e.scoreSkill(st, side, prot, skill, bestMove)
		if !ok || act.score <= 0 {
			continue
		}
		if !found || act.score > best.score {
			best = act
			found = true
		}
	}
	return best, found
}

func (e *Engine) scoreSkill(st session.State, side game.Cell, prot game.Protection, skill game.SkillType, bestMove *scoredMove) (skillAction, bool) {
	switch skill {
	case game.SkillDouble:
		// Worth what an extra placement is worth; needs current mobility.
		if bestMove == nil || !game.ValidSkillTarget(st.Board, prot, side, skill, 0, 0) {
			return skillAction{}, false
		}
		return skillAction{skill: skill, score: bestMove.score}, true
	case game.SkillConvert:
		return e.bestTarget(st, side, prot, skill, func(t game.Coord) int {
			return e.w.ConvertBase + e.placementValue(t)
		})
	case game.SkillRemove:
		return e.bestTarget(st, side, prot, skill, func(t game.Coord) int {
			// Removing own material is never worth it.
			if st.Board[t.Row][t.Col] != game.Opponent(side) {
				return 0
			}
			return e.w.RemoveBase + e.placementValue(t)
		})
	case game.SkillShield:
		return e.bestTarget(st, side, prot, skill, func(t game.Coord) int {
			return e.shieldScore(st.Board, side, t)
		})
	case game.SkillBarrier:
		return e.barrierAction(st, side, prot)
	case game.SkillWarp:
		return e.bestTarget(st, side, prot, skill, func(t game.Coord) int {
			return e.warpScore(st, side, t)
		})
	}
	return skillAction{}, false
}

// bestTarget scans the skill's legal targets in row-major order and keeps
// the first highest-scoring one.
func (e *Engine) bestTarget(st session.State, side game.Cell, prot game.Protection, skill game.SkillType, score func(game.Coord) int) (skillAction, bool) {
	targets := game.SkillTargets(st.Board, prot, side, skill)
	if len(targets) == 0 {
		return skillAction{}, false
	}
	best := skillAction{skill: skill}
	for _, t := range targets {
		if s := score(t); best.target == nil || s > best.score {
			t := t
			best.target = &t
			best.score = s
		}
	}
	return best, true
}

// placementValue rates how much holding a cell matters positionally.
func (e *Engine) placementValue(t game.Coord) int {
	v := 0
	if game.IsEdge(t.Row, t.Col) {
		v += e.w.EdgeBonus
	}
	if adjacentToCorner(t.Row, t.Col) {
		v += e.w.EdgeBonus
	}
	return v
}

// shieldScore prefers own discs under pressure: one unit per adjacent
// opponent disc.
func (e *Engine) shieldScore(b game.Board, side game.Cell, t game.Coord) int {
	opp := game.Opponent(side)
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := t.Row+dr, t.Col+dc
			if game.InBounds(r, c) && b[r][c] == opp {
				n++
			}
		}
	}
	return n * e.w.ShieldPerFoe
}

// barrierAction rates candidate centers by how many captures the opponent
// could currently make into the region, and picks the most exposed one.
func (e *Engine) barrierAction(st session.State, side game.Cell, prot game.Protection) (skillAction, bool) {
	opp := game.Opponent(side)

	// All cells the opponent would flip somewhere on the board right now.
	exposure := map[game.Coord]int{}
	for _, om := range game.LegalMoves(st.Board, opp, prot) {
		for _, f := range game.ComputeFlips(st.Board, opp, om.Row, om.Col, prot) {
			exposure[f]++
		}
	}
	if len(exposure) == 0 {
		return skillAction{}, false
	}

	return e.bestTarget(st, side, prot, game.SkillBarrier, func(t game.Coord) int {
		bar := game.Barrier{Owner: side, Center: t}
		covered := 0
		for cell, n := range exposure {
			if bar.Covers(cell.Row, cell.Col) {
				covered += n
			}
		}
		return covered * e.w.BarrierPerCap
	})
}

// warpScore prefers corners, then edges, then cells holding a pickup-able
// skill tile.
func (e *Engine) warpScore(st session.State, side game.Cell, t game.Coord) int {
	score := e.w.WarpBase
	if game.IsCorner(t.Row, t.Col) {
		score += e.w.CornerBonus
	} else if game.IsEdge(t.Row, t.Col) {
		score += e.w.EdgeBonus
	}
	if _, ok := st.SkillTiles[t]; ok && len(st.Hands[side])-1 < session.HandCapacity {
		score += e.w.WarpTileBonus
	}
	return score
}

func adjacentToCorner(r, c int) bool {
	if game.IsCorner(r, c) {
		return false
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if game.InBounds(r+dr, c+dc) && game.IsCorner(r+dr, c+dc) {
				return true
			}
		}
	}
	return false
}

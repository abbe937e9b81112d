package ai

import (
	"math"
	"math/rand"

	"skill-reversi/internal/config"
	"skill-reversi/internal/game"
	"skill-reversi/internal/session"
)

// Engine is the computer-controlled player. It reads state snapshots and
// produces the same intents a human would issue; it never mutates state.
// Difficulties differ only in selection policy (randomization, arbitration
// margins, lookahead), never in legality.
type Engine struct {
	diff session.Difficulty
	w    config.Weights
	rng  *rand.Rand
}

var _ session.Decider = (*Engine)(nil)

func New(d session.Difficulty, w config.Weights, seed int64) *Engine {
	return &Engine{diff: d, w: w, rng: rand.New(rand.NewSource(seed))}
}

type scoredMove struct {
	coord game.Coord
	score int
}

type skillAction struct {
	skill  game.SkillType
	target *game.Coord
	score  int
}

// Choose picks one intent for side. Skill-vs-move arbitration runs first;
// if no skill clears the difficulty's bar it falls through to move
// selection, and to a pass when no move exists either.
func (e *Engine) Choose(st session.State, side game.Cell) session.Intent {
	prot := game.Protection{Shields: st.Shields, Barrier: st.Barrier}
	moves := game.LegalMoves(st.Board, side, prot)

	// Mid double-move sequence only placements are possible.
	if st.DoubleLeft > 0 {
		if len(moves) == 0 {
			return session.Intent{Kind: session.IntentPass}
		}
		return session.Intent{Kind: session.IntentPlace, Move: e.selectMove(st, side, prot, moves)}
	}

	var best *scoredMove
	if len(moves) > 0 {
		b := e.bestByHeuristic(st, side, prot, moves)
		best = &b
	}

	if len(st.Hands[side]) > 0 && !st.SkillUsed {
		if act, ok := e.bestSkillAction(st, side, prot, best); ok {
			if e.skillClearsBar(act, best) {
				return session.Intent{Kind: session.IntentSkill, Skill: act.skill, Target: act.target}
			}
		}
	}

	if best == nil {
		return session.Intent{Kind: session.IntentPass}
	}
	return session.Intent{Kind: session.IntentPlace, Move: e.selectMove(st, side, prot, moves)}
}

// skillClearsBar applies the difficulty-dependent arbitration margin.
func (e *Engine) skillClearsBar(act skillAction, best *scoredMove) bool {
	switch e.diff {
	case session.Easy:
		return e.rng.Float64() < e.w.EasySkillProb
	case session.Hard:
		return best == nil || act.score >= best.score-e.w.SkillMargin
	default:
		return best == nil || act.score >= best.score+e.w.SkillTieBonus
	}
}

// selectMove is the per-difficulty move policy over a non-empty candidate
// list: easy mostly random, normal greedy on the heuristic, hard one-ply
// lookahead.
func (e *Engine) selectMove(st session.State, side game.Cell, prot game.Protection, moves []game.Coord) game.Coord {
	switch e.diff {
	case session.Easy:
		if e.rng.Float64() < e.w.EasyRandomMove {
			return moves[e.rng.Intn(len(moves))]
		}
		return e.bestByHeuristic(st, side, prot, moves).coord
	case session.Hard:
		return e.searchMove(st, side, prot, moves)
	default:
		return e.bestByHeuristic(st, side, prot, moves).coord
	}
}

// moveScore is the plain heuristic: flips weighted, plus corner and edge
// bonuses for the placement cell.
func (e *Engine) moveScore(st session.State, side game.Cell, prot game.Protection, m game.Coord) int {
	score := len(game.ComputeFlips(st.Board, side, m.Row, m.Col, prot)) * e.w.FlipWeight
	if game.IsCorner(m.Row, m.Col) {
		score += e.w.CornerBonus
	} else if game.IsEdge(m.Row, m.Col) {
		score += e.w.EdgeBonus
	}
	return score
}

// bestByHeuristic keeps the first best in row-major enumeration order.
func (e *Engine) bestByHeuristic(st session.State, side game.Cell, prot game.Protection, moves []game.Coord) scoredMove {
	best := scoredMove{coord: moves[0], score: e.moveScore(st, side, prot, moves[0])}
	for _, m := range moves[1:] {
		if s := e.moveScore(st, side, prot, m); s > best.score {
			best = scoredMove{coord: m, score: s}
		}
	}
	return best
}

// evaluate scores a whole board for side: disc differential, corner and edge
// ownership, and mobility differential.
func (e *Engine) evaluate(b game.Board, side game.Cell, prot game.Protection) int {
	opp := game.Opponent(side)
	score := 0

	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			switch b[r][c] {
			case side:
				score++
				if game.IsCorner(r, c) {
					score += e.w.EvalCorner
				} else if game.IsEdge(r, c) {
					score += e.w.EvalEdge
				}
			case opp:
				score--
				if game.IsCorner(r, c) {
					score -= e.w.EvalCorner
				} else if game.IsEdge(r, c) {
					score -= e.w.EvalEdge
				}
			}
		}
	}

	myMobility := len(game.LegalMoves(b, side, prot))
	oppMobility := len(game.LegalMoves(b, opp, prot))
	score += (myMobility - oppMobility) * e.w.EvalMobility
	return score
}

// searchMove is the hard-level one-ply adversarial lookahead: each candidate
// is scored by averaging the position after it with the worst position the
// opponent's best reply forces, or by a stall bonus when the opponent is left
// without a reply. First candidate wins ties.
func (e *Engine) searchMove(st session.State, side game.Cell, prot game.Protection, moves []game.Coord) game.Coord {
	opp := game.Opponent(side)
	best := moves[0]
	bestScore := math.MinInt

	for _, mv := range moves {
		nb, _ := game.ApplyMove(st.Board, side, mv.Row, mv.Col, prot)
		immediate := e.evaluate(nb, side, prot)

		var combined int
		replies := game.LegalMoves(nb, opp, prot)
		if len(replies) == 0 {
			combined = immediate + e.w.StallBonus
		} else {
			worst := math.MaxInt
			for _, om := range replies {
				ob, _ := game.ApplyMove(nb, opp, om.Row, om.Col, prot)
				if v := e.evaluate(ob, side, prot); v < worst {
					worst = v
				}
			}
			combined = (immediate + worst) / 2
		}
		if combined > bestScore {
			bestScore = combined
			best = mv
		}
	}
	return best
}

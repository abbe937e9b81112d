package session

import "skill-reversi/internal/game"

type IntentKind string

const (
	IntentPlace IntentKind = "place"
	IntentSkill IntentKind = "skill"
	IntentPass  IntentKind = "pass"
)

// Intent is the one thing the AI produces per turn: the same shape of request
// a human issues through the API.
type Intent struct {
	Kind   IntentKind
	Move   game.Coord
	Skill  game.SkillType
	Target *game.Coord
}

// Decider chooses an intent for side from a state snapshot. It must only
// read the snapshot; the session revalidates whatever it returns.
type Decider interface {
	Choose(st State, side game.Cell) Intent
}

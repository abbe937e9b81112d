package game

// BoardSize is fixed; the rules below assume an 8x8 grid throughout.
const BoardSize = 8

type Cell int

const (
	Empty Cell = iota
	Black
	White
)

// Board is a value type so that copying it (assignment, passing by value)
// yields an independent snapshot. Every mutation helper returns a new Board.
type Board [BoardSize][BoardSize]Cell

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Move struct {
	Player Cell `json:"player"`
	Row    int  `json:"row"`
	Col    int  `json:"col"`
}

// SkillType identifies one of the six collectible skills. The catalog is
// closed; new kinds are not registered at runtime.
type SkillType string

const (
	SkillConvert SkillType = "convert"
	SkillWarp    SkillType = "warp"
	SkillDouble  SkillType = "double"
	SkillShield  SkillType = "shield"
	SkillBarrier SkillType = "barrier"
	SkillRemove  SkillType = "remove"
)

// AllSkills lists the catalog in its canonical order.
var AllSkills = []SkillType{
	SkillConvert,
	SkillWarp,
	SkillDouble,
	SkillShield,
	SkillBarrier,
	SkillRemove,
}

func ValidSkillType(s SkillType) bool {
	for _, k := range AllSkills {
		if k == s {
			return true
		}
	}
	return false
}

// NeedsTarget reports whether activating the skill requires a board coordinate.
func (s SkillType) NeedsTarget() bool {
	return s != SkillDouble
}

func Opponent(p Cell) Cell {
	if p == Black {
		return White
	}
	return Black
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

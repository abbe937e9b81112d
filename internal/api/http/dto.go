package http

// CreateSessionRequest represents the payload for /create-session.
type CreateSessionRequest struct {
	Mode       string `json:"mode"`       // "pvp" or "vs-ai" (default)
	Difficulty string `json:"difficulty"` // "easy", "normal" (default), "hard"
	AISide     string `json:"aiSide"`     // "black" or "white" (default)
	PlayerName string `json:"playerName"`
	Seed       int64  `json:"seed"` // optional, for reproducible tile layouts
}

// MoveRequest represents a disc placement.
type MoveRequest struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

// SkillRequest represents a skill activation. Row/Col are ignored for the
// targetless double skill.
type SkillRequest struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
	Skill    string `json:"skill"`
	Row      *int   `json:"row"`
	Col      *int   `json:"col"`
}

// PassRequest represents a pass intent.
type PassRequest struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
}

// ResetRequest restarts the game in an existing session.
type ResetRequest struct {
	Code string `json:"code"`
}

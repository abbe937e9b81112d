package session

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"skill-reversi/internal/game"
)

type Mode string

const (
	ModePvP  Mode = "pvp"
	ModeVsAI Mode = "vs-ai"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

var (
	ErrNotFound     = errors.New("session not found")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrGameOver     = errors.New("game is over")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrIllegalMove  = errors.New("illegal move")
	ErrSkillNotHeld = errors.New("skill not in hand")
	ErrIllegalSkill = errors.New("illegal skill activation")
	ErrCannotPass   = errors.New("legal moves remain")
	ErrUnknownSkill = errors.New("unknown skill")
)

type Player struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Side  game.Cell `json:"side"`
	IsBot bool      `json:"isBot"`
}

// Session owns one live game. Every intent is an atomic read-compute-replace
// under the mutex; readers always get a complete snapshot value.
type Session struct {
	mu sync.Mutex

	ID         string
	Code       string
	Mode       Mode
	Difficulty Difficulty
	Players    []Player
	CreatedAt  time.Time

	state        State
	rng          *rand.Rand
	tilesPerKind int
	decider      Decider

	// AI scheduling: at most one pending timer per session.
	aiTimer   *time.Timer
	aiPending bool
}

// NewSession builds a standalone session from the accepted configuration.
// Seed 0 means "not reproducible"; any other value fixes the tile layout and
// the AI's randomization. build is invoked for vs-AI sessions to construct
// the computer player's decision engine.
func NewSession(p CreateParams, tilesPerKind int, build func(Difficulty, int64) Decider) *Session {
	if p.Mode != ModePvP {
		p.Mode = ModeVsAI
	}
	switch p.Difficulty {
	case Easy, Normal, Hard:
	default:
		p.Difficulty = Normal
	}
	if p.AISide != game.Black {
		p.AISide = game.White
	}
	if p.PlayerName == "" {
		p.PlayerName = "Player"
	}
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Session{
		ID:           uuid.NewString(),
		Code:         randCode(rng, 6),
		Mode:         p.Mode,
		Difficulty:   p.Difficulty,
		CreatedAt:    time.Now(),
		rng:          rng,
		tilesPerKind: tilesPerKind,
	}
	s.state = newState(rng, tilesPerKind)

	humanSide := game.Black
	if p.Mode == ModeVsAI && p.AISide == game.Black {
		humanSide = game.White
	}
	s.Players = append(s.Players, Player{
		ID:   uuid.NewString(),
		Name: p.PlayerName,
		Side: humanSide,
	})
	switch p.Mode {
	case ModeVsAI:
		s.Players = append(s.Players, Player{
			ID:    "bot-" + uuid.NewString(),
			Name:  "CPU",
			Side:  p.AISide,
			IsBot: true,
		})
		if build != nil {
			s.decider = build(p.Difficulty, seed)
		}
	case ModePvP:
		s.Players = append(s.Players, Player{
			ID:   uuid.NewString(),
			Name: "Player 2",
			Side: game.Opponent(humanSide),
		})
	}
	return s
}

type TileView struct {
	game.Coord
	Skill game.SkillType `json:"skill"`
}

// Snapshot is the read-only view handed to renderers and the HTTP/WS layer.
type Snapshot struct {
	Code       string                      `json:"code"`
	Mode       Mode                        `json:"mode"`
	Difficulty Difficulty                  `json:"difficulty,omitempty"`
	Players    []Player                    `json:"players"`
	Board      game.Board                  `json:"board"`
	Current    game.Cell                   `json:"current"`
	TurnIdx    int                         `json:"turnIdx"`
	BlackScore int                         `json:"blackScore"`
	WhiteScore int                         `json:"whiteScore"`
	Hands      map[string][]game.SkillType `json:"hands"`
	SkillTiles []TileView                  `json:"skillTiles"`
	Shields    []game.Coord                `json:"shields"`
	Barrier    *game.Barrier               `json:"barrier,omitempty"`
	SkillUsed  bool                        `json:"skillUsed"`
	DoubleLeft int                         `json:"doubleLeft"`
	LastMove   *MoveDescriptor             `json:"lastMove,omitempty"`
	GameOver   bool                        `json:"gameOver"`
	Winner     *game.Cell                  `json:"winner,omitempty"`
	Draw       bool                        `json:"draw"`
	Log        []string                    `json:"log"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	st := s.state
	black, white := st.Board.CountDiscs()

	snap := Snapshot{
		Code:       s.Code,
		Mode:       s.Mode,
		Difficulty: s.Difficulty,
		Players:    append([]Player(nil), s.Players...),
		Board:      st.Board,
		Current:    st.Current,
		TurnIdx:    st.TurnIdx,
		BlackScore: black,
		WhiteScore: white,
		Hands: map[string][]game.SkillType{
			game.Black.String(): append([]game.SkillType(nil), st.Hands[game.Black]...),
			game.White.String(): append([]game.SkillType(nil), st.Hands[game.White]...),
		},
		Barrier:    st.Barrier,
		SkillUsed:  st.SkillUsed,
		DoubleLeft: st.DoubleLeft,
		LastMove:   st.LastMove,
		GameOver:   st.GameOver,
		Log:        append([]string(nil), st.Log...),
	}

	// Row-major ordering keeps the payload deterministic.
	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			coord := game.Coord{Row: r, Col: c}
			if kind, ok := st.SkillTiles[coord]; ok {
				snap.SkillTiles = append(snap.SkillTiles, TileView{Coord: coord, Skill: kind})
			}
			if st.Shields[r][c] {
				snap.Shields = append(snap.Shields, coord)
			}
		}
	}

	if st.GameOver {
		if st.Winner == game.Empty {
			snap.Draw = true
		} else {
			w := st.Winner
			snap.Winner = &w
		}
	}
	return snap
}

// State returns a copy of the current state. The containers it shares with
// the live state are never mutated in place (transitions clone first), so the
// copy is safe for concurrent read-only use such as AI decisions.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) playerByID(id string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// BotPlayer returns the computer-controlled player, if any.
func (s *Session) BotPlayer() *Player {
	for i := range s.Players {
		if s.Players[i].IsBot {
			return &s.Players[i]
		}
	}
	return nil
}

func (s *Session) guard(playerID string) (*Player, error) {
	p := s.playerByID(playerID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	if s.state.GameOver {
		return nil, ErrGameOver
	}
	if p.Side != s.state.Current {
		return nil, ErrNotYourTurn
	}
	return p, nil
}

// PlaceDisc applies a disc placement intent for the identified player.
func (s *Session) PlaceDisc(playerID string, r, c int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.guard(playerID); err != nil {
		return s.snapshotLocked(), err
	}
	ns, ok := s.state.PlaceDisc(r, c)
	if !ok {
		return s.snapshotLocked(), ErrIllegalMove
	}
	s.state = ns
	return s.snapshotLocked(), nil
}

// ActivateSkill applies a skill activation intent for the identified player.
func (s *Session) ActivateSkill(playerID string, skill game.SkillType, target *game.Coord) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !game.ValidSkillType(skill) {
		return s.snapshotLocked(), ErrUnknownSkill
	}
	if _, err := s.guard(playerID); err != nil {
		return s.snapshotLocked(), err
	}
	if !holds(s.state.Hands[s.state.Current], skill) {
		return s.snapshotLocked(), ErrSkillNotHeld
	}
	ns, ok := s.state.ActivateSkill(skill, target)
	if !ok {
		return s.snapshotLocked(), ErrIllegalSkill
	}
	s.state = ns
	return s.snapshotLocked(), nil
}

// Pass applies a pass intent for the identified player.
func (s *Session) Pass(playerID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.guard(playerID); err != nil {
		return s.snapshotLocked(), err
	}
	ns, ok := s.state.Pass()
	if !ok {
		return s.snapshotLocked(), ErrCannotPass
	}
	s.state = ns
	return s.snapshotLocked(), nil
}

// Reset cancels any pending AI timer and rebuilds a fresh game with a newly
// randomized tile layout from the session's random source.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAILocked()
	s.state = newState(s.rng, s.tilesPerKind)
	return s.snapshotLocked()
}

func (s *Session) cancelAILocked() {
	if s.aiTimer != nil {
		s.aiTimer.Stop()
		s.aiTimer = nil
	}
	s.aiPending = false
}

// LegalMoves lists the current player's legal placements.
func (s *Session) LegalMoves() []game.Coord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LegalMoves()
}

// SkillTargets lists the current player's legal targets for a held skill.
func (s *Session) SkillTargets(skill game.SkillType) []game.Coord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SkillTargets(skill)
}

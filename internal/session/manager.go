package session

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"skill-reversi/internal/config"
	"skill-reversi/internal/game"
)

type Store interface {
	Get(code string) (*Session, bool)
	Save(s *Session)
}

type Broadcaster interface {
	Broadcast(code string, action string, data interface{})
}

// DeciderFactory builds a per-session AI. Injected so this package does not
// depend on the engine implementation.
type DeciderFactory func(d Difficulty, w config.Weights, seed int64) Decider

// Manager orchestrates sessions: creation, intent application, persistence,
// broadcasting, and scheduling of the AI's turns.
type Manager struct {
	store      Store
	cfg        config.Config
	hub        Broadcaster
	newDecider DeciderFactory
	log        zerolog.Logger
}

func NewManager(store Store, cfg config.Config, hub Broadcaster, f DeciderFactory, log zerolog.Logger) *Manager {
	return &Manager{store: store, cfg: cfg, hub: hub, newDecider: f, log: log}
}

// CreateParams is the accepted session configuration: opponent mode, which
// side the AI controls, difficulty, and an optional seed for deterministic
// tile layouts.
type CreateParams struct {
	Mode       Mode
	Difficulty Difficulty
	AISide     game.Cell
	PlayerName string
	Seed       int64
}

func (m *Manager) CreateSession(p CreateParams) *Session {
	s := NewSession(p, m.cfg.TilesPerKind, func(d Difficulty, seed int64) Decider {
		return m.newDecider(d, m.cfg.Weights, seed)
	})

	m.store.Save(s)
	m.log.Info().
		Str("code", s.Code).
		Str("mode", string(s.Mode)).
		Str("difficulty", string(s.Difficulty)).
		Msg("session created")

	m.maybeScheduleAI(s)
	return s
}

func (m *Manager) Get(code string) (*Session, bool) {
	return m.store.Get(code)
}

// PlaceDisc applies a human placement and, on success, wakes the AI if it is
// now its turn.
func (m *Manager) PlaceDisc(code, playerID string, r, c int) (Snapshot, error) {
	s, ok := m.store.Get(code)
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	snap, err := s.PlaceDisc(playerID, r, c)
	if err != nil {
		return snap, err
	}
	m.finishIntent(s, snap, "move")
	return snap, nil
}

// ActivateSkill applies a human skill activation.
func (m *Manager) ActivateSkill(code, playerID string, skill game.SkillType, target *game.Coord) (Snapshot, error) {
	s, ok := m.store.Get(code)
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	snap, err := s.ActivateSkill(playerID, skill, target)
	if err != nil {
		return snap, err
	}
	m.finishIntent(s, snap, "skill")
	return snap, nil
}

// Pass applies a human pass.
func (m *Manager) Pass(code, playerID string) (Snapshot, error) {
	s, ok := m.store.Get(code)
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	snap, err := s.Pass(playerID)
	if err != nil {
		return snap, err
	}
	m.finishIntent(s, snap, "pass")
	return snap, nil
}

// Reset restarts the session's game.
func (m *Manager) Reset(code string) (Snapshot, error) {
	s, ok := m.store.Get(code)
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	snap := s.Reset()
	m.store.Save(s)
	m.hub.Broadcast(code, "reset", snap)
	m.maybeScheduleAI(s)
	return snap, nil
}

func (m *Manager) finishIntent(s *Session, snap Snapshot, action string) {
	m.store.Save(s)
	m.hub.Broadcast(s.Code, action, snap)
	if snap.GameOver {
		m.hub.Broadcast(s.Code, "game_over", snap)
		return
	}
	m.maybeScheduleAI(s)
}

// maybeScheduleAI arms the thinking-delay timer when it is the AI's turn.
// At most one timer may be pending per session; a stale decision can never
// be applied because the timer is cancelled on reset and the session
// revalidates every intent.
func (m *Manager) maybeScheduleAI(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Mode != ModeVsAI || s.state.GameOver || s.aiPending {
		return
	}
	bot := s.BotPlayer()
	if bot == nil || s.state.Current != bot.Side {
		return
	}
	s.aiPending = true
	delay := time.Duration(m.cfg.AIDelayMs) * time.Millisecond
	s.aiTimer = time.AfterFunc(delay, func() { m.runAI(s) })
}

func (m *Manager) runAI(s *Session) {
	s.mu.Lock()
	s.aiPending = false
	s.aiTimer = nil
	bot := s.BotPlayer()
	if bot == nil || s.state.GameOver || s.state.Current != bot.Side || s.decider == nil {
		s.mu.Unlock()
		return
	}
	st := s.state
	side := bot.Side
	botID := bot.ID
	decider := s.decider
	s.mu.Unlock()

	intent := decider.Choose(st, side)

	var (
		snap   Snapshot
		err    error
		action string
	)
	switch intent.Kind {
	case IntentPlace:
		snap, err = s.PlaceDisc(botID, intent.Move.Row, intent.Move.Col)
		action = "move"
	case IntentSkill:
		snap, err = s.ActivateSkill(botID, intent.Skill, intent.Target)
		action = "skill"
	default:
		snap, err = s.Pass(botID)
		action = "pass"
	}
	if err != nil {
		m.log.Warn().
			Err(err).
			Str("code", s.Code).
			Str("intent", string(intent.Kind)).
			Msg("ai intent rejected")
		return
	}
	m.log.Debug().
		Str("code", s.Code).
		Str("intent", string(intent.Kind)).
		Int("turn", snap.TurnIdx).
		Msg("ai acted")
	m.finishIntent(s, snap, action)
}

const codeLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeLetters[rng.Intn(len(codeLetters))]
	}
	return string(b)
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skill-reversi/internal/game"
	"skill-reversi/internal/session"
)

// @Summary Create a new session
// @Description Start a game with the given opponent mode, AI side and difficulty
// @Tags Session
// @Accept json
// @Produce json
// @Param request body http.CreateSessionRequest true "Session config"
// @Success 200 {object} map[string]interface{}
// @Router /create-session [post]
func CreateSessionHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSessionRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		aiSide := game.White
		if req.AISide == game.Black.String() {
			aiSide = game.Black
		}
		s := m.CreateSession(session.CreateParams{
			Mode:       session.Mode(req.Mode),
			Difficulty: session.Difficulty(req.Difficulty),
			AISide:     aiSide,
			PlayerName: req.PlayerName,
			Seed:       req.Seed,
		})
		c.JSON(http.StatusOK, gin.H{"code": s.Code, "session": s.Snapshot()})
	}
}

// @Summary Current session state
// @Description Full snapshot for rendering: board, scores, hands, overlays, tiles, log
// @Tags Session
// @Produce json
// @Param code query string true "Session code"
// @Success 200 {object} map[string]interface{}
// @Router /session/state [get]
func StateHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := m.Get(c.Query("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": s.Snapshot()})
	}
}

// @Summary Place a disc
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.MoveRequest true "Move"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil || req.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		snap, err := m.PlaceDisc(req.Code, req.PlayerID, req.Row, req.Col)
		if err != nil {
			rejectIntent(c, err, snap)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": snap})
	}
}

// @Summary Activate a skill
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.SkillRequest true "Skill activation"
// @Success 200 {object} map[string]interface{}
// @Router /skill [post]
func SkillHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SkillRequest
		if err := c.BindJSON(&req); err != nil || req.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		var target *game.Coord
		if req.Row != nil && req.Col != nil {
			target = &game.Coord{Row: *req.Row, Col: *req.Col}
		}
		snap, err := m.ActivateSkill(req.Code, req.PlayerID, game.SkillType(req.Skill), target)
		if err != nil {
			rejectIntent(c, err, snap)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": snap})
	}
}

// @Summary Pass the turn
// @Description Accepted only when the player truly has no legal placement
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.PassRequest true "Pass"
// @Success 200 {object} map[string]interface{}
// @Router /pass [post]
func PassHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PassRequest
		if err := c.BindJSON(&req); err != nil || req.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		snap, err := m.Pass(req.Code, req.PlayerID)
		if err != nil {
			rejectIntent(c, err, snap)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": snap})
	}
}

// @Summary Restart the game
// @Description Fresh board, reshuffled skill tiles, empty hands and overlays
// @Tags Session
// @Accept json
// @Produce json
// @Param request body http.ResetRequest true "Reset"
// @Success 200 {object} map[string]interface{}
// @Router /reset [post]
func ResetHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetRequest
		if err := c.BindJSON(&req); err != nil || req.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		snap, err := m.Reset(req.Code)
		if err != nil {
			rejectIntent(c, err, snap)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": snap})
	}
}

// @Summary Legal placements for the current player
// @Tags Game
// @Produce json
// @Param code query string true "Session code"
// @Success 200 {object} map[string]interface{}
// @Router /legal-moves [get]
func LegalMovesHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := m.Get(c.Query("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"moves": s.LegalMoves()})
	}
}

// @Summary Legal targets for a held skill
// @Description Lets the rendering layer highlight eligible cells without duplicating rule logic
// @Tags Game
// @Produce json
// @Param code query string true "Session code"
// @Param skill query string true "Skill type"
// @Success 200 {object} map[string]interface{}
// @Router /skill-targets [get]
func SkillTargetsHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := m.Get(c.Query("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		skill := game.SkillType(c.Query("skill"))
		if !game.ValidSkillType(skill) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown skill"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"targets": s.SkillTargets(skill)})
	}
}

// rejectIntent maps session errors to HTTP statuses. Rejections leave the
// state untouched, so the current snapshot rides along for the client.
func rejectIntent(c *gin.Context, err error, snap session.Snapshot) {
	status := http.StatusConflict
	switch {
	case errors.Is(err, session.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrUnknownPlayer), errors.Is(err, session.ErrUnknownSkill):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error(), "session": snap})
}

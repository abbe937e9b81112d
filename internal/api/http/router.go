package http

import (
	"github.com/gin-gonic/gin"

	"skill-reversi/internal/api/ws"
	"skill-reversi/internal/session"
)

func SetupRouter(m *session.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates and the move-effect stream
	r.GET("/ws", hub.HandleWS)

	// --- SESSION ENDPOINTS ---
	r.POST("/create-session", CreateSessionHandler(m))
	r.GET("/session/state", StateHandler(m))
	r.POST("/reset", ResetHandler(m))

	// --- GAME ENDPOINTS ---
	r.POST("/move", MoveHandler(m))
	r.POST("/skill", SkillHandler(m))
	r.POST("/pass", PassHandler(m))
	r.GET("/legal-moves", LegalMovesHandler(m))
	r.GET("/skill-targets", SkillTargetsHandler(m))

	return r
}

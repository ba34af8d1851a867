package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sweaters/internal/models"
)

// Endpoints da sessão de cartas
func (h *Handlers) registerGameEndpoints(r *gin.Engine) {
	r.GET("/start-game", h.startGame)
	r.POST("/reset-game", h.resetGame)
	r.GET("/pull-card", h.pullCard)

	games := r.Group("/games")
	{
		games.GET("", h.getAllGames)
		games.GET("/:gameid", h.getGame)
		games.DELETE("/:gameid", h.deleteGame)
		games.GET("/:gameid/events", h.gameEvents)
	}
}

func sessionData(result models.SessionResult) map[string]any {
	return map[string]any{
		"message": result.Message,
		"game_id": result.GameID,
		"user_id": result.OwnerID,
	}
}

// userid opcional, sem ele a partida é do convidado
func (h *Handlers) startGame(c *gin.Context) {
	var req models.StartGameRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalid(c, err)
		return
	}

	result, err := h.useCases.StartGame(c.Request.Context(), req.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, models.APIResponse{Message: result.Message, Data: sessionData(result)})
}

// sem gameid (ou com um inexistente) começa uma partida nova
func (h *Handlers) resetGame(c *gin.Context) {
	var req models.ResetGameRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalid(c, err)
		return
	}

	result, err := h.useCases.ResetGame(c.Request.Context(), req.GameID, req.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, models.APIResponse{Message: result.Message, Data: sessionData(result)})
}

func (h *Handlers) pullCard(c *gin.Context) {
	var req models.PullCardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalid(c, err)
		return
	}

	ctx := c.Request.Context()
	result, err := h.useCases.PullCard(ctx, req.UserID, req.GameID)
	if err != nil {
		fail(c, err)
		return
	}

	resp := models.APIResponse{
		Message: result.Message,
		Data: map[string]any{
			"message": result.Message,
			"game_id": result.GameID,
			"user_id": result.OwnerID,
			"round":   result.Round,
			"cards":   result.Cards,
		},
	}
	// estado depois da compra e o usuário, quando não é convidado
	if game, err := h.useCases.GetGame(ctx, result.GameID); err == nil {
		resp.Game = &game
	}
	if req.UserID != models.GuestID {
		if user, err := h.useCases.GetUser(ctx, req.UserID); err == nil {
			resp.User = &user
		}
	}
	respond(c, http.StatusOK, resp)
}

func (h *Handlers) getAllGames(c *gin.Context) {
	games, err := h.useCases.GetAllGames(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, models.APIResponse{
		Message: "Games retrieved successfully",
		Data:    map[string]any{"games": games},
	})
}

func (h *Handlers) getGame(c *gin.Context) {
	game, err := h.useCases.GetGame(c.Request.Context(), c.Param("gameid"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, models.APIResponse{Message: "Game retrieved successfully", Game: &game})
}

func (h *Handlers) deleteGame(c *gin.Context) {
	gameID := c.Param("gameid")
	if err := h.useCases.DeleteGame(c.Request.Context(), gameID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, models.APIResponse{
		Message: "Game deleted successfully",
		Data:    map[string]any{"game_id": gameID},
	})
}

// Acompanha os eventos da partida por websocket
func (h *Handlers) gameEvents(c *gin.Context) {
	gameID := c.Param("gameid")
	if _, err := h.useCases.GetGame(c.Request.Context(), gameID); err != nil {
		fail(c, err)
		return
	}
	if h.events == nil {
		fail(c, models.NewError(models.KindNotFound, "event stream disabled", nil))
		return
	}
	h.events.ServeWS(c.Writer, c.Request, gameID)
}

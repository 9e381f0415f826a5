package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ArowuTest/teamdesk-backend/internal/models"
	"github.com/ArowuTest/teamdesk-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// LadderHandler handles ladder game HTTP requests
type LadderHandler struct {
	ladderService services.LadderService
}

// NewLadderHandler creates a new LadderHandler
func NewLadderHandler(ladderService services.LadderService) *LadderHandler {
	return &LadderHandler{
		ladderService: ladderService,
	}
}

// respondError maps service errors onto status codes
func respondError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ladder game not found"})
	case errors.Is(err, services.ErrResultNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ladder result not found"})
	case errors.Is(err, services.ErrInvalidGameState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action + ": " + err.Error()})
	}
}

// intParam parses a path parameter, answering 400 when it is not an integer
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": must be an integer"})
		return 0, false
	}
	return v, true
}

// CreateGame handles POST /ladder/games
func (h *LadderHandler) CreateGame(c *gin.Context) {
	var request models.CreateLadderGameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	game, err := h.ladderService.CreateGame(c.Request.Context(), &request, c.GetString("userID"))
	if err != nil {
		respondError(c, "create ladder game", err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

// ListGames handles GET /ladder/games
func (h *LadderHandler) ListGames(c *gin.Context) {
	games, err := h.ladderService.ListGames(c.Request.Context())
	if err != nil {
		respondError(c, "list ladder games", err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGame handles GET /ladder/games/:id
func (h *LadderHandler) GetGame(c *gin.Context) {
	game, err := h.ladderService.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "get ladder game", err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// DeleteGame handles DELETE /ladder/games/:id
func (h *LadderHandler) DeleteGame(c *gin.Context) {
	if err := h.ladderService.DeleteGame(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "delete ladder game", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ladder game deleted"})
}

// UpdateOutcomeSlotRequest is the body of PUT /ladder/games/:id/slots/:index
type UpdateOutcomeSlotRequest struct {
	Label string `json:"label" binding:"required"`
}

// UpdateOutcomeSlot handles PUT /ladder/games/:id/slots/:index
func (h *LadderHandler) UpdateOutcomeSlot(c *gin.Context) {
	index, ok := intParam(c, "index")
	if !ok {
		return
	}
	var request UpdateOutcomeSlotRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	game, err := h.ladderService.UpdateOutcomeSlot(c.Request.Context(), c.Param("id"), index, request.Label)
	if err != nil {
		respondError(c, "update outcome slot", err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// StartGame handles POST /ladder/games/:id/start
func (h *LadderHandler) StartGame(c *gin.Context) {
	game, err := h.ladderService.StartGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "start ladder game", err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// ResetGame handles POST /ladder/games/:id/reset
func (h *LadderHandler) ResetGame(c *gin.Context) {
	game, err := h.ladderService.ResetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "reset ladder game", err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// GetBoard handles GET /ladder/games/:id/board
func (h *LadderHandler) GetBoard(c *gin.Context) {
	board, err := h.ladderService.GetBoard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "get ladder board", err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// RevealParticipant handles POST /ladder/games/:id/reveal/:position
func (h *LadderHandler) RevealParticipant(c *gin.Context) {
	position, ok := intParam(c, "position")
	if !ok {
		return
	}
	result, err := h.ladderService.RevealParticipant(c.Request.Context(), c.Param("id"), position)
	if err != nil {
		respondError(c, "reveal participant", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RevealAll handles POST /ladder/games/:id/reveal-all
func (h *LadderHandler) RevealAll(c *gin.Context) {
	result, err := h.ladderService.RevealAll(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "reveal participants", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetGameResults handles GET /ladder/games/:id/results
func (h *LadderHandler) GetGameResults(c *gin.Context) {
	results, err := h.ladderService.GetGameResults(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "get game results", err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// ListResults handles GET /ladder/results?limit=N
func (h *LadderHandler) ListResults(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit: must be an integer"})
		return
	}
	results, err := h.ladderService.ListResults(c.Request.Context(), limit)
	if err != nil {
		respondError(c, "list ladder results", err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetResult handles GET /ladder/results/:id
func (h *LadderHandler) GetResult(c *gin.Context) {
	result, err := h.ladderService.GetResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "get ladder result", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

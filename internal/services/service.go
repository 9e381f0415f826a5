package services

import (
	"context"

	"github.com/ArowuTest/teamdesk-backend/internal/models"
)

// LadderService defines the interface for ladder game operations
type LadderService interface {
	// CreateGame sets up a game from the page's roster and outcome slot labels
	CreateGame(ctx context.Context, req *models.CreateLadderGameRequest, createdBy string) (*models.LadderGame, error)

	// GetGame retrieves a live game
	GetGame(ctx context.Context, id string) (*models.LadderGame, error)

	// ListGames retrieves all live games, newest first
	ListGames(ctx context.Context) ([]*models.LadderGame, error)

	// DeleteGame discards a live game and its board
	DeleteGame(ctx context.Context, id string) error

	// UpdateOutcomeSlot relabels one slot before the game starts
	UpdateOutcomeSlot(ctx context.Context, id string, index int, label string) (*models.LadderGame, error)

	// StartGame generates the board
	StartGame(ctx context.Context, id string) (*models.LadderGame, error)

	// ResetGame discards the board and every revealed result
	ResetGame(ctx context.Context, id string) (*models.LadderGame, error)

	// GetBoard returns the board of a started game in canvas coordinates
	GetBoard(ctx context.Context, id string) (*BoardView, error)

	// RevealParticipant traces one participant's path
	RevealParticipant(ctx context.Context, id string, position int) (*RevealResult, error)

	// RevealAll traces every participant's path
	RevealAll(ctx context.Context, id string) (*RevealResult, error)

	// ListResults retrieves completed game history, newest first
	ListResults(ctx context.Context, limit int) ([]*models.LadderResult, error)

	// GetResult retrieves one history record by its hex ID
	GetResult(ctx context.Context, id string) (*models.LadderResult, error)

	// GetGameResults retrieves every recorded round of one game
	GetGameResults(ctx context.Context, gameID string) ([]*models.LadderResult, error)
}

package repositories

import (
	"context"
	"errors"

	"github.com/ArowuTest/teamdesk-backend/internal/ladder"
	"github.com/ArowuTest/teamdesk-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrGameNotFound is returned by a LadderGameStore for unknown game IDs
var ErrGameNotFound = errors.New("ladder game not found")

// LadderSession is a live game together with its board. Board is nil until the
// game is started and again after a reset.
type LadderSession struct {
	Game  *models.LadderGame
	Board *ladder.Board
}

// LadderGameStore holds live game sessions. Boards are transient and never leave it.
type LadderGameStore interface {
	Create(ctx context.Context, session *LadderSession) error
	Get(ctx context.Context, id string) (*LadderSession, error)
	// Update runs fn against the stored session while holding the store's lock for
	// that game. Changes made by fn are kept only when it returns nil.
	Update(ctx context.Context, id string, fn func(session *LadderSession) error) (*LadderSession, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.LadderGame, error)
}

// LadderResultRepository defines the interface for completed game history
type LadderResultRepository interface {
	Create(ctx context.Context, result *models.LadderResult) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.LadderResult, error)
	FindByGameID(ctx context.Context, gameID string) ([]*models.LadderResult, error)
	FindRecent(ctx context.Context, limit int) ([]*models.LadderResult, error)
}

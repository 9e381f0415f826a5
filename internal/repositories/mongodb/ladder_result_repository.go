package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/ArowuTest/teamdesk-backend/internal/models"
	"github.com/ArowuTest/teamdesk-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure LadderResultRepository implements the interface
var _ repositories.LadderResultRepository = (*LadderResultRepository)(nil)

// LadderResultRepository implements the repositories.LadderResultRepository interface
type LadderResultRepository struct {
	collection *mongo.Collection
}

// NewLadderResultRepository creates a new LadderResultRepository
func NewLadderResultRepository(db *mongo.Database) *LadderResultRepository {
	return &LadderResultRepository{
		collection: db.Collection("ladder_results"),
	}
}

// EnsureIndexes creates the unique game/round index and the history sort index
func (r *LadderResultRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "gameId", Value: 1}, {Key: "round", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "completedAt", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create ladder result indexes: %w", err)
	}
	return nil
}

// Create stores a completed game result
func (r *LadderResultRepository) Create(ctx context.Context, result *models.LadderResult) error {
	result.CreatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, result)
	if err != nil {
		return fmt.Errorf("failed to insert ladder result: %w", err)
	}
	result.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a result by ID
func (r *LadderResultRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.LadderResult, error) {
	var result models.LadderResult
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		return nil, err // mongo.ErrNoDocuments if not found
	}
	return &result, nil
}

// FindByGameID finds every round recorded for a game, latest round first
func (r *LadderResultRepository) FindByGameID(ctx context.Context, gameID string) ([]*models.LadderResult, error) {
	opts := options.Find().SetSort(bson.M{"round": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"gameId": gameID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to execute find query: %w", err)
	}
	defer cursor.Close(ctx)

	var results []*models.LadderResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode ladder results: %w", err)
	}
	if results == nil {
		results = []*models.LadderResult{}
	}
	return results, nil
}

// FindRecent returns the latest results, newest first
func (r *LadderResultRepository) FindRecent(ctx context.Context, limit int) ([]*models.LadderResult, error) {
	opts := options.Find().SetSort(bson.M{"completedAt": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to execute find query: %w", err)
	}
	defer cursor.Close(ctx)

	var results []*models.LadderResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode ladder results: %w", err)
	}
	if results == nil {
		results = []*models.LadderResult{}
	}
	return results, nil
}

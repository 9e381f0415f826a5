package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LadderResult is the history record stored once every participant of a game
// has been revealed
type LadderResult struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GameID       string             `bson:"gameId" json:"gameId"`
	Round        int                `bson:"round" json:"round"`
	Title        string             `bson:"title" json:"title"`
	Participants []Participant      `bson:"participants" json:"participants"`
	OutcomeSlots []string           `bson:"outcomeSlots" json:"outcomeSlots"`
	Assignments  []Assignment       `bson:"assignments" json:"assignments"`
	RungCount    int                `bson:"rungCount" json:"rungCount"`
	Bijective    bool               `bson:"bijective" json:"bijective"` // every participant landed on a distinct slot
	CreatedBy    string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CompletedAt  time.Time          `bson:"completedAt" json:"completedAt"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

package models

import (
	"time"
)

// LadderGameStatus represents the lifecycle state of a ladder game
type LadderGameStatus string

const (
	LadderGameStatusSetup     LadderGameStatus = "SETUP"
	LadderGameStatusStarted   LadderGameStatus = "STARTED"
	LadderGameStatusCompleted LadderGameStatus = "COMPLETED"
)

// Participant is one player of a ladder game. Position is assigned by selection
// order and decides which vertical line the participant starts on.
type Participant struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Position int    `bson:"position" json:"position"`
}

// Assignment records where a revealed participant landed
type Assignment struct {
	ParticipantID   string `bson:"participantId" json:"participantId"`
	ParticipantName string `bson:"participantName" json:"participantName"`
	Position        int    `bson:"position" json:"position"`
	FinalLine       int    `bson:"finalLine" json:"finalLine"`
	Outcome         string `bson:"outcome" json:"outcome"`
}

// LadderGame is a live game session. The board itself lives next to it in the
// game store and is never part of this value.
type LadderGame struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Participants []Participant      `json:"participants"`
	OutcomeSlots []string           `json:"outcomeSlots"`
	Status       LadderGameStatus   `json:"status"`
	Results      map[int]Assignment `json:"results,omitempty"`
	RungCount    int                `json:"rungCount"`
	Round        int                `json:"round"` // incremented on every start
	HistorySaved bool               `json:"historySaved"`
	CreatedBy    string             `json:"createdBy,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	StartedAt    time.Time          `json:"startedAt,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// Clone returns a deep copy so callers never share slices or maps with the store
func (g *LadderGame) Clone() *LadderGame {
	if g == nil {
		return nil
	}
	cp := *g
	cp.Participants = append([]Participant(nil), g.Participants...)
	cp.OutcomeSlots = append([]string(nil), g.OutcomeSlots...)
	if g.Results != nil {
		cp.Results = make(map[int]Assignment, len(g.Results))
		for k, v := range g.Results {
			cp.Results[k] = v
		}
	}
	return &cp
}

// AllRevealed reports whether every participant has a recorded assignment
func (g *LadderGame) AllRevealed() bool {
	return len(g.Participants) > 0 && len(g.Results) == len(g.Participants)
}

// CreateLadderGameRequest carries the roster and slot labels chosen on the page
type CreateLadderGameRequest struct {
	Title        string             `json:"title"`
	Participants []ParticipantInput `json:"participants" binding:"required"`
	OutcomeSlots []string           `json:"outcomeSlots"`
}

// ParticipantInput is the roster entry supplied by the page when creating a game
type ParticipantInput struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ArowuTest/teamdesk-backend/internal/models"
	"github.com/ArowuTest/teamdesk-backend/internal/repositories"
)

// Compile-time check to ensure GameStore implements LadderGameStore
var _ repositories.LadderGameStore = (*GameStore)(nil)

// GameStore keeps live ladder sessions in process memory. Sessions handed out are
// copies; boards are shared because they are never mutated.
type GameStore struct {
	mu       sync.RWMutex
	sessions map[string]*repositories.LadderSession
}

// NewGameStore creates an empty GameStore
func NewGameStore() *GameStore {
	return &GameStore{
		sessions: make(map[string]*repositories.LadderSession),
	}
}

// Create stores a new session
func (s *GameStore) Create(ctx context.Context, session *repositories.LadderSession) error {
	if session == nil || session.Game == nil || session.Game.ID == "" {
		return fmt.Errorf("memory: session without game id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.Game.ID]; ok {
		return fmt.Errorf("memory: game %s already exists", session.Game.ID)
	}
	s.sessions[session.Game.ID] = cloneSession(session)
	return nil
}

// Get returns a copy of the session with the given ID
func (s *GameStore) Get(ctx context.Context, id string) (*repositories.LadderSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("memory: %s: %w", id, repositories.ErrGameNotFound)
	}
	return cloneSession(session), nil
}

// Update applies fn to a working copy and swaps it in when fn succeeds
func (s *GameStore) Update(ctx context.Context, id string, fn func(session *repositories.LadderSession) error) (*repositories.LadderSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("memory: %s: %w", id, repositories.ErrGameNotFound)
	}
	working := cloneSession(current)
	if err := fn(working); err != nil {
		return cloneSession(current), err
	}
	s.sessions[id] = working
	return cloneSession(working), nil
}

// Delete removes a session
func (s *GameStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("memory: %s: %w", id, repositories.ErrGameNotFound)
	}
	delete(s.sessions, id)
	return nil
}

// List returns copies of all live games, newest first
func (s *GameStore) List(ctx context.Context) ([]*models.LadderGame, error) {
	s.mu.RLock()
	games := make([]*models.LadderGame, 0, len(s.sessions))
	for _, session := range s.sessions {
		games = append(games, session.Game.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].CreatedAt.After(games[j].CreatedAt)
	})
	return games, nil
}

func cloneSession(s *repositories.LadderSession) *repositories.LadderSession {
	return &repositories.LadderSession{
		Game:  s.Game.Clone(),
		Board: s.Board,
	}
}

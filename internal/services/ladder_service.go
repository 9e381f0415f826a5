package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ArowuTest/teamdesk-backend/internal/config"
	"github.com/ArowuTest/teamdesk-backend/internal/ladder"
	"github.com/ArowuTest/teamdesk-backend/internal/models"
	"github.com/ArowuTest/teamdesk-backend/internal/repositories"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

var (
	// ErrInvalidInput marks rejected rosters, slot labels, positions and IDs
	ErrInvalidInput = ladder.ErrInvalidInput
	// ErrGameNotFound is returned for unknown live game IDs
	ErrGameNotFound = repositories.ErrGameNotFound
	// ErrInvalidGameState is returned when an operation does not fit the game's status
	ErrInvalidGameState = errors.New("operation not allowed in current game state")
	// ErrResultNotFound is returned for unknown history records
	ErrResultNotFound = errors.New("ladder result not found")
)

const historySaveWarning = "game completed but result history could not be saved"

// BoardView is a started game's board ready for drawing
type BoardView struct {
	GameID      string              `json:"gameId"`
	Lines       int                 `json:"lines"`
	LineX       []float64           `json:"lineX"`
	Rungs       []ladder.Rung       `json:"rungs"`
	RenderRungs []ladder.RenderRung `json:"renderRungs"`
}

// RevealedPath is one participant's traced descent
type RevealedPath struct {
	Assignment models.Assignment    `json:"assignment"`
	Path       ladder.Path          `json:"path"`
	Points     []ladder.RenderPoint `json:"points"`
}

// RevealResult is returned by the reveal operations
type RevealResult struct {
	Game     *models.LadderGame `json:"game"`
	Revealed []RevealedPath     `json:"revealed"`
	Warning  string             `json:"warning,omitempty"`
}

// Compile-time check to ensure LadderServiceImpl implements LadderService
var _ LadderService = (*LadderServiceImpl)(nil)

// LadderServiceImpl handles ladder game business logic
type LadderServiceImpl struct {
	store      repositories.LadderGameStore
	resultRepo repositories.LadderResultRepository
	settings   config.LadderConfig

	rngMu sync.Mutex
	rng   *rand.Rand

	now   func() time.Time
	newID func() string
}

// NewLadderService creates a new LadderServiceImpl. A nil rng is replaced by a
// time-seeded one.
func NewLadderService(
	store repositories.LadderGameStore,
	resultRepo repositories.LadderResultRepository,
	settings config.LadderConfig,
	rng *rand.Rand,
) *LadderServiceImpl {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &LadderServiceImpl{
		store:      store,
		resultRepo: resultRepo,
		settings:   settings,
		rng:        rng,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// --- Game lifecycle ---

// CreateGame validates the roster and slot labels and stores a game in SETUP
func (s *LadderServiceImpl) CreateGame(ctx context.Context, req *models.CreateLadderGameRequest, createdBy string) (*models.LadderGame, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	participants, err := s.buildParticipants(req.Participants)
	if err != nil {
		return nil, err
	}
	slots, err := buildOutcomeSlots(req.OutcomeSlots, len(participants))
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Ladder game"
	}
	now := s.now()
	game := &models.LadderGame{
		ID:           s.newID(),
		Title:        title,
		Participants: participants,
		OutcomeSlots: slots,
		Status:       models.LadderGameStatusSetup,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(ctx, &repositories.LadderSession{Game: game}); err != nil {
		slog.Error("Failed to store ladder game", "error", err, "gameId", game.ID)
		return nil, fmt.Errorf("failed to create ladder game: %w", err)
	}

	slog.Info("Ladder game created", "gameId", game.ID, "participants", len(participants), "createdBy", createdBy)
	return game.Clone(), nil
}

// GetGame retrieves a live game
func (s *LadderServiceImpl) GetGame(ctx context.Context, id string) (*models.LadderGame, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.Game, nil
}

// ListGames retrieves all live games
func (s *LadderServiceImpl) ListGames(ctx context.Context) ([]*models.LadderGame, error) {
	return s.store.List(ctx)
}

// DeleteGame discards a live game
func (s *LadderServiceImpl) DeleteGame(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Ladder game deleted", "gameId", id)
	return nil
}

// UpdateOutcomeSlot relabels one outcome slot while the game is in SETUP
func (s *LadderServiceImpl) UpdateOutcomeSlot(ctx context.Context, id string, index int, label string) (*models.LadderGame, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: outcome label must not be empty", ErrInvalidInput)
	}
	session, err := s.store.Update(ctx, id, func(session *repositories.LadderSession) error {
		game := session.Game
		if game.Status != models.LadderGameStatusSetup {
			return fmt.Errorf("%w: slots can only be edited before the game starts (status %s)", ErrInvalidGameState, game.Status)
		}
		if index < 0 || index >= len(game.OutcomeSlots) {
			return fmt.Errorf("%w: slot index %d out of range [0, %d)", ErrInvalidInput, index, len(game.OutcomeSlots))
		}
		game.OutcomeSlots[index] = label
		game.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session.Game, nil
}

// StartGame generates a board for a game in SETUP
func (s *LadderServiceImpl) StartGame(ctx context.Context, id string) (*models.LadderGame, error) {
	session, err := s.store.Update(ctx, id, func(session *repositories.LadderSession) error {
		game := session.Game
		if game.Status != models.LadderGameStatusSetup {
			return fmt.Errorf("%w: game already started (status %s)", ErrInvalidGameState, game.Status)
		}
		board, err := s.generateBoard(len(game.Participants))
		if err != nil {
			return err
		}
		now := s.now()
		session.Board = &board
		game.Status = models.LadderGameStatusStarted
		game.Round++
		game.RungCount = board.RungCount()
		game.Results = make(map[int]models.Assignment, len(game.Participants))
		game.HistorySaved = false
		game.StartedAt = now
		game.UpdatedAt = now
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrGameNotFound) && !errors.Is(err, ErrInvalidGameState) {
			slog.Error("Failed to start ladder game", "error", err, "gameId", id)
		}
		return nil, err
	}

	slog.Info("Ladder game started", "gameId", id, "round", session.Game.Round, "lines", session.Board.Lines(), "rungs", session.Board.RungCount())
	return session.Game, nil
}

// ResetGame drops the board and results and returns the game to SETUP. Resetting a
// game that is already in SETUP is a no-op.
func (s *LadderServiceImpl) ResetGame(ctx context.Context, id string) (*models.LadderGame, error) {
	session, err := s.store.Update(ctx, id, func(session *repositories.LadderSession) error {
		game := session.Game
		session.Board = nil
		game.Status = models.LadderGameStatusSetup
		game.Results = nil
		game.RungCount = 0
		game.HistorySaved = false
		game.StartedAt = time.Time{}
		game.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("Ladder game reset", "gameId", id)
	return session.Game, nil
}

// GetBoard returns the board in canvas coordinates
func (s *LadderServiceImpl) GetBoard(ctx context.Context, id string) (*BoardView, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Board == nil {
		return nil, fmt.Errorf("%w: game has no board until it is started", ErrInvalidGameState)
	}
	b := *session.Board
	lineX := make([]float64, b.Lines())
	for i := range lineX {
		lineX[i] = ladder.LineX(i, b.Lines())
	}
	return &BoardView{
		GameID:      id,
		Lines:       b.Lines(),
		LineX:       lineX,
		Rungs:       b.Rungs(),
		RenderRungs: ladder.RenderBoard(b),
	}, nil
}

// --- Reveal ---

// RevealParticipant traces the path of the participant at position
func (s *LadderServiceImpl) RevealParticipant(ctx context.Context, id string, position int) (*RevealResult, error) {
	return s.reveal(ctx, id, func(game *models.LadderGame) ([]int, error) {
		if position < 0 || position >= len(game.Participants) {
			return nil, fmt.Errorf("%w: position %d out of range [0, %d)", ErrInvalidInput, position, len(game.Participants))
		}
		return []int{position}, nil
	})
}

// RevealAll traces the path of every participant
func (s *LadderServiceImpl) RevealAll(ctx context.Context, id string) (*RevealResult, error) {
	return s.reveal(ctx, id, func(game *models.LadderGame) ([]int, error) {
		positions := make([]int, len(game.Participants))
		for i := range positions {
			positions[i] = i
		}
		return positions, nil
	})
}

func (s *LadderServiceImpl) reveal(ctx context.Context, id string, pick func(*models.LadderGame) ([]int, error)) (*RevealResult, error) {
	var revealed []RevealedPath
	session, err := s.store.Update(ctx, id, func(session *repositories.LadderSession) error {
		game := session.Game
		if session.Board == nil || game.Status == models.LadderGameStatusSetup {
			return fmt.Errorf("%w: game has not started", ErrInvalidGameState)
		}
		positions, err := pick(game)
		if err != nil {
			return err
		}
		revealed = make([]RevealedPath, 0, len(positions))
		for _, pos := range positions {
			rp, err := traceParticipant(*session.Board, game, pos)
			if err != nil {
				return err
			}
			game.Results[pos] = rp.Assignment
			revealed = append(revealed, rp)
		}
		if game.Status == models.LadderGameStatusStarted && game.AllRevealed() {
			game.Status = models.LadderGameStatusCompleted
			slog.Info("Ladder game completed", "gameId", game.ID, "round", game.Round)
		}
		game.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &RevealResult{Game: session.Game, Revealed: revealed}
	if session.Game.Status == models.LadderGameStatusCompleted && !session.Game.HistorySaved {
		saved, err := s.saveHistory(ctx, session)
		if err != nil {
			slog.Error("Failed to save ladder result history", "error", err, "gameId", id, "round", session.Game.Round)
			result.Warning = historySaveWarning
		} else {
			result.Game = saved
		}
	}
	return result, nil
}

func traceParticipant(board ladder.Board, game *models.LadderGame, position int) (RevealedPath, error) {
	path, err := ladder.TracePath(board, position)
	if err != nil {
		return RevealedPath{}, err
	}
	points, err := ladder.ToRenderCoordinates(path, board.Lines())
	if err != nil {
		return RevealedPath{}, err
	}
	final := path.FinalLine()
	p := game.Participants[position]
	return RevealedPath{
		Assignment: models.Assignment{
			ParticipantID:   p.ID,
			ParticipantName: p.Name,
			Position:        position,
			FinalLine:       final,
			Outcome:         game.OutcomeSlots[final],
		},
		Path:   path,
		Points: points,
	}, nil
}

// saveHistory writes the completed round to the result repository and marks the
// live game as saved. A duplicate key means another request saved it first.
func (s *LadderServiceImpl) saveHistory(ctx context.Context, session *repositories.LadderSession) (*models.LadderGame, error) {
	game := session.Game
	assignments := make([]models.Assignment, len(game.Participants))
	finals := make([]int, len(game.Participants))
	for pos := range game.Participants {
		a := game.Results[pos]
		assignments[pos] = a
		finals[pos] = a.FinalLine
	}
	record := &models.LadderResult{
		GameID:       game.ID,
		Round:        game.Round,
		Title:        game.Title,
		Participants: game.Participants,
		OutcomeSlots: game.OutcomeSlots,
		Assignments:  assignments,
		RungCount:    game.RungCount,
		Bijective:    ladder.IsPermutation(finals),
		CreatedBy:    game.CreatedBy,
		CompletedAt:  s.now(),
	}
	if err := s.resultRepo.Create(ctx, record); err != nil && !mongo.IsDuplicateKeyError(err) {
		return nil, err
	}
	if !record.Bijective {
		slog.Warn("Ladder round mapped several participants to one slot", "gameId", game.ID, "round", game.Round, "finals", finals)
	}

	round := game.Round
	updated, err := s.store.Update(ctx, game.ID, func(session *repositories.LadderSession) error {
		// the game may have been reset and restarted meanwhile
		if session.Game.Round == round {
			session.Game.HistorySaved = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("Ladder result saved", "gameId", game.ID, "round", round, "resultId", record.ID.Hex())
	return updated.Game, nil
}

// --- History ---

// ListResults retrieves the latest completed rounds. Limits outside
// (0, HistoryLimit] fall back to HistoryLimit.
func (s *LadderServiceImpl) ListResults(ctx context.Context, limit int) ([]*models.LadderResult, error) {
	if limit <= 0 || (s.settings.HistoryLimit > 0 && limit > s.settings.HistoryLimit) {
		limit = s.settings.HistoryLimit
	}
	results, err := s.resultRepo.FindRecent(ctx, limit)
	if err != nil {
		slog.Error("Failed to list ladder results", "error", err)
		return nil, fmt.Errorf("failed to list ladder results: %w", err)
	}
	return results, nil
}

// GetResult retrieves a history record by hex ID
func (s *LadderServiceImpl) GetResult(ctx context.Context, id string) (*models.LadderResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid result id %q", ErrInvalidInput, id)
	}
	result, err := s.resultRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get ladder result: %w", err)
	}
	return result, nil
}

// GetGameResults retrieves every round recorded for a game
func (s *LadderServiceImpl) GetGameResults(ctx context.Context, gameID string) ([]*models.LadderResult, error) {
	results, err := s.resultRepo.FindByGameID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ladder results for game: %w", err)
	}
	return results, nil
}

// --- Helpers ---

func (s *LadderServiceImpl) generateBoard(participants int) (ladder.Board, error) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return ladder.GenerateBoard(s.rng, participants, s.settings.BoardOptions()...)
}

func (s *LadderServiceImpl) buildParticipants(inputs []models.ParticipantInput) ([]models.Participant, error) {
	if len(inputs) < 2 {
		return nil, fmt.Errorf("%w: at least 2 participants are required, got %d", ErrInvalidInput, len(inputs))
	}
	if s.settings.MaxParticipants > 0 && len(inputs) > s.settings.MaxParticipants {
		return nil, fmt.Errorf("%w: at most %d participants are allowed, got %d", ErrInvalidInput, s.settings.MaxParticipants, len(inputs))
	}
	seen := make(map[string]bool, len(inputs))
	participants := make([]models.Participant, len(inputs))
	for i, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: participant %d has no name", ErrInvalidInput, i)
		}
		id := strings.TrimSpace(in.ID)
		if id == "" {
			id = s.newID()
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: participant %q selected twice", ErrInvalidInput, id)
		}
		seen[id] = true
		participants[i] = models.Participant{ID: id, Name: name, Position: i}
	}
	return participants, nil
}

// buildOutcomeSlots returns one label per participant. No labels at all yields
// "Slot 1".."Slot n"; otherwise the count must match and no label may be blank.
func buildOutcomeSlots(labels []string, n int) ([]string, error) {
	slots := make([]string, n)
	if len(labels) == 0 {
		for i := range slots {
			slots[i] = fmt.Sprintf("Slot %d", i+1)
		}
		return slots, nil
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: got %d outcome slots for %d participants", ErrInvalidInput, len(labels), n)
	}
	for i, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			return nil, fmt.Errorf("%w: outcome slot %d is empty", ErrInvalidInput, i)
		}
		slots[i] = l
	}
	return slots, nil
}

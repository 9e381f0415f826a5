package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/ArowuTest/teamdesk-backend/internal/config"
	"github.com/ArowuTest/teamdesk-backend/internal/models"
	"github.com/ArowuTest/teamdesk-backend/internal/repositories/memory"
	"github.com/ArowuTest/teamdesk-backend/internal/repositories/mocks"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/mock/gomock"
)

func testSettings() config.LadderConfig {
	return config.LadderConfig{
		RungsPerLine:    4,
		MinHeight:       10,
		MaxHeight:       90,
		MinGap:          5,
		MaxParticipants: 6,
		HistoryLimit:    20,
	}
}

func newTestService(t *testing.T) (*LadderServiceImpl, *mocks.MockLadderResultRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	results := mocks.NewMockLadderResultRepository(ctrl)
	svc := NewLadderService(memory.NewGameStore(), results, testSettings(), rand.New(rand.NewSource(11)))
	return svc, results
}

func threePlayers() *models.CreateLadderGameRequest {
	return &models.CreateLadderGameRequest{
		Title: "Lunch",
		Participants: []models.ParticipantInput{
			{ID: "e1", Name: "Mina"},
			{ID: "e2", Name: "Joon"},
			{ID: "e3", Name: "Sora"},
		},
		OutcomeSlots: []string{"pays", "free", "free"},
	}
}

func TestCreateGameValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  *models.CreateLadderGameRequest
	}{
		{"nil request", nil},
		{"one participant", &models.CreateLadderGameRequest{Participants: []models.ParticipantInput{{Name: "a"}}}},
		{"too many", &models.CreateLadderGameRequest{Participants: make([]models.ParticipantInput, 7)}},
		{"blank name", &models.CreateLadderGameRequest{Participants: []models.ParticipantInput{{Name: "a"}, {Name: "  "}}}},
		{"duplicate id", &models.CreateLadderGameRequest{Participants: []models.ParticipantInput{{ID: "x", Name: "a"}, {ID: "x", Name: "b"}}}},
		{"slot count", &models.CreateLadderGameRequest{Participants: []models.ParticipantInput{{Name: "a"}, {Name: "b"}}, OutcomeSlots: []string{"one"}}},
		{"blank slot", &models.CreateLadderGameRequest{Participants: []models.ParticipantInput{{Name: "a"}, {Name: "b"}}, OutcomeSlots: []string{"one", ""}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateGame(ctx, tc.req, "mgr"); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateGameAssignsPositionsAndDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	game, err := svc.CreateGame(context.Background(), &models.CreateLadderGameRequest{
		Participants: []models.ParticipantInput{{Name: " Mina "}, {ID: "e2", Name: "Joon"}},
	}, "mgr")
	if err != nil {
		t.Fatalf("CreateGame returned error: %v", err)
	}
	if game.Status != models.LadderGameStatusSetup {
		t.Errorf("status = %s, want SETUP", game.Status)
	}
	if game.Title != "Ladder game" {
		t.Errorf("title = %q, want default", game.Title)
	}
	if game.Participants[0].Name != "Mina" || game.Participants[0].ID == "" || game.Participants[0].Position != 0 {
		t.Errorf("unexpected first participant: %+v", game.Participants[0])
	}
	if game.Participants[1].Position != 1 || game.Participants[1].ID != "e2" {
		t.Errorf("unexpected second participant: %+v", game.Participants[1])
	}
	if len(game.OutcomeSlots) != 2 || game.OutcomeSlots[0] != "Slot 1" || game.OutcomeSlots[1] != "Slot 2" {
		t.Errorf("unexpected default slots: %v", game.OutcomeSlots)
	}
}

func TestLadderGameLifecycle(t *testing.T) {
	svc, results := newTestService(t)
	ctx := context.Background()

	game, err := svc.CreateGame(ctx, threePlayers(), "mgr")
	if err != nil {
		t.Fatalf("CreateGame returned error: %v", err)
	}

	game, err = svc.UpdateOutcomeSlot(ctx, game.ID, 0, " buys coffee ")
	if err != nil {
		t.Fatalf("UpdateOutcomeSlot returned error: %v", err)
	}
	if game.OutcomeSlots[0] != "buys coffee" {
		t.Fatalf("slot 0 = %q, want buys coffee", game.OutcomeSlots[0])
	}

	if _, err := svc.GetBoard(ctx, game.ID); !errors.Is(err, ErrInvalidGameState) {
		t.Fatalf("GetBoard before start: expected ErrInvalidGameState, got %v", err)
	}
	if _, err := svc.RevealParticipant(ctx, game.ID, 0); !errors.Is(err, ErrInvalidGameState) {
		t.Fatalf("reveal before start: expected ErrInvalidGameState, got %v", err)
	}

	game, err = svc.StartGame(ctx, game.ID)
	if err != nil {
		t.Fatalf("StartGame returned error: %v", err)
	}
	if game.Status != models.LadderGameStatusStarted || game.Round != 1 {
		t.Fatalf("unexpected game after start: status=%s round=%d", game.Status, game.Round)
	}
	if _, err := svc.StartGame(ctx, game.ID); !errors.Is(err, ErrInvalidGameState) {
		t.Fatalf("second start: expected ErrInvalidGameState, got %v", err)
	}
	if _, err := svc.UpdateOutcomeSlot(ctx, game.ID, 1, "late edit"); !errors.Is(err, ErrInvalidGameState) {
		t.Fatalf("edit after start: expected ErrInvalidGameState, got %v", err)
	}

	board, err := svc.GetBoard(ctx, game.ID)
	if err != nil {
		t.Fatalf("GetBoard returned error: %v", err)
	}
	if board.Lines != 3 || len(board.LineX) != 3 || len(board.Rungs) != game.RungCount || len(board.RenderRungs) != game.RungCount {
		t.Fatalf("unexpected board view: %+v", board)
	}

	if _, err := svc.RevealParticipant(ctx, game.ID, 3); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("reveal out of range: expected ErrInvalidInput, got %v", err)
	}

	first, err := svc.RevealParticipant(ctx, game.ID, 1)
	if err != nil {
		t.Fatalf("RevealParticipant returned error: %v", err)
	}
	if first.Game.Status != models.LadderGameStatusStarted || len(first.Revealed) != 1 {
		t.Fatalf("unexpected reveal result: status=%s revealed=%d", first.Game.Status, len(first.Revealed))
	}
	rp := first.Revealed[0]
	if rp.Path[0].Line != 1 || rp.Path[0].Height != 0 || rp.Path[len(rp.Path)-1].Height != 100 {
		t.Fatalf("unexpected path: %v", rp.Path)
	}
	if len(rp.Points) != len(rp.Path) {
		t.Fatalf("points = %d, path = %d", len(rp.Points), len(rp.Path))
	}
	if rp.Assignment.Outcome != first.Game.OutcomeSlots[rp.Assignment.FinalLine] {
		t.Fatalf("outcome %q does not match slot %d", rp.Assignment.Outcome, rp.Assignment.FinalLine)
	}

	var saved *models.LadderResult
	results.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *models.LadderResult) error {
		saved = r
		r.ID = primitive.NewObjectID()
		return nil
	}).Times(1)

	all, err := svc.RevealAll(ctx, game.ID)
	if err != nil {
		t.Fatalf("RevealAll returned error: %v", err)
	}
	if all.Warning != "" {
		t.Fatalf("unexpected warning: %s", all.Warning)
	}
	if all.Game.Status != models.LadderGameStatusCompleted || !all.Game.HistorySaved {
		t.Fatalf("unexpected game after reveal all: status=%s saved=%v", all.Game.Status, all.Game.HistorySaved)
	}
	if len(all.Revealed) != 3 {
		t.Fatalf("revealed = %d, want 3", len(all.Revealed))
	}
	if all.Revealed[1].Assignment != rp.Assignment {
		t.Fatalf("re-reveal changed assignment: %+v vs %+v", all.Revealed[1].Assignment, rp.Assignment)
	}
	if saved == nil || saved.GameID != game.ID || saved.Round != 1 || len(saved.Assignments) != 3 || !saved.Bijective {
		t.Fatalf("unexpected saved result: %+v", saved)
	}

	// Completed games can still be revealed for replay, without saving again.
	again, err := svc.RevealParticipant(ctx, game.ID, 2)
	if err != nil {
		t.Fatalf("reveal after completion returned error: %v", err)
	}
	if again.Game.Status != models.LadderGameStatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", again.Game.Status)
	}

	reset, err := svc.ResetGame(ctx, game.ID)
	if err != nil {
		t.Fatalf("ResetGame returned error: %v", err)
	}
	if reset.Status != models.LadderGameStatusSetup || reset.Results != nil || reset.HistorySaved {
		t.Fatalf("unexpected game after reset: %+v", reset)
	}
	if _, err := svc.GetBoard(ctx, game.ID); !errors.Is(err, ErrInvalidGameState) {
		t.Fatalf("GetBoard after reset: expected ErrInvalidGameState, got %v", err)
	}
	restarted, err := svc.StartGame(ctx, game.ID)
	if err != nil {
		t.Fatalf("restart returned error: %v", err)
	}
	if restarted.Round != 2 {
		t.Fatalf("round = %d, want 2", restarted.Round)
	}
}

func TestRevealReportsHistoryFailureAndRetries(t *testing.T) {
	svc, results := newTestService(t)
	ctx := context.Background()

	game, err := svc.CreateGame(ctx, threePlayers(), "mgr")
	if err != nil {
		t.Fatalf("CreateGame returned error: %v", err)
	}
	if _, err := svc.StartGame(ctx, game.ID); err != nil {
		t.Fatalf("StartGame returned error: %v", err)
	}

	gomock.InOrder(
		results.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset")),
		results.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
	)

	res, err := svc.RevealAll(ctx, game.ID)
	if err != nil {
		t.Fatalf("RevealAll returned error: %v", err)
	}
	if res.Warning == "" || res.Game.HistorySaved {
		t.Fatalf("expected history warning, got warning=%q saved=%v", res.Warning, res.Game.HistorySaved)
	}

	res, err = svc.RevealParticipant(ctx, game.ID, 0)
	if err != nil {
		t.Fatalf("RevealParticipant returned error: %v", err)
	}
	if res.Warning != "" || !res.Game.HistorySaved {
		t.Fatalf("expected retry to save, got warning=%q saved=%v", res.Warning, res.Game.HistorySaved)
	}
}

func TestResultQueries(t *testing.T) {
	svc, results := newTestService(t)
	ctx := context.Background()

	if _, err := svc.GetResult(ctx, "not-hex"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	missing := primitive.NewObjectID()
	results.EXPECT().FindByID(gomock.Any(), missing).Return(nil, mongo.ErrNoDocuments)
	if _, err := svc.GetResult(ctx, missing.Hex()); !errors.Is(err, ErrResultNotFound) {
		t.Fatalf("expected ErrResultNotFound, got %v", err)
	}

	results.EXPECT().FindRecent(gomock.Any(), 20).Return([]*models.LadderResult{{GameID: "g1"}}, nil).Times(2)
	for _, limit := range []int{0, 500} {
		got, err := svc.ListResults(ctx, limit)
		if err != nil {
			t.Fatalf("ListResults(%d) returned error: %v", limit, err)
		}
		if len(got) != 1 {
			t.Fatalf("ListResults(%d) = %d results, want 1", limit, len(got))
		}
	}
	results.EXPECT().FindRecent(gomock.Any(), 5).Return([]*models.LadderResult{}, nil)
	if _, err := svc.ListResults(ctx, 5); err != nil {
		t.Fatalf("ListResults(5) returned error: %v", err)
	}

	results.EXPECT().FindByGameID(gomock.Any(), "g1").Return([]*models.LadderResult{{GameID: "g1", Round: 2}, {GameID: "g1", Round: 1}}, nil)
	rounds, err := svc.GetGameResults(ctx, "g1")
	if err != nil || len(rounds) != 2 {
		t.Fatalf("GetGameResults = %v, %v", rounds, err)
	}
}

func TestCreateGameStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLadderGameStore(ctrl)
	svc := NewLadderService(store, mocks.NewMockLadderResultRepository(ctrl), testSettings(), nil)

	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("full"))
	if _, err := svc.CreateGame(context.Background(), threePlayers(), "mgr"); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}

func TestUnknownGame(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.GetGame(ctx, "nope"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GetGame: expected ErrGameNotFound, got %v", err)
	}
	if _, err := svc.StartGame(ctx, "nope"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("StartGame: expected ErrGameNotFound, got %v", err)
	}
	if err := svc.DeleteGame(ctx, "nope"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("DeleteGame: expected ErrGameNotFound, got %v", err)
	}
}

package routes

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ArowuTest/teamdesk-backend/internal/config"
	"github.com/ArowuTest/teamdesk-backend/internal/handlers"
	"github.com/ArowuTest/teamdesk-backend/internal/repositories/memory"
	"github.com/ArowuTest/teamdesk-backend/internal/repositories/mocks"
	"github.com/ArowuTest/teamdesk-backend/internal/services"
	"github.com/ArowuTest/teamdesk-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, health func(context.Context) error) (*gin.Engine, *jwt.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.AllowedHosts = []string{"*"}
	cfg.Ladder = config.LadderConfig{RungsPerLine: 4, MinHeight: 10, MaxHeight: 90, MinGap: 5, MaxParticipants: 10, HistoryLimit: 5}

	results := mocks.NewMockLadderResultRepository(gomock.NewController(t))
	svc := services.NewLadderService(memory.NewGameStore(), results, cfg.Ladder, rand.New(rand.NewSource(1)))
	tokens := jwt.NewTokenService("route-secret", "teamdesk")
	return SetupRouter(cfg, HandlerDependencies{
		LadderHandler: handlers.NewLadderHandler(svc),
		HealthCheck:   health,
	}, tokens), tokens
}

func TestHealth(t *testing.T) {
	r, _ := newRouter(t, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", w.Code)
	}

	r, _ = newRouter(t, func(context.Context) error { return errors.New("no primary") })
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("degraded health status = %d, want 503", w.Code)
	}
}

func TestLadderRoutesRequireToken(t *testing.T) {
	r, tokens := newRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ladder/games", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d, want 401", w.Code)
	}

	token, err := tokens.Issue("mgr-9", "", "manager", time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ladder/games", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("authorized status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if w.Body.String() != "[]" {
		t.Fatalf("body = %s, want []", w.Body.String())
	}
}

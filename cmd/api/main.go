package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ArowuTest/teamdesk-backend/api/routes"
	"github.com/ArowuTest/teamdesk-backend/internal/config"
	"github.com/ArowuTest/teamdesk-backend/internal/handlers"
	"github.com/ArowuTest/teamdesk-backend/internal/repositories"
	"github.com/ArowuTest/teamdesk-backend/internal/repositories/memory"
	mongorepo "github.com/ArowuTest/teamdesk-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/teamdesk-backend/internal/services"
	"github.com/ArowuTest/teamdesk-backend/internal/utils"
	"github.com/ArowuTest/teamdesk-backend/pkg/jwt"
	"github.com/ArowuTest/teamdesk-backend/pkg/mongodb"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})))

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.Server.Mode)

	timeout := time.Duration(cfg.MongoDB.TimeoutSeconds) * time.Second
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI, timeout)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	resultRepo := mongorepo.NewLadderResultRepository(db)
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), timeout)
	if err := resultRepo.EnsureIndexes(indexCtx); err != nil {
		slog.Warn("Failed to create ladder result indexes", "error", err)
	}
	cancelIndex()
	var gameStore repositories.LadderGameStore = memory.NewGameStore()

	// Services
	ladderService := services.NewLadderService(gameStore, resultRepo, cfg.Ladder, utils.NewSeededRand())

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		LadderHandler: handlers.NewLadderHandler(ladderService),
		HealthCheck:   mongoClient.Ping,
	}

	tokens := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	router := routes.SetupRouter(cfg, handlerDeps, tokens)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("Server starting", "port", cfg.Server.Port, "mode", cfg.Server.Mode)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

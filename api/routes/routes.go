package routes

import (
	"context"
	"net/http"

	"github.com/ArowuTest/teamdesk-backend/internal/config"
	"github.com/ArowuTest/teamdesk-backend/internal/handlers"
	"github.com/ArowuTest/teamdesk-backend/internal/middleware"
	"github.com/ArowuTest/teamdesk-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds the handlers the router mounts
type HandlerDependencies struct {
	LadderHandler *handlers.LadderHandler
	// HealthCheck reports whether the backing store is reachable. Nil means always healthy.
	HealthCheck func(ctx context.Context) error
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies, tokens *jwt.TokenService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedHosts))

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			if deps.HealthCheck != nil {
				if err := deps.HealthCheck(c.Request.Context()); err != nil {
					c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
					return
				}
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(tokens))
	{
		ladder := protected.Group("/ladder")
		{
			games := ladder.Group("/games")
			{
				games.POST("", deps.LadderHandler.CreateGame)
				games.GET("", deps.LadderHandler.ListGames)
				games.GET("/:id", deps.LadderHandler.GetGame)
				games.DELETE("/:id", deps.LadderHandler.DeleteGame)
				games.PUT("/:id/slots/:index", deps.LadderHandler.UpdateOutcomeSlot)
				games.POST("/:id/start", deps.LadderHandler.StartGame)
				games.POST("/:id/reset", deps.LadderHandler.ResetGame)
				games.GET("/:id/board", deps.LadderHandler.GetBoard)
				games.POST("/:id/reveal/:position", deps.LadderHandler.RevealParticipant)
				games.POST("/:id/reveal-all", deps.LadderHandler.RevealAll)
				games.GET("/:id/results", deps.LadderHandler.GetGameResults)
			}

			results := ladder.Group("/results")
			{
				results.GET("", deps.LadderHandler.ListResults)
				results.GET("/:id", deps.LadderHandler.GetResult)
			}
		}
	}

	return router
}

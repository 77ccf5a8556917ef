package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardgames-backend/internal/shared/middleware"
	"boardgames-backend/internal/shared/response"
	"boardgames-backend/pkg/container"
)

// SetupRouter wires global middleware and all route groups. The database
// session middleware applies only to entity routes so the liveness endpoint
// never touches the pool.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler)
		v1.GET("/db-test", databaseTestHandler(c))

		setupGameRoutes(v1, c)
		setupUserRoutes(v1, c)
	}

	return router
}

func setupGameRoutes(rg *gin.RouterGroup, c *container.Container) {
	games := rg.Group("/games")
	games.Use(middleware.Session(c.DB))
	{
		games.POST("", c.GameHandler.Create)
		games.GET("", c.GameHandler.List)
		games.GET("/:id", c.GameHandler.GetByID)
		games.PATCH("/:id", c.GameHandler.Update)
		games.DELETE("/:id", c.GameHandler.Delete)
	}
}

func setupUserRoutes(rg *gin.RouterGroup, c *container.Container) {
	users := rg.Group("/users")
	users.Use(middleware.Session(c.DB))
	{
		users.POST("", c.UserHandler.Create)
		users.GET("", c.UserHandler.List)
		users.GET("/:id", c.UserHandler.GetByID)
		users.DELETE("/:id", c.UserHandler.Delete)
	}
}

// healthCheckHandler is a pure liveness probe. It deliberately checks no
// dependencies; /db-test carries the deep signal.
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Board Games API is running!",
	})
}

// databaseTestHandler verifies connectivity and reports server version plus
// pool statistics.
func databaseTestHandler(appContainer *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := appContainer.DB.HealthCheck(ctx); err != nil {
			response.ServiceUnavailable(c, "database unreachable")
			return
		}

		var version string
		if err := appContainer.DB.Pool.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
			response.ServiceUnavailable(c, "database query failed")
			return
		}

		stats := appContainer.DB.Pool.Stat()
		response.Success(c, http.StatusOK, gin.H{
			"version":        version,
			"total_conns":    stats.TotalConns(),
			"idle_conns":     stats.IdleConns(),
			"acquired_conns": stats.AcquiredConns(),
			"max_conns":      stats.MaxConns(),
		})
	}
}

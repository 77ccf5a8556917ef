package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"boardgames-backend/internal/config"
	"boardgames-backend/internal/infrastructure/database"

	"boardgames-backend/internal/domains/boardgame"
	gameHandler "boardgames-backend/internal/domains/boardgame/handler"
	gameRepo "boardgames-backend/internal/domains/boardgame/repository"
	gameService "boardgames-backend/internal/domains/boardgame/service"

	"boardgames-backend/internal/domains/user"
	userHandler "boardgames-backend/internal/domains/user/handler"
	userRepo "boardgames-backend/internal/domains/user/repository"
	userService "boardgames-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	GameRepo boardgame.BoardGameRepository
	UserRepo user.UserRepository

	GameService boardgame.BoardGameService
	UserService user.UserService

	GameHandler *gameHandler.BoardGameHandler
	UserHandler *userHandler.UserHandler
}

// NewContainer initializes the dependency graph in order: config, database,
// schema, repositories, services, handlers. Any failure aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	if err := db.InitSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	c.DB = db

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	c.GameRepo = gameRepo.NewPostgresBoardGameRepository(c.DB)
	c.UserRepo = userRepo.NewPostgresUserRepository(c.DB)
}

func (c *Container) initServices() {
	c.GameService = gameService.NewBoardGameService(c.GameRepo)
	c.UserService = userService.NewUserService(c.UserRepo)
}

func (c *Container) initHandlers() {
	c.GameHandler = gameHandler.NewBoardGameHandler(c.GameService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases everything the container holds. Called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}

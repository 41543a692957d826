// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/engine"
	"github.com/runoshun/taskpulse/internal/infra/config"
	"github.com/runoshun/taskpulse/internal/infra/jsonstore"
	"github.com/runoshun/taskpulse/internal/infra/logging"
	"github.com/runoshun/taskpulse/internal/infra/sqlitestore"
	"github.com/runoshun/taskpulse/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	DataDir   string // Path to the taskpulse data directory
	Backend   string // Store backend ("json" or "sqlite")
	StorePath string // Path to users.json or taskpulse.db
}

// newConfig resolves paths for the data directory and backend.
func newConfig(dataDir, backend string) (Config, error) {
	cfg := Config{DataDir: dataDir, Backend: backend}
	switch backend {
	case domain.StoreJSON, "":
		cfg.Backend = domain.StoreJSON
		cfg.StorePath = domain.UsersStorePath(dataDir)
	case domain.StoreSQLite:
		cfg.StorePath = domain.SQLiteStorePath(dataDir)
	default:
		return Config{}, fmt.Errorf("%q: %w", backend, domain.ErrUnknownStore)
	}
	return cfg, nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Users            domain.UserRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	ConfigLoader     domain.ConfigLoader
	ConfigManager    domain.ConfigManager
	ActivityLog      domain.Logger

	// Pointer fields
	Logger    *slog.Logger
	Engine    *engine.Engine
	AppConfig *domain.Config

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given data directory.
// An empty dataDir resolves to TASKPULSE_DATA_DIR or the XDG data home.
func New(dataDir string) (*Container, error) {
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}

	configLoader := config.NewLoader(dataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	cfg, err := newConfig(dataDir, appConfig.Store.Backend)
	if err != nil {
		return nil, err
	}

	level := logging.ParseLevel(appConfig.Log.Level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	for _, w := range appConfig.Warnings {
		logger.Warn("config warning", "detail", w)
	}

	c := &Container{
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dataDir),
		Logger:        logger,
		Engine:        engine.New(engine.DefaultsFromConfig(appConfig.Scoring)),
		AppConfig:     appConfig,
		Config:        cfg,
	}

	// Create user repository based on config
	if cfg.Backend == domain.StoreSQLite {
		store := sqlitestore.New(cfg.StorePath)
		c.Users = store
		c.StoreInitializer = store
		c.closers = append(c.closers, store)
	} else {
		store := jsonstore.New(cfg.StorePath)
		c.Users = store
		c.StoreInitializer = store
	}

	activity := logging.New(dataDir, level)
	c.ActivityLog = activity
	c.closers = append(c.closers, activity)

	logger.Debug("container ready", "data_dir", dataDir, "store", cfg.Backend)
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, users domain.UserRepository, storeInit domain.StoreInitializer, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Users:            users,
		StoreInitializer: storeInit,
		Clock:            clock,
		Logger:           logger,
		Engine:           engine.Default(),
		AppConfig:        domain.NewDefaultConfig(),
		Config:           cfg,
	}
}

// SetAsOf pins the clock to t so every calculation evaluates at that instant.
func (c *Container) SetAsOf(t time.Time) {
	c.Clock = domain.FixedClock{At: t}
}

// Close releases open stores and log files.
func (c *Container) Close() error {
	var lastErr error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			lastErr = err
		}
	}
	c.closers = nil
	return lastErr
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer, c.ActivityLog)
}

// AddUserUseCase returns a new AddUser use case.
func (c *Container) AddUserUseCase() *usecase.AddUser {
	return usecase.NewAddUser(c.Users, c.ActivityLog)
}

// ListUsersUseCase returns a new ListUsers use case.
func (c *Container) ListUsersUseCase() *usecase.ListUsers {
	return usecase.NewListUsers(c.Users)
}

// ImportUsersUseCase returns a new ImportUsers use case.
func (c *Container) ImportUsersUseCase() *usecase.ImportUsers {
	return usecase.NewImportUsers(c.Users, c.ActivityLog)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Users, c.Clock, c.ActivityLog)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Users, c.ActivityLog)
}

// ClassifyTaskUseCase returns a new ClassifyTask use case.
func (c *Container) ClassifyTaskUseCase() *usecase.ClassifyTask {
	return usecase.NewClassifyTask()
}

// CalculateRTPUseCase returns a new CalculateRTP use case.
func (c *Container) CalculateRTPUseCase() *usecase.CalculateRTP {
	return usecase.NewCalculateRTP(c.Users, c.Engine, c.Clock)
}

// ShowWorkloadUseCase returns a new ShowWorkload use case.
func (c *Container) ShowWorkloadUseCase() *usecase.ShowWorkload {
	return usecase.NewShowWorkload(c.Users, c.Engine, c.Clock)
}

// RankTasksUseCase returns a new RankTasks use case.
func (c *Container) RankTasksUseCase() *usecase.RankTasks {
	return usecase.NewRankTasks(c.Users, c.Engine, c.Clock)
}

// RecordSnapshotUseCase returns a new RecordSnapshot use case.
func (c *Container) RecordSnapshotUseCase() *usecase.RecordSnapshot {
	return usecase.NewRecordSnapshot(c.Users, c.Engine, c.Clock, c.ActivityLog)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

package app

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"

	"github.com/quarryapp/quarry/internal/es"
	"github.com/quarryapp/quarry/internal/logging"
	"github.com/quarryapp/quarry/internal/model"
	"github.com/quarryapp/quarry/internal/storage"
)

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *Config
	logger  *slog.Logger
	manager *es.Manager
	storage storage.Repository
	state   *model.ApplicationState
	connUI  *model.ConnectionUIState
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	// Initialize logger
	logger, err := logging.InitLogger("quarry", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("initializing Quarry application",
		slog.Bool("debug", cfg.Debug),
		slog.String("storage_path", cfg.StoragePath),
		slog.Duration("request_timeout", cfg.RequestTimeout),
	)

	// Initialize storage
	storagePath := cfg.StoragePath
	if storagePath == "" {
		storagePath, err = storage.DefaultStoragePath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine storage path: %w", err)
		}
	}

	repo := storage.NewJSONRepository(storagePath, logger)

	// Initialize connection manager
	manager := es.NewManager(logger)

	// Initialize application state
	state := model.NewApplicationState()

	// Wire connection manager state changes to UI state
	connUI := model.NewConnectionUIState()
	manager.SetStateCallback(func(connState es.ConnectionState, message string) {
		var uiState string
		switch connState {
		case es.StateConnecting:
			uiState = "connecting"
		case es.StateConnected:
			uiState = "connected"
		case es.StateError:
			uiState = "error"
		default:
			uiState = "disconnected"
		}

		_ = connUI.State.Set(uiState)
		_ = connUI.Message.Set(message)

		// Also update the main state's Connected binding
		_ = state.Connected.Set(connState == es.StateConnected)
	})

	logger.Info("application initialized successfully")

	return &App{
		fyneApp: fyneApp,
		config:  cfg,
		logger:  logger,
		manager: manager,
		storage: repo,
		state:   state,
		connUI:  connUI,
	}, nil
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// Manager returns the connection manager for use by UI components.
func (a *App) Manager() *es.Manager {
	return a.manager
}

// State returns the application state for use by UI components.
func (a *App) State() *model.ApplicationState {
	return a.state
}

// ConnectionUI returns the bindings that mirror the connection lifecycle.
func (a *App) ConnectionUI() *model.ConnectionUIState {
	return a.connUI
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Storage returns the storage repository.
func (a *App) Storage() storage.Repository {
	return a.storage
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// RequestTimeout returns the configured bound for cluster requests. The
// preferences dialog can override it at runtime; this value is the fallback
// until a preference has been saved.
func (a *App) RequestTimeout() time.Duration {
	return a.config.RequestTimeout
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}

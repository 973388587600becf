package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	fyneapp "fyne.io/fyne/v2/app"

	quarryapp "github.com/quarryapp/quarry/internal/app"
	"github.com/quarryapp/quarry/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Temporary stdout logger for bootstrap errors, before the real
	// logger is configured.
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting Quarry", slog.String("version", ui.Version))

	cfg, err := quarryapp.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}

	fyneApp := fyneapp.NewWithID("com.quarry.client")
	ui.LoadThemePreference(fyneApp)

	application, err := quarryapp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	mainWindow := ui.NewMainWindow(application.FyneApp(), application)

	// Blocks until the window closes
	application.Run(mainWindow.Window())

	application.Logger().Info("application shutdown complete")
	return nil
}

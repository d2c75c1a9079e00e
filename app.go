package main

import (
	"context"
	"fmt"

	"ragsettings/internal/models"
	"ragsettings/internal/services"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App struct
type App struct {
	ctx      context.Context
	settings services.SettingsService
	dbClose  func() error
}

// NewApp creates a new App application struct
func NewApp(settings services.SettingsService) *App {
	return &App{settings: settings}
}

// startup is called when the app starts. The settings store lives from here
// until shutdown.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.settings.Startup(ctx)
	runtime.LogInfo(ctx, "settings store mounted")
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	a.settings.Shutdown(ctx)

	// Close database connection pool
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// Defaults returns the settings a new session starts with.
func (a *App) Defaults() models.SettingsState {
	return models.DefaultSettings()
}

package main

import (
	"context"
	"embed"
	"log"

	"ragsettings/internal/config"
	"ragsettings/internal/database"
	"ragsettings/internal/events"
	"ragsettings/internal/services"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Println("Error loading config:", err)
		return
	}

	db, err := database.Init(database.Config{
		Path:     cfg.DBPath,
		LogLevel: cfg.LogLevel,
	})
	if err != nil {
		log.Println("Error opening database:", err)
		return
	}

	settingsService := services.NewSettingsService()
	dbService := services.NewDbServices(db, settingsService)
	app := NewApp(settingsService)
	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	events.EnableRuntimeEmitter()

	err = wails.Run(&options.App{
		Title:  cfg.WindowTitle,
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "ragsettings",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			dbService.StartDbServices(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			settingsService,
			dbService.SettingsPresets,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}

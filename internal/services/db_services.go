package services

import (
	"context"

	"ragsettings/internal/repositories"

	"gorm.io/gorm"
)

// DbServices aggregates all domain services backed by the database.
type DbServices struct {
	SettingsPresets SettingsPresetService
}

// NewDbServices constructs the service container using repositories backed by db.
// Presets read the live settings through stores.
func NewDbServices(db *gorm.DB, stores StoreProvider) *DbServices {
	presetRepo := repositories.NewSettingsPresetRepository(db)

	return &DbServices{
		SettingsPresets: NewSettingsPresetService(presetRepo, stores),
	}
}

func (s *DbServices) StartDbServices(ctx context.Context) {
	s.SettingsPresets.Startup(ctx)
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"ragsettings/internal/models"
)

type SettingsPresetRepository interface {
	List(ctx context.Context) ([]models.SettingsPreset, error)
	Get(ctx context.Context, id uint) (*models.SettingsPreset, error)
	GetByName(ctx context.Context, name string) (*models.SettingsPreset, error)
	Create(ctx context.Context, preset *models.SettingsPreset) error
	Delete(ctx context.Context, id uint) error
}

type settingsPresetRepository struct {
	db *gorm.DB
}

func NewSettingsPresetRepository(db *gorm.DB) SettingsPresetRepository {
	return &settingsPresetRepository{db: db}
}

func (r *settingsPresetRepository) List(ctx context.Context) ([]models.SettingsPreset, error) {
	var presets []models.SettingsPreset
	if err := r.db.WithContext(ctx).Order("name").Find(&presets).Error; err != nil {
		return nil, err
	}
	return presets, nil
}

// Get returns nil, nil when no preset has the given id.
func (r *settingsPresetRepository) Get(ctx context.Context, id uint) (*models.SettingsPreset, error) {
	var preset models.SettingsPreset
	if err := r.db.WithContext(ctx).First(&preset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &preset, nil
}

// GetByName returns nil, nil when no preset has the given name.
func (r *settingsPresetRepository) GetByName(ctx context.Context, name string) (*models.SettingsPreset, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("preset name is required")
	}
	var preset models.SettingsPreset
	if err := r.db.WithContext(ctx).Where("name = ?", name).Take(&preset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &preset, nil
}

func (r *settingsPresetRepository) Create(ctx context.Context, preset *models.SettingsPreset) error {
	if preset == nil {
		return fmt.Errorf("preset is required")
	}
	return r.db.WithContext(ctx).Create(preset).Error
}

func (r *settingsPresetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.SettingsPreset{}, id).Error
}

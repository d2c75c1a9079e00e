package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ragsettings/internal/models"
	"ragsettings/internal/repositories"
	"ragsettings/internal/settings"
)

// StoreProvider hands out the store of the running UI session.
type StoreProvider interface {
	Store() (*settings.Store, error)
}

type SettingsPresetService interface {
	Startup(ctx context.Context)
	Save(name string) (*models.SettingsPreset, error)
	List() ([]models.SettingsPreset, error)
	Load(id uint) (*models.SettingsState, error)
	Delete(id uint) error
}

type settingsPresetService struct {
	presets repositories.SettingsPresetRepository
	stores  StoreProvider
	context context.Context
}

func NewSettingsPresetService(presets repositories.SettingsPresetRepository, stores StoreProvider) SettingsPresetService {
	return &settingsPresetService{presets: presets, stores: stores}
}

func (s *settingsPresetService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *settingsPresetService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}

// Save stores the current settings under name.
func (s *settingsPresetService) Save(name string) (*models.SettingsPreset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("preset name is required")
	}

	store, err := s.stores.Store()
	if err != nil {
		return nil, err
	}

	existing, err := s.presets.GetByName(s.ctx(), name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("preset %q already exists", name)
	}

	preset := models.NewSettingsPreset(name, store.Snapshot())
	if err := s.presets.Create(s.ctx(), preset); err != nil {
		return nil, fmt.Errorf("save preset %q: %w", name, err)
	}
	return preset, nil
}

func (s *settingsPresetService) List() ([]models.SettingsPreset, error) {
	return s.presets.List(s.ctx())
}

// Load applies the preset to the live store and returns the resulting state.
// Values are clamped exactly like the individual setters.
func (s *settingsPresetService) Load(id uint) (*models.SettingsState, error) {
	store, err := s.stores.Store()
	if err != nil {
		return nil, err
	}

	preset, err := s.presets.Get(s.ctx(), id)
	if err != nil {
		return nil, err
	}
	if preset == nil {
		return nil, fmt.Errorf("preset %d not found", id)
	}

	state := store.Apply(preset.State())
	return &state, nil
}

func (s *settingsPresetService) Delete(id uint) error {
	if id == 0 {
		return errors.New("preset id is required")
	}
	return s.presets.Delete(s.ctx(), id)
}

package mocks

import (
	"context"

	"ragsettings/internal/models"
)

type SettingsPresetRepositoryMock struct {
	ListFunc      func(ctx context.Context) ([]models.SettingsPreset, error)
	GetFunc       func(ctx context.Context, id uint) (*models.SettingsPreset, error)
	GetByNameFunc func(ctx context.Context, name string) (*models.SettingsPreset, error)
	CreateFunc    func(ctx context.Context, preset *models.SettingsPreset) error
	DeleteFunc    func(ctx context.Context, id uint) error
}

func (m *SettingsPresetRepositoryMock) List(ctx context.Context) ([]models.SettingsPreset, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.SettingsPreset{}, nil
}

func (m *SettingsPresetRepositoryMock) Get(ctx context.Context, id uint) (*models.SettingsPreset, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *SettingsPresetRepositoryMock) GetByName(ctx context.Context, name string) (*models.SettingsPreset, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *SettingsPresetRepositoryMock) Create(ctx context.Context, preset *models.SettingsPreset) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, preset)
	}
	return nil
}

func (m *SettingsPresetRepositoryMock) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

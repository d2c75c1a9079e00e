package repositories_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"ragsettings/internal/database"
	"ragsettings/internal/models"
	"ragsettings/internal/repositories"
)

func newTestRepository(t *testing.T) repositories.SettingsPresetRepository {
	t.Helper()
	db, err := database.Init(database.Config{
		Path:     filepath.Join(t.TempDir(), "presets.db"),
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repositories.NewSettingsPresetRepository(db)
}

func TestSettingsPresetRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	state := models.DefaultSettings()
	state.VdbTopK = 40
	state.MetadataSchema = []models.MetadataField{
		{Name: "author", Type: models.MetadataString},
		{Name: "published", Type: models.MetadataDatetime, Optional: true},
	}
	preset := models.NewSettingsPreset("narrow", state)

	require.NoError(t, repo.Create(ctx, preset))
	require.NotZero(t, preset.ID)

	got, err := repo.Get(ctx, preset.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "narrow", got.Name)
	assert.Equal(t, state, got.State())

	byName, err := repo.GetByName(ctx, "narrow")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, preset.ID, byName.ID)
}

func TestSettingsPresetRepository_NotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	got, err := repo.Get(ctx, 404)
	assert.NoError(t, err)
	assert.Nil(t, got)

	byName, err := repo.GetByName(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, byName)

	_, err = repo.GetByName(ctx, " ")
	assert.EqualError(t, err, "preset name is required")
}

func TestSettingsPresetRepository_UniqueName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.NewSettingsPreset("dup", models.DefaultSettings())))
	assert.Error(t, repo.Create(ctx, models.NewSettingsPreset("dup", models.DefaultSettings())))
}

func TestSettingsPresetRepository_ListAndDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, repo.Create(ctx, models.NewSettingsPreset(name, models.DefaultSettings())))
	}

	presets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 3)
	assert.Equal(t, "alpha", presets[0].Name)
	assert.Equal(t, "zeta", presets[2].Name)

	require.NoError(t, repo.Delete(ctx, presets[0].ID))
	presets, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, presets, 2)
}

package settings

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragsettings/internal/models"
)

func TestNewStore_Defaults(t *testing.T) {
	st := NewStore().Snapshot()

	assert.Equal(t, 0.5, st.Temperature)
	assert.Equal(t, 0.9, st.TopP)
	assert.Equal(t, 100, st.VdbTopK)
	assert.Equal(t, 10, st.RerankerTopK)
	assert.Equal(t, 0.0, st.ConfidenceScoreThreshold)
	assert.False(t, st.UseGuardrails)
	assert.True(t, st.IncludeCitations)
	assert.Empty(t, st.MetadataSchema)
}

func TestStore_TemperatureAndTopPFloor(t *testing.T) {
	s := NewStore()
	for _, v := range []float64{0.09, 0, -1, -1000, math.Inf(-1), math.NaN()} {
		assert.Equal(t, 0.1, s.SetTemperature(v).Temperature, "temperature %v", v)
		assert.Equal(t, 0.1, s.SetTopP(v).TopP, "topP %v", v)
	}

	assert.Equal(t, 1.7, s.SetTemperature(1.7).Temperature)
	assert.Equal(t, 0.35, s.SetTopP(0.35).TopP)
}

func TestStore_SetVdbTopK_RaisedToReranker(t *testing.T) {
	s := NewStore()

	st := s.SetVdbTopK(5)
	assert.Equal(t, 10, st.VdbTopK)
	assert.Equal(t, 10, st.RerankerTopK)

	st = s.SetVdbTopK(250)
	assert.Equal(t, 250, st.VdbTopK)
}

func TestStore_SetRerankerTopK_CappedAtVdb(t *testing.T) {
	s := NewStore()

	st := s.SetRerankerTopK(150)
	assert.Equal(t, 100, st.RerankerTopK)
	assert.Equal(t, 100, st.VdbTopK)

	st = s.SetRerankerTopK(0)
	assert.Equal(t, 1, st.RerankerTopK)

	st = s.SetRerankerTopK(-20)
	assert.Equal(t, 1, st.RerankerTopK)
}

func TestStore_TopKInvariantHoldsForAnySequence(t *testing.T) {
	s := NewStore()
	inputs := []int{-5, 0, 1, 3, 10, 42, 99, 100, 101, 500}
	for _, vdb := range inputs {
		for _, rer := range inputs {
			st := s.SetVdbTopK(vdb)
			assert.GreaterOrEqual(t, st.VdbTopK, 1)
			assert.GreaterOrEqual(t, st.VdbTopK, st.RerankerTopK)

			st = s.SetRerankerTopK(rer)
			assert.GreaterOrEqual(t, st.RerankerTopK, 1)
			assert.LessOrEqual(t, st.RerankerTopK, st.VdbTopK)
		}
	}
}

func TestStore_ConfidenceThresholdClamped(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 0.0, s.SetConfidenceScoreThreshold(-5).ConfidenceScoreThreshold)
	assert.Equal(t, 1.0, s.SetConfidenceScoreThreshold(5).ConfidenceScoreThreshold)
	assert.Equal(t, 0.37, s.SetConfidenceScoreThreshold(0.37).ConfidenceScoreThreshold)
	assert.Equal(t, 0.0, s.SetConfidenceScoreThreshold(math.NaN()).ConfidenceScoreThreshold)
}

func TestStore_Toggles(t *testing.T) {
	s := NewStore()

	assert.True(t, s.SetUseGuardrails(true).UseGuardrails)
	assert.False(t, s.SetIncludeCitations(false).IncludeCitations)
	assert.False(t, s.SetUseGuardrails(false).UseGuardrails)
	assert.True(t, s.SetIncludeCitations(true).IncludeCitations)
}

func TestStore_SetMetadataSchema_ReplacesWithoutValidation(t *testing.T) {
	s := NewStore()
	schema := []models.MetadataField{
		{Name: "author", Type: models.MetadataString},
		{Name: "author", Type: models.MetadataDatetime, Optional: true},
		{Name: "", Type: "unknown"},
	}

	st := s.SetMetadataSchema(schema)
	require.Len(t, st.MetadataSchema, 3)
	assert.Equal(t, schema, st.MetadataSchema)

	schema[0].Name = "mutated"
	assert.Equal(t, "author", s.Snapshot().MetadataSchema[0].Name)

	st = s.SetMetadataSchema(nil)
	assert.NotNil(t, st.MetadataSchema)
	assert.Empty(t, st.MetadataSchema)
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.SetMetadataSchema([]models.MetadataField{{Name: "source", Type: models.MetadataString}})

	snap := s.Snapshot()
	snap.MetadataSchema[0].Name = "changed"
	snap.Temperature = 9

	st := s.Snapshot()
	assert.Equal(t, "source", st.MetadataSchema[0].Name)
	assert.Equal(t, 0.5, st.Temperature)
}

func TestStore_SubscribeNotifiesInOrder(t *testing.T) {
	s := NewStore()
	var calls []string
	var last models.SettingsState

	s.Subscribe(func(st models.SettingsState) { calls = append(calls, "first"); last = st })
	s.Subscribe(func(models.SettingsState) { calls = append(calls, "second") })

	s.SetTemperature(0.8)

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, 0.8, last.Temperature)
}

func TestStore_ListenerMayReadStore(t *testing.T) {
	s := NewStore()
	var seen float64
	s.Subscribe(func(models.SettingsState) { seen = s.Snapshot().TopP })

	s.SetTopP(0.42)

	assert.Equal(t, 0.42, seen)
}

func TestStore_Unsubscribe(t *testing.T) {
	s := NewStore()
	count := 0
	unsubscribe := s.Subscribe(func(models.SettingsState) { count++ })

	s.SetUseGuardrails(true)
	unsubscribe()
	unsubscribe()
	s.SetUseGuardrails(false)

	assert.Equal(t, 1, count)
}

func TestStore_SubscribeNil(t *testing.T) {
	s := NewStore()
	unsubscribe := s.Subscribe(nil)
	assert.NotPanics(t, func() {
		s.SetTopP(0.5)
		unsubscribe()
	})
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.SetTemperature(1.2)
	s.SetVdbTopK(300)
	s.SetMetadataSchema([]models.MetadataField{{Name: "x", Type: models.MetadataString}})

	assert.Equal(t, models.DefaultSettings(), s.Reset())
}

func TestStore_Apply(t *testing.T) {
	s := NewStore()
	s.SetVdbTopK(20)
	s.SetRerankerTopK(10)
	notified := 0
	s.Subscribe(func(models.SettingsState) { notified++ })

	st := s.Apply(models.SettingsState{
		Temperature:              0.01,
		TopP:                     0.7,
		VdbTopK:                  50,
		RerankerTopK:             40,
		ConfidenceScoreThreshold: 3,
		UseGuardrails:            true,
		IncludeCitations:         false,
		MetadataSchema:           []models.MetadataField{{Name: "date", Type: models.MetadataDatetime}},
	})

	assert.Equal(t, 1, notified)
	assert.Equal(t, 0.1, st.Temperature)
	assert.Equal(t, 0.7, st.TopP)
	assert.Equal(t, 50, st.VdbTopK)
	assert.Equal(t, 40, st.RerankerTopK)
	assert.Equal(t, 1.0, st.ConfidenceScoreThreshold)
	assert.True(t, st.UseGuardrails)
	assert.False(t, st.IncludeCitations)
	assert.Len(t, st.MetadataSchema, 1)
}

func TestStore_ApplyRepairsInvertedTopK(t *testing.T) {
	st := NewStore().Apply(models.SettingsState{VdbTopK: 5, RerankerTopK: 10})

	assert.Equal(t, 5, st.VdbTopK)
	assert.Equal(t, 5, st.RerankerTopK)
	assert.Equal(t, 0.1, st.Temperature)
	assert.Equal(t, 0.1, st.TopP)
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrOutsideProvider)

	//nolint:staticcheck // nil context is the uninitialised case
	_, err = FromContext(nil)
	assert.ErrorIs(t, err, ErrOutsideProvider)

	_, err = FromContext(WithStore(context.Background(), nil))
	assert.ErrorIs(t, err, ErrOutsideProvider)

	store := NewStore()
	got, err := FromContext(WithStore(context.Background(), store))
	require.NoError(t, err)
	assert.Same(t, store, got)
}

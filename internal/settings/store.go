// Package settings holds the session-scoped generation and retrieval
// settings shared by the UI, and the helpers that turn them into requests.
package settings

import (
	"math"
	"sync"

	"ragsettings/internal/models"
)

// Listener receives the post-mutation state after every change.
type Listener func(state models.SettingsState)

type subscription struct {
	id uint64
	fn Listener
}

// Store holds one SettingsState and clamps every value written to it.
// VdbTopK >= RerankerTopK holds after every mutation.
type Store struct {
	mu        sync.Mutex
	state     models.SettingsState
	listeners []subscription
	nextID    uint64
}

// NewStore returns a store initialised with models.DefaultSettings.
func NewStore() *Store {
	return &Store{state: models.DefaultSettings()}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() models.SettingsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn and returns a function that removes it.
// Listeners run synchronously, in registration order, outside the lock.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// SetTemperature stores max(0.1, v).
func (s *Store) SetTemperature(v float64) models.SettingsState {
	return s.update(func(st *models.SettingsState) {
		st.Temperature = atLeast(v, models.MinTemperature)
	})
}

// SetTopP stores max(0.1, v).
func (s *Store) SetTopP(v float64) models.SettingsState {
	return s.update(func(st *models.SettingsState) {
		st.TopP = atLeast(v, models.MinTopP)
	})
}

// SetVdbTopK stores max(1, v), raised to the current reranker depth.
func (s *Store) SetVdbTopK(v int) models.SettingsState {
	return s.update(func(st *models.SettingsState) {
		st.VdbTopK = max(v, models.MinTopK, st.RerankerTopK)
	})
}

// SetRerankerTopK stores max(1, v), capped at the current retrieval depth.
func (s *Store) SetRerankerTopK(v int) models.SettingsState {
	return s.update(func(st *models.SettingsState) {
		st.RerankerTopK = min(max(v, models.MinTopK), st.VdbTopK)
	})
}

// SetConfidenceScoreThreshold stores v clamped to [0, 1].
func (s *Store) SetConfidenceScoreThreshold(v float64) models.SettingsState {
	return s.update(func(st *models.SettingsState) {
		st.ConfidenceScoreThreshold = clamp(v, models.MinConfidenceThreshold, models.MaxConfidenceThreshold)
	})
}

// SetUseGuardrails toggles guardrails on generation requests.
func (s *Store) SetUseGuardrails(v bool) models.SettingsState {
	return s.update(func(st *models.SettingsState) {
		st.UseGuardrails = v
	})
}

// SetIncludeCitations toggles citations in responses.
func (s *Store) SetIncludeCitations(v bool) models.SettingsState {
	return s.update(func(st *models.SettingsState) {
		st.IncludeCitations = v
	})
}

// SetMetadataSchema replaces the schema with a copy of schema.
func (s *Store) SetMetadataSchema(schema []models.MetadataField) models.SettingsState {
	return s.update(func(st *models.SettingsState) {
		st.MetadataSchema = models.CloneMetadataSchema(schema)
	})
}

// Reset restores the defaults.
func (s *Store) Reset() models.SettingsState {
	return s.update(func(st *models.SettingsState) {
		*st = models.DefaultSettings()
	})
}

// Apply writes every field of next through the same clamping as the
// individual setters and notifies listeners once.
func (s *Store) Apply(next models.SettingsState) models.SettingsState {
	return s.update(func(st *models.SettingsState) {
		st.Temperature = atLeast(next.Temperature, models.MinTemperature)
		st.TopP = atLeast(next.TopP, models.MinTopP)
		// depth first so the reranker is capped against the new value
		st.VdbTopK = max(next.VdbTopK, models.MinTopK)
		st.RerankerTopK = min(max(next.RerankerTopK, models.MinTopK), st.VdbTopK)
		st.ConfidenceScoreThreshold = clamp(next.ConfidenceScoreThreshold, models.MinConfidenceThreshold, models.MaxConfidenceThreshold)
		st.UseGuardrails = next.UseGuardrails
		st.IncludeCitations = next.IncludeCitations
		st.MetadataSchema = models.CloneMetadataSchema(next.MetadataSchema)
	})
}

func (s *Store) update(mutate func(st *models.SettingsState)) models.SettingsState {
	s.mu.Lock()
	mutate(&s.state)
	snapshot := s.state.Clone()
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, sub := range listeners {
		sub.fn(snapshot.Clone())
	}
	return snapshot
}

func atLeast(v, lower float64) float64 {
	if math.IsNaN(v) {
		return lower
	}
	return math.Max(lower, v)
}

func clamp(v, lower, upper float64) float64 {
	if math.IsNaN(v) {
		return lower
	}
	return math.Max(lower, math.Min(upper, v))
}

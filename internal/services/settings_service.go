package services

import (
	"context"
	"sync"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"ragsettings/internal/events"
	"ragsettings/internal/models"
	"ragsettings/internal/settings"
)

// SettingsService exposes the session's settings store to the frontend.
// Every method fails with settings.ErrOutsideProvider before Startup and
// after Shutdown.
type SettingsService interface {
	Startup(ctx context.Context)
	Shutdown(ctx context.Context)
	Store() (*settings.Store, error)
	Get() (*models.SettingsState, error)
	SetTemperature(value float64) (*models.SettingsState, error)
	SetTopP(value float64) (*models.SettingsState, error)
	SetVdbTopK(value int) (*models.SettingsState, error)
	SetRerankerTopK(value int) (*models.SettingsState, error)
	SetConfidenceScoreThreshold(value float64) (*models.SettingsState, error)
	SetUseGuardrails(value bool) (*models.SettingsState, error)
	SetIncludeCitations(value bool) (*models.SettingsState, error)
	SetMetadataSchema(schema []models.MetadataField) (*models.SettingsState, error)
	Reset() (*models.SettingsState, error)
	GenerationRequest(messages []settings.RequestMessage) (*settings.GenerateRequest, error)
}

type settingsService struct {
	mu          sync.Mutex
	context     context.Context
	unsubscribe func()
}

func NewSettingsService() SettingsService {
	return &settingsService{}
}

// Startup mounts a fresh store for the UI session started with ctx.
func (s *settingsService) Startup(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil {
		s.unsubscribe()
	}

	ctx = events.WithSession(ctx, uuid.NewString())
	store := settings.NewStore()
	sessionCtx := settings.WithStore(ctx, store)
	s.context = sessionCtx
	s.unsubscribe = store.Subscribe(func(state models.SettingsState) {
		events.EmitSettings(sessionCtx, events.SettingsChanged, events.NewSettingsEvent(state))
	})
}

// Shutdown discards the store.
func (s *settingsService) Shutdown(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.context = nil
}

func (s *settingsService) sessionContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.context
}

func (s *settingsService) Store() (*settings.Store, error) {
	return settings.FromContext(s.sessionContext())
}

func (s *settingsService) Get() (*models.SettingsState, error) {
	store, err := s.Store()
	if err != nil {
		return nil, err
	}
	state := store.Snapshot()
	return &state, nil
}

func (s *settingsService) apply(f func(store *settings.Store) models.SettingsState) (*models.SettingsState, error) {
	store, err := s.Store()
	if err != nil {
		return nil, err
	}
	state := f(store)
	return &state, nil
}

func (s *settingsService) SetTemperature(value float64) (*models.SettingsState, error) {
	return s.apply(func(store *settings.Store) models.SettingsState { return store.SetTemperature(value) })
}

func (s *settingsService) SetTopP(value float64) (*models.SettingsState, error) {
	return s.apply(func(store *settings.Store) models.SettingsState { return store.SetTopP(value) })
}

func (s *settingsService) SetVdbTopK(value int) (*models.SettingsState, error) {
	return s.apply(func(store *settings.Store) models.SettingsState { return store.SetVdbTopK(value) })
}

func (s *settingsService) SetRerankerTopK(value int) (*models.SettingsState, error) {
	return s.apply(func(store *settings.Store) models.SettingsState { return store.SetRerankerTopK(value) })
}

func (s *settingsService) SetConfidenceScoreThreshold(value float64) (*models.SettingsState, error) {
	return s.apply(func(store *settings.Store) models.SettingsState { return store.SetConfidenceScoreThreshold(value) })
}

func (s *settingsService) SetUseGuardrails(value bool) (*models.SettingsState, error) {
	return s.apply(func(store *settings.Store) models.SettingsState { return store.SetUseGuardrails(value) })
}

func (s *settingsService) SetIncludeCitations(value bool) (*models.SettingsState, error) {
	return s.apply(func(store *settings.Store) models.SettingsState { return store.SetIncludeCitations(value) })
}

func (s *settingsService) SetMetadataSchema(schema []models.MetadataField) (*models.SettingsState, error) {
	return s.apply(func(store *settings.Store) models.SettingsState { return store.SetMetadataSchema(schema) })
}

// Reset restores the defaults and emits a reset event on the same session
// the store was read from.
func (s *settingsService) Reset() (*models.SettingsState, error) {
	ctx := s.sessionContext()
	store, err := settings.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	state := store.Reset()
	events.EmitSettings(ctx, events.SettingsReset, events.NewSettingsEvent(state))
	return &state, nil
}

// GenerationRequest builds the RAG server payload for messages using the
// current settings.
func (s *settingsService) GenerationRequest(messages []settings.RequestMessage) (*settings.GenerateRequest, error) {
	store, err := s.Store()
	if err != nil {
		return nil, err
	}

	history := make([]*schema.Message, 0, len(messages))
	for _, m := range messages {
		history = append(history, &schema.Message{Role: schema.RoleType(m.Role), Content: m.Content})
	}
	req, err := settings.RequestFromState(store.Snapshot(), history)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

package events

import (
	"time"

	"github.com/google/uuid"

	"ragsettings/internal/models"
)

const (
	SettingsChanged = "event:settings:changed"
	SettingsReset   = "event:settings:reset"
)

// SettingsEvent carries the settings state after a change.
type SettingsEvent struct {
	ID         string               `json:"id"`
	Settings   models.SettingsState `json:"settings"`
	Timestamp  time.Time            `json:"timestamp"`
	SessionKey string               `json:"sessionKey,omitempty"`
}

func NewSettingsEvent(state models.SettingsState) SettingsEvent {
	return SettingsEvent{
		ID:        uuid.NewString(),
		Settings:  state,
		Timestamp: time.Now(),
	}
}

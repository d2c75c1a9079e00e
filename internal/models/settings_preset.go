package models

import "time"

// SettingsPreset is a named snapshot of SettingsState saved on request.
// The live settings store is never written here implicitly.
type SettingsPreset struct {
	ID                       uint            `gorm:"primaryKey" json:"id"`
	Name                     string          `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Temperature              float64         `gorm:"not null" json:"temperature"`
	TopP                     float64         `gorm:"not null" json:"topP"`
	VdbTopK                  int             `gorm:"not null" json:"vdbTopK"`
	RerankerTopK             int             `gorm:"not null" json:"rerankerTopK"`
	ConfidenceScoreThreshold float64         `gorm:"not null;default:0" json:"confidenceScoreThreshold"`
	UseGuardrails            bool            `gorm:"not null;default:false" json:"useGuardrails"`
	IncludeCitations         bool            `gorm:"not null;default:true" json:"includeCitations"`
	MetadataSchema           []MetadataField `gorm:"serializer:json;type:text" json:"metadataSchema"`
	CreatedAt                time.Time       `json:"createdAt"`
	UpdatedAt                time.Time       `json:"updatedAt"`
}

// NewSettingsPreset captures state under name.
func NewSettingsPreset(name string, state SettingsState) *SettingsPreset {
	return &SettingsPreset{
		Name:                     name,
		Temperature:              state.Temperature,
		TopP:                     state.TopP,
		VdbTopK:                  state.VdbTopK,
		RerankerTopK:             state.RerankerTopK,
		ConfidenceScoreThreshold: state.ConfidenceScoreThreshold,
		UseGuardrails:            state.UseGuardrails,
		IncludeCitations:         state.IncludeCitations,
		MetadataSchema:           CloneMetadataSchema(state.MetadataSchema),
	}
}

// State returns the settings stored in the preset, unclamped.
func (p *SettingsPreset) State() SettingsState {
	return SettingsState{
		Temperature:              p.Temperature,
		TopP:                     p.TopP,
		VdbTopK:                  p.VdbTopK,
		RerankerTopK:             p.RerankerTopK,
		ConfidenceScoreThreshold: p.ConfidenceScoreThreshold,
		UseGuardrails:            p.UseGuardrails,
		IncludeCitations:         p.IncludeCitations,
		MetadataSchema:           CloneMetadataSchema(p.MetadataSchema),
	}
}

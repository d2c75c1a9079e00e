package models

// MetadataFieldType is the value type of a user-defined metadata field.
type MetadataFieldType string

const (
	MetadataString   MetadataFieldType = "string"
	MetadataDatetime MetadataFieldType = "datetime"
)

// MetadataField describes one entry of the metadata schema used for
// filtering and display. Entries are not validated.
type MetadataField struct {
	Name     string            `json:"name"`
	Type     MetadataFieldType `json:"type"`
	Optional bool              `json:"optional,omitempty"`
}

const (
	DefaultTemperature         = 0.5
	DefaultTopP                = 0.9
	DefaultVdbTopK             = 100
	DefaultRerankerTopK        = 10
	DefaultConfidenceThreshold = 0.0

	MinTemperature         = 0.1
	MinTopP                = 0.1
	MinTopK                = 1
	MinConfidenceThreshold = 0.0
	MaxConfidenceThreshold = 1.0
)

// SettingsState is the generation and retrieval configuration shared by the UI.
type SettingsState struct {
	Temperature              float64         `json:"temperature"`
	TopP                     float64         `json:"topP"`
	VdbTopK                  int             `json:"vdbTopK"`
	RerankerTopK             int             `json:"rerankerTopK"`
	ConfidenceScoreThreshold float64         `json:"confidenceScoreThreshold"`
	UseGuardrails            bool            `json:"useGuardrails"`
	IncludeCitations         bool            `json:"includeCitations"`
	MetadataSchema           []MetadataField `json:"metadataSchema"`
}

// DefaultSettings returns the state a freshly mounted store starts with.
func DefaultSettings() SettingsState {
	return SettingsState{
		Temperature:              DefaultTemperature,
		TopP:                     DefaultTopP,
		VdbTopK:                  DefaultVdbTopK,
		RerankerTopK:             DefaultRerankerTopK,
		ConfidenceScoreThreshold: DefaultConfidenceThreshold,
		UseGuardrails:            false,
		IncludeCitations:         true,
		MetadataSchema:           []MetadataField{},
	}
}

// Clone returns a copy that shares no slice memory with s.
func (s SettingsState) Clone() SettingsState {
	out := s
	out.MetadataSchema = CloneMetadataSchema(s.MetadataSchema)
	return out
}

// CloneMetadataSchema copies schema; a nil schema becomes an empty one.
func CloneMetadataSchema(schema []MetadataField) []MetadataField {
	out := make([]MetadataField, len(schema))
	copy(out, schema)
	return out
}

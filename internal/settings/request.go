package settings

import (
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"ragsettings/internal/models"
)

// RequestMessage is a chat turn as the RAG server expects it.
type RequestMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateRequest is the payload of the RAG server's generate endpoint.
type GenerateRequest struct {
	Messages            []RequestMessage `json:"messages"`
	UseKnowledgeBase    bool             `json:"use_knowledge_base"`
	Temperature         float64          `json:"temperature"`
	TopP                float64          `json:"top_p"`
	VdbTopK             int              `json:"vdb_top_k"`
	RerankerTopK        int              `json:"reranker_top_k"`
	ConfidenceThreshold float64          `json:"confidence_threshold"`
	EnableReranker      bool             `json:"enable_reranker"`
	EnableGuardrails    bool             `json:"enable_guardrails"`
	EnableCitations     bool             `json:"enable_citations"`
	FilterExpr          string           `json:"filter_expr"`
}

// RequestFromState maps state and the conversation onto a generate request.
// Roles are trimmed and lowercased and must be user, assistant or system;
// assistant turns with blank content are then dropped.
func RequestFromState(state models.SettingsState, messages []*schema.Message) (GenerateRequest, error) {
	history := make([]RequestMessage, 0, len(messages))
	for _, m := range messages {
		if m == nil {
			continue
		}
		role, err := normalizeRole(m.Role)
		if err != nil {
			return GenerateRequest{}, err
		}
		if role == schema.Assistant && strings.TrimSpace(m.Content) == "" {
			continue
		}
		history = append(history, RequestMessage{Role: string(role), Content: m.Content})
	}

	return GenerateRequest{
		Messages:            history,
		UseKnowledgeBase:    true,
		Temperature:         state.Temperature,
		TopP:                state.TopP,
		VdbTopK:             state.VdbTopK,
		RerankerTopK:        state.RerankerTopK,
		ConfidenceThreshold: state.ConfidenceScoreThreshold,
		EnableReranker:      state.RerankerTopK > 0,
		EnableGuardrails:    state.UseGuardrails,
		EnableCitations:     state.IncludeCitations,
	}, nil
}

func normalizeRole(role schema.RoleType) (schema.RoleType, error) {
	switch r := schema.RoleType(strings.ToLower(strings.TrimSpace(string(role)))); r {
	case schema.User, schema.Assistant, schema.System:
		return r, nil
	default:
		return "", fmt.Errorf("invalid message role %q: want user, assistant or system", string(role))
	}
}

package planner

import (
	"encoding/json"
	"strings"
)

// chatEnvelope is the structured payload the chat prompt asks the model to
// produce. Only chat_response is consumed.
type chatEnvelope struct {
	ChatResponse string `json:"chat_response"`
}

// parseChatResponse interprets a raw model reply as a chat envelope.
//
// It is a two-branch result, not error-driven control flow: the second return
// reports whether the structured branch was taken. A reply that is not valid
// JSON, or is valid JSON without a non-empty chat_response field, falls back
// to the raw trimmed text verbatim.
func parseChatResponse(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)

	var env chatEnvelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return trimmed, false
	}
	if env.ChatResponse == "" {
		return trimmed, false
	}
	return env.ChatResponse, true
}

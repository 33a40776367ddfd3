package ai

import (
	"context"
	"encoding/json"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest describes a single completion call. JSON asks the provider for a JSON-only reply;
// Schema, when set, constrains that reply on providers that support response schemas.
type ChatRequest struct {
	Messages    []Message
	Temperature float64
	JSON        bool
	Schema      json.RawMessage
}

type Client interface {
	Chat(ctx context.Context, request ChatRequest) (string, []byte, error)
}

func resolveMaxTokens(value int) int {
	if value > 0 {
		return value
	}

	return defaultMaxTokens
}

func resolveTemperature(value float64) float64 {
	if value > 0 {
		return value
	}

	return defaultTemperature
}

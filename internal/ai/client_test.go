package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestGeminiClientJSONMode проверяет формат запроса и разбор ответа Gemini.
func TestGeminiClientJSONMode(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"breakdown\":"},{"text":"[]}"}]}}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient("key", server.URL+"/", "test-model", time.Second, 0)
	text, _, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: "system", Content: "be brief"}, {Role: "user", Content: "estimate"}},
		JSON:     true,
		Schema:   json.RawMessage(breakdownResponseSchema),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != `{"breakdown":[]}` {
		t.Fatalf("unexpected text: %q", text)
	}
	if captured.GenerationConfig.ResponseMimeType != "application/json" {
		t.Fatalf("expected json mime type, got %q", captured.GenerationConfig.ResponseMimeType)
	}
	var schema struct {
		Type     string   `json:"type"`
		Required []string `json:"required"`
	}
	if err := json.Unmarshal(captured.GenerationConfig.ResponseSchema, &schema); err != nil {
		t.Fatalf("expected response schema in request: %v", err)
	}
	if schema.Type != "OBJECT" || len(schema.Required) != 1 || schema.Required[0] != "breakdown" {
		t.Fatalf("unexpected response schema: %+v", schema)
	}
	if captured.SystemInstruction == nil || len(captured.Contents) != 1 {
		t.Fatalf("unexpected request shape: %+v", captured)
	}
	if captured.GenerationConfig.MaxOutputTokens != defaultMaxTokens {
		t.Fatalf("expected default max tokens, got %d", captured.GenerationConfig.MaxOutputTokens)
	}
}

// TestGeminiClientAPIError проверяет ошибку API Gemini.
func TestGeminiClientAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	client := NewGeminiClient("key", server.URL, "m", time.Second, 0)
	_, _, err := client.Chat(context.Background(), ChatRequest{Messages: []Message{{Role: "user", Content: "hi"}}})
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected api error, got %v", err)
	}
}

// TestGeminiClientTextModeOmitsSchema проверяет, что без JSON-режима схема не уходит.
func TestGeminiClientTextModeOmitsSchema(t *testing.T) {
	var raw map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &raw)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello"}]}}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient("key", server.URL, "m", time.Second, 0)
	text, _, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
		Schema:   json.RawMessage(breakdownResponseSchema),
	})
	if err != nil || text != "Hello" {
		t.Fatalf("unexpected result: %q, %v", text, err)
	}
	if strings.Contains(string(raw["generationConfig"]), "responseSchema") {
		t.Fatalf("schema must be sent only in json mode: %s", raw["generationConfig"])
	}
}

// TestGroqClientTextMode проверяет запрос Groq без JSON-режима.
func TestGroqClientTextMode(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("missing bearer token")
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer server.Close()

	client := NewGroqClient("key", server.URL, "m", time.Second, 128)
	text, _, err := client.Chat(context.Background(), ChatRequest{
		Messages:    []Message{{Role: "user", Content: "hi"}},
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello" {
		t.Fatalf("unexpected text: %q", text)
	}
	if _, ok := captured["response_format"]; ok {
		t.Fatal("text request must not set response_format")
	}
	if captured["temperature"] != 0.7 {
		t.Fatalf("unexpected temperature: %v", captured["temperature"])
	}
}

// TestClientsRequireKey проверяет отказ без API-ключа.
func TestClientsRequireKey(t *testing.T) {
	request := ChatRequest{Messages: []Message{{Role: "user", Content: "hi"}}}

	if _, _, err := NewGeminiClient("", "http://localhost", "m", time.Second, 0).Chat(context.Background(), request); err == nil {
		t.Fatal("expected gemini key error")
	}
	if _, _, err := NewGroqClient(" ", "http://localhost", "m", time.Second, 0).Chat(context.Background(), request); err == nil {
		t.Fatal("expected groq key error")
	}
}

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const geminiJSONMimeType = "application/json"

var (
	errGeminiKeyMissing = errors.New("gemini api key is missing")
	errGeminiNoContent  = errors.New("gemini request has no user content")
	errGeminiNoAnswer   = errors.New("gemini response has no candidate text")
)

// GeminiClient ходит в Generative Language API.
type GeminiClient struct {
	apiKey     string
	endpoint   string
	maxTokens  int
	httpClient *http.Client
}

type geminiRequest struct {
	SystemInstruction *geminiContent   `json:"systemInstruction,omitempty"`
	Contents          []geminiContent  `json:"contents"`
	GenerationConfig  geminiGeneration `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGeneration struct {
	Temperature      float64         `json:"temperature,omitempty"`
	MaxOutputTokens  int             `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewGeminiClient создает клиент Gemini для модели model.
func NewGeminiClient(apiKey, baseURL, model string, timeout time.Duration, maxTokens int) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		endpoint:   fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(baseURL, "/"), model),
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Chat отправляет разговор в Gemini. В JSON-режиме к запросу прикладывается схема ответа.
func (c *GeminiClient) Chat(ctx context.Context, chat ChatRequest) (string, []byte, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", nil, errGeminiKeyMissing
	}

	request, err := c.buildRequest(chat)
	if err != nil {
		return "", nil, err
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return "", nil, err
	}

	body, status, err := c.post(ctx, payload)
	if err != nil {
		return "", body, err
	}

	text, err := decodeGeminiAnswer(body, status)
	return text, body, err
}

func (c *GeminiClient) buildRequest(chat ChatRequest) (geminiRequest, error) {
	request := geminiRequest{
		GenerationConfig: geminiGeneration{
			Temperature:     resolveTemperature(chat.Temperature),
			MaxOutputTokens: resolveMaxTokens(c.maxTokens),
		},
	}

	var system []geminiPart
	for _, message := range chat.Messages {
		text := strings.TrimSpace(message.Content)
		if text == "" {
			continue
		}

		part := geminiPart{Text: text}
		switch strings.ToLower(strings.TrimSpace(message.Role)) {
		case "system":
			system = append(system, part)
		case "assistant", "model":
			request.Contents = append(request.Contents, geminiContent{Role: "model", Parts: []geminiPart{part}})
		default:
			request.Contents = append(request.Contents, geminiContent{Role: "user", Parts: []geminiPart{part}})
		}
	}

	if len(request.Contents) == 0 {
		return geminiRequest{}, errGeminiNoContent
	}
	if len(system) > 0 {
		request.SystemInstruction = &geminiContent{Role: "system", Parts: system}
	}

	if chat.JSON {
		request.GenerationConfig.ResponseMimeType = geminiJSONMimeType
		if len(chat.Schema) > 0 {
			request.GenerationConfig.ResponseSchema = chat.Schema
		}
	}

	return request, nil
}

func (c *GeminiClient) post(ctx context.Context, payload []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+c.apiKey, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, response.StatusCode, err
	}
	return body, response.StatusCode, nil
}

func decodeGeminiAnswer(body []byte, status int) (string, error) {
	var parsed geminiResponse
	decodeErr := json.Unmarshal(body, &parsed)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		if decodeErr == nil && parsed.Error != nil {
			return "", fmt.Errorf("gemini api error: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("gemini api error: %s", strings.TrimSpace(string(body)))
	}
	if decodeErr != nil {
		return "", decodeErr
	}

	var builder strings.Builder
	for _, candidate := range parsed.Candidates {
		for _, part := range candidate.Content.Parts {
			builder.WriteString(part.Text)
		}
		if builder.Len() > 0 {
			break
		}
	}

	if builder.Len() == 0 {
		return "", errGeminiNoAnswer
	}
	return builder.String(), nil
}

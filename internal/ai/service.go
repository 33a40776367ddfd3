package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"example.com/event-planner/backend/internal/models"
)

const (
	DefaultAdviceTemperature = 0.7

	adviceSystemInstruction = `You are 'EverAfter AI', a world-class luxury event planner.
You help users with planning weddings, burials (memorials), naming ceremonies, graduations, coronations, birthdays, and job promotions.
Be warm, respectful (especially for memorials), and sophisticated.
Provide structured advice for itineraries, speeches (vows, eulogies, commencement, acceptance), and themes.`

	emptyAdviceText = "I'm sorry, I couldn't generate a suggestion right now. Let's try another idea!"
)

var (
	ErrNoClient        = errors.New("ai client is not configured")
	ErrNoJSON          = errors.New("ai response does not contain json")
	breakdownValidator = mustCompileSchema(breakdownSchemaURL, breakdownSchema)
)

type Service struct {
	client            Client
	adviceTemperature float64
}

// NewService создает сервис работы с AI-клиентом.
func NewService(client Client, adviceTemperature float64) *Service {
	if adviceTemperature <= 0 {
		adviceTemperature = DefaultAdviceTemperature
	}
	return &Service{client: client, adviceTemperature: adviceTemperature}
}

// EstimateBudget запрашивает у AI разбивку бюджета и проверяет ответ по схеме.
func (s *Service) EstimateBudget(ctx context.Context, totalBudget float64, eventType string) ([]models.BreakdownItem, error) {
	if s.client == nil {
		return nil, ErrNoClient
	}

	messages := []Message{
		{Role: "user", Content: buildEstimatePrompt(totalBudget, eventType)},
	}

	content, _, err := s.client.Chat(ctx, ChatRequest{
		Messages: messages,
		JSON:     true,
		Schema:   json.RawMessage(breakdownResponseSchema),
	})
	if err != nil {
		return nil, err
	}

	response, err := parseBreakdown(content)
	if err != nil {
		return nil, err
	}

	normalizeBreakdown(&response)
	return response.Breakdown, nil
}

// Advice возвращает свободный совет планировщика. Пустой ответ заменяется вежливой заглушкой.
func (s *Service) Advice(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrNoClient
	}

	messages := []Message{
		{Role: "system", Content: adviceSystemInstruction},
		{Role: "user", Content: prompt},
	}

	content, _, err := s.client.Chat(ctx, ChatRequest{Messages: messages, Temperature: s.adviceTemperature})
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(content) == "" {
		return emptyAdviceText, nil
	}
	return content, nil
}

func buildEstimatePrompt(totalBudget float64, eventType string) string {
	return fmt.Sprintf(
		"Provide a detailed percentage breakdown for a %s with a total budget of $%s. Return as JSON.",
		eventType,
		strconv.FormatFloat(totalBudget, 'f', -1, 64),
	)
}

func parseBreakdown(content string) (BreakdownResponse, error) {
	payload := extractJSON(content)
	if payload == "" {
		return BreakdownResponse{}, ErrNoJSON
	}

	var document any
	if err := json.Unmarshal([]byte(payload), &document); err != nil {
		return BreakdownResponse{}, fmt.Errorf("ai response is not valid json: %w", err)
	}
	if err := breakdownValidator.Validate(document); err != nil {
		return BreakdownResponse{}, fmt.Errorf("ai breakdown schema validation failed: %w", err)
	}

	var response BreakdownResponse
	if err := json.Unmarshal([]byte(payload), &response); err != nil {
		return BreakdownResponse{}, err
	}
	return response, nil
}

func normalizeBreakdown(response *BreakdownResponse) {
	if response.Breakdown == nil {
		response.Breakdown = []models.BreakdownItem{}
	}
	for i := range response.Breakdown {
		response.Breakdown[i].Category = strings.TrimSpace(response.Breakdown[i].Category)
	}
}

func extractJSON(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimPrefix(strings.TrimSpace(trimmed), "json")
		trimmed = strings.TrimSpace(trimmed)
		if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		trimmed = strings.TrimSpace(trimmed)
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return trimmed[start : end+1]
}

func mustCompileSchema(url, schema string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(url, strings.NewReader(schema)); err != nil {
		panic(fmt.Sprintf("ai schema load failed: %v", err))
	}
	compiled, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("ai schema compile failed: %v", err))
	}
	return compiled
}

package ai

import "example.com/event-planner/backend/internal/models"

const breakdownSchemaURL = "https://everafter.schemas.local/ai/breakdown.schema.json"

const breakdownSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["breakdown"],
  "properties": {
    "breakdown": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["category", "amount", "percentage"],
        "properties": {
          "category": {"type": "string"},
          "amount": {"type": "number"},
          "percentage": {"type": "number"}
        }
      }
    }
  }
}`

// breakdownResponseSchema задает ту же форму в подмножестве OpenAPI, которое принимает Gemini.
const breakdownResponseSchema = `{
  "type": "OBJECT",
  "properties": {
    "breakdown": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "category": {"type": "STRING"},
          "amount": {"type": "NUMBER"},
          "percentage": {"type": "NUMBER"}
        },
        "required": ["category", "amount", "percentage"]
      }
    }
  },
  "required": ["breakdown"]
}`

type BreakdownResponse struct {
	Breakdown []models.BreakdownItem `json:"breakdown"`
}

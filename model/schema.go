package model

import "fmt"

// DocumentSchema builds the response schema for a DPP document. The exact
// question count lives in the field description only: it steers the model
// but is not structurally enforced, so callers must still check what came
// back.
func DocumentSchema(totalQuestions int) *Schema {
	return &Schema{
		Name:        "dpp-document",
		Description: "A Daily Practice Problem worksheet with a topic, instructions and a numbered question list",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic": map[string]any{
					"type":        "string",
					"description": "The topic of the worksheet, as given in the request",
				},
				"language": map[string]any{
					"type":        "string",
					"description": "The language every question is written in",
				},
				"instructions": map[string]any{
					"type":        "string",
					"description": "Instructions shown to the student at the top of the worksheet",
				},
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"text": map[string]any{
								"type":        "string",
								"description": "The full question text",
							},
						},
						"required":             []any{"text"},
						"additionalProperties": false,
					},
					"description": fmt.Sprintf("A list of exactly %d questions.", totalQuestions),
				},
			},
			"required":             []any{"topic", "language", "instructions", "questions"},
			"additionalProperties": false,
		},
	}
}

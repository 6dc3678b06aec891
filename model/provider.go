package model

import (
	"context"
	"encoding/json"
)

// Provider is the capability the pipeline needs from an LLM: generate
// structured output matching a schema, given instructions. The concrete
// vendor can be swapped without touching the orchestration.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Request describes a single schema-constrained generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// User is the instruction for this request. Single-turn only.
	User string

	// Schema is the JSON shape the response must conform to.
	Schema *Schema

	// MaxTokens caps the completion size.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0.
	Temperature float64
}

// Schema names a JSON Schema definition for structured output.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the JSON object produced under the request schema.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

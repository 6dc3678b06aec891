package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dppify/logger"
	"dppify/model"
	"dppify/prompts"
	"dppify/types"

	"github.com/google/uuid"
	"github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"
)

// maxCompletionTokens caps the model response; a full worksheet fits well
// within this.
const maxCompletionTokens = 40000

// Renderer turns a generated document into a PDF file on disk.
type Renderer interface {
	Render(doc types.Document, outputFilePath string) error
}

// Agent runs the worksheet pipeline: select prompt, call the model,
// validate the response, render the PDF. First failure aborts the run.
type Agent struct {
	provider model.Provider
	library  *prompts.Library
	renderer Renderer
	outDir   string
	logger   *zap.Logger
}

func New(provider model.Provider, library *prompts.Library, renderer Renderer, outDir string) *Agent {
	return &Agent{
		provider: provider,
		library:  library,
		renderer: renderer,
		outDir:   outDir,
		logger:   logger.Get(),
	}
}

// Run executes the four pipeline stages for one request and returns the
// path of the rendered PDF along with the number of questions actually
// generated. Pipeline error kinds pass through unchanged; anything else
// comes back wrapped as an unexpected failure.
func (a *Agent) Run(ctx context.Context, params types.DPPParams) (*types.RunResult, error) {
	start := time.Now()

	system, err := a.library.Select(params.QuestionType)
	if err != nil {
		return nil, err
	}

	user := buildUserPrompt(params)
	if count, err := countTokens(system + user); err == nil {
		a.logger.Debug("prompt assembled",
			zap.String("topic", params.TopicName),
			zap.Int("prompt_tokens", count))
	}

	resp, err := a.provider.Generate(ctx, model.Request{
		System:    system,
		User:      user,
		Schema:    model.DocumentSchema(params.TotalQuestions),
		MaxTokens: maxCompletionTokens,
	})
	if err != nil {
		return nil, types.NewGenerationError(err)
	}

	var doc types.Document
	if err := json.Unmarshal(resp.Content, &doc); err != nil {
		return nil, types.NewGenerationError(fmt.Errorf("malformed model response: %w", err))
	}

	if len(doc.Questions) == 0 {
		return nil, types.NewEmptyGenerationError()
	}

	// The prompt demands an exact count but the schema cannot enforce it.
	// Render whatever came back and surface the real count to the caller.
	if len(doc.Questions) != params.TotalQuestions {
		a.logger.Warn("question count differs from request",
			zap.Int("requested", params.TotalQuestions),
			zap.Int("returned", len(doc.Questions)))
	}

	outputPath := filepath.Join(a.outDir, fmt.Sprintf("dpp_%s.pdf", uuid.New().String()))
	if err := a.renderer.Render(doc, outputPath); err != nil {
		if rmErr := os.Remove(outputPath); rmErr != nil && !os.IsNotExist(rmErr) {
			a.logger.Warn("failed to remove partial pdf", zap.String("path", outputPath), zap.Error(rmErr))
		}
		return nil, types.NewUnexpectedError(err)
	}

	a.logger.Info("worksheet generated",
		zap.String("topic", params.TopicName),
		zap.Int("questions", len(doc.Questions)),
		zap.String("path", outputPath),
		zap.Duration("took", time.Since(start)))

	return &types.RunResult{
		PDFPath:       outputPath,
		QuestionCount: len(doc.Questions),
	}, nil
}

func buildUserPrompt(params types.DPPParams) string {
	return fmt.Sprintf(`Generate a Daily Practice Problem (DPP) sheet with ABSOLUTE PRECISION using ONLY the following specifications:

TOPIC: %s
LANGUAGE: %s
EXACT QUESTION COUNT: %d (non-negotiable - must be exactly this number)
DIFFICULTY: %s
ADDITIONAL INSTRUCTIONS: %s

CRITICAL EXECUTION RULES:
1. FOLLOW ADDITIONAL INSTRUCTIONS TO THE LETTER - These override all other considerations
2. Generate EXACTLY %d questions - no more, no less (validate count before output)
3. All content MUST be in %s without any exceptions
4. Difficulty level %s must be consistently maintained throughout
5. Structure MUST include:
   - Topic header with %s
   - Clear instructions section incorporating ALL additional instructions
   - Numbered questions (1 to %d) with no extra content

OUTPUT REQUIREMENTS:
- Respond with exactly one JSON object matching the requested schema
- The 'questions' array must contain exactly %d items
- NO explanations, disclaimers, or extra text
- STRICTLY follow additional instructions above all else`,
		params.TopicName, params.Language, params.TotalQuestions, params.Level,
		params.AdditionalInstruction,
		params.TotalQuestions, params.Language, params.Level,
		params.TopicName, params.TotalQuestions,
		params.TotalQuestions)
}

func countTokens(text string) (int, error) {
	enc, err := tiktoken.EncodingForModel("gpt-3.5-turbo")
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(text, nil, nil)), nil
}

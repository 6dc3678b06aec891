package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"dppify/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWritesValidPDF(t *testing.T) {
	doc := types.Document{
		Topic:        "algebra",
		Language:     "English",
		Instructions: "Answer all questions. Show your working.",
		Questions: []types.Question{
			{Text: "Solve for x: 2x + 3 = 11."},
			{Text: "Factorise x^2 - 5x + 6."},
			{Text: "If f(x) = 3x - 2, what is f(4)? (A) 10 (B) 12 (C) 14 (D) 8"},
		},
	}

	outputPath := filepath.Join(t.TempDir(), "dpp_render_test.pdf")
	require.NoError(t, NewRenderer(DefaultConfig()).Render(doc, outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderNoInstructions(t *testing.T) {
	doc := types.Document{
		Topic:     "Geometry",
		Language:  "English",
		Questions: []types.Question{{Text: "What is the sum of the interior angles of a triangle?"}},
	}

	outputPath := filepath.Join(t.TempDir(), "dpp_no_instructions.pdf")
	require.NoError(t, NewRenderer(DefaultConfig()).Render(doc, outputPath))
	assert.FileExists(t, outputPath)
}

func TestRenderBadOutputPath(t *testing.T) {
	doc := types.Document{
		Topic:     "Algebra",
		Questions: []types.Question{{Text: "Solve for x: x + 1 = 2."}},
	}

	err := NewRenderer(DefaultConfig()).Render(doc, filepath.Join(t.TempDir(), "missing", "out.pdf"))
	assert.Error(t, err)
}

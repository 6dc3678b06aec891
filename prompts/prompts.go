package prompts

import (
	"os"
	"path/filepath"
	"strings"

	"dppify/types"
)

// templateFiles maps a normalized question-type label to its template file.
var templateFiles = map[string]string{
	"onlymcq": "only_mcq_system_prompt.txt",
	"onlysaq": "only_saq_system_prompt.txt",
	"both":    "both_questions_system_prompt.txt",
}

// Library holds the system prompt templates, read once at startup.
// A template file that was missing at load time is reported by Select,
// not by Load, so one broken template only fails the requests that need it.
type Library struct {
	dir       string
	templates map[string]string
}

// Load reads every known template from dir. Missing or unreadable files
// are left out of the library.
func Load(dir string) *Library {
	lib := &Library{
		dir:       dir,
		templates: make(map[string]string, len(templateFiles)),
	}
	for key, name := range templateFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		lib.templates[key] = string(data)
	}
	return lib
}

// Select returns the system prompt for the given question-type label.
// Matching is case-insensitive and ignores spaces; unmapped labels fall
// back to the "both" template.
func (l *Library) Select(questionType string) (string, error) {
	key := normalize(questionType)
	if _, ok := templateFiles[key]; !ok {
		key = "both"
	}
	tmpl, ok := l.templates[key]
	if !ok {
		return "", types.NewPromptNotFoundError(filepath.Join(l.dir, templateFiles[key]))
	}
	return tmpl, nil
}

func normalize(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "")
}

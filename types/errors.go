package types

import "fmt"

// ErrorKind classifies pipeline failures so the HTTP layer can pick a status.
type ErrorKind string

const (
	KindPromptNotFound  ErrorKind = "PROMPT_NOT_FOUND"
	KindGeneration      ErrorKind = "GENERATION_FAILED"
	KindEmptyGeneration ErrorKind = "EMPTY_GENERATION"
	KindUpload          ErrorKind = "UPLOAD_FAILED"
	KindUnexpected      ErrorKind = "UNEXPECTED"
)

// PipelineError is a failure of one pipeline stage. None of the kinds are
// retried; the first one aborts the whole request.
type PipelineError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PipelineError) Unwrap() error { return e.Err }

func NewPromptNotFoundError(path string) *PipelineError {
	return &PipelineError{
		Kind:    KindPromptNotFound,
		Message: fmt.Sprintf("could not find the required prompt file: %s", path),
	}
}

func NewGenerationError(err error) *PipelineError {
	return &PipelineError{
		Kind:    KindGeneration,
		Message: "failed to get a response from the AI model, check your API key and network connection",
		Err:     err,
	}
}

func NewEmptyGenerationError() *PipelineError {
	return &PipelineError{
		Kind:    KindEmptyGeneration,
		Message: "the AI model failed to generate questions, try again with a different topic or settings",
	}
}

func NewUploadError(msg string, err error) *PipelineError {
	return &PipelineError{
		Kind:    KindUpload,
		Message: msg,
		Err:     err,
	}
}

func NewUnexpectedError(err error) *PipelineError {
	return &PipelineError{
		Kind:    KindUnexpected,
		Message: "an unexpected error occurred",
		Err:     err,
	}
}

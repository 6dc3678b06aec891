package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Validater interface {
	Validate() map[string]string
}

// DPPParams is the JSON body of a worksheet generation request.
type DPPParams struct {
	TopicName             string `json:"topic_name" validate:"required"`
	QuestionType          string `json:"question_type" validate:"required,oneof='only MCQ' 'only SAQ' 'both'"`
	TotalQuestions        int    `json:"total_q" validate:"required,gt=0"`
	Level                 string `json:"level" validate:"required,oneof='Easy' 'Medium' 'Hard' 'Very hard'"`
	Language              string `json:"dpp_language" validate:"required,oneof='English' 'Bengali' 'Hindi'"`
	AdditionalInstruction string `json:"additional_instruction"`
}

func Validate(v Validater) map[string]string {
	return v.Validate()
}

func (params *DPPParams) Validate() map[string]string {
	validate := validator.New()
	if err := validate.Struct(params); err != nil {
		errs := err.(validator.ValidationErrors)
		errors := make(map[string]string)
		for _, e := range errs {
			errors[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return errors
	}
	return nil
}

// Question is a single entry of the generated worksheet.
type Question struct {
	Text string `json:"text"`
}

// Document is the structured content returned by the model,
// consumed once by the PDF renderer.
type Document struct {
	Topic        string     `json:"topic"`
	Language     string     `json:"language"`
	Instructions string     `json:"instructions"`
	Questions    []Question `json:"questions"`
}

// QuestionTexts returns the plain text of each question in response order.
func (d *Document) QuestionTexts() []string {
	texts := make([]string, len(d.Questions))
	for i, q := range d.Questions {
		texts[i] = q.Text
	}
	return texts
}

// RunResult is what a successful pipeline run hands back to the handler.
type RunResult struct {
	PDFPath       string
	QuestionCount int
}

// DPPResponse is the success body of the generation endpoint.
type DPPResponse struct {
	PDFURL        string `json:"pdf_url"`
	QuestionCount int    `json:"question_count"`
}

package api

import (
	"context"

	"dppify/types"

	"github.com/gofiber/fiber/v2"
)

// PipelineRunner produces a worksheet PDF for validated request params.
type PipelineRunner interface {
	Run(ctx context.Context, params types.DPPParams) (*types.RunResult, error)
}

// FileUploader ships a local file to the public host and returns a
// download URL. It owns the file from the moment it is called.
type FileUploader interface {
	Upload(filePath string) (string, error)
}

type DPPHandler struct {
	runner   PipelineRunner
	uploader FileUploader
}

func NewDPPHandler(runner PipelineRunner, uploader FileUploader) *DPPHandler {
	return &DPPHandler{
		runner:   runner,
		uploader: uploader,
	}
}

// HandleGenerateDPP runs the whole pipeline synchronously inside the
// request: generate, render, upload, respond with the download URL.
func (h *DPPHandler) HandleGenerateDPP(c *fiber.Ctx) error {
	var params types.DPPParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewValidationError(errors)
	}

	result, err := h.runner.Run(c.UserContext(), params)
	if err != nil {
		return err
	}

	url, err := h.uploader.Upload(result.PDFPath)
	if err != nil {
		return err
	}

	return c.JSON(types.DPPResponse{
		PDFURL:        url,
		QuestionCount: result.QuestionCount,
	})
}

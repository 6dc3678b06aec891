package api

import (
	"errors"
	"fmt"

	"dppify/types"

	"github.com/gofiber/fiber/v2"
)

func ErrorHandler(c *fiber.Ctx, err error) error {
	var pipeErr *types.PipelineError
	if errors.As(err, &pipeErr) {
		return c.Status(statusForKind(pipeErr.Kind)).JSON(Error{
			Code:    string(pipeErr.Kind),
			Message: pipeErr.Error(),
		})
	}

	if apiErr, ok := err.(Error); ok {
		return c.Status(apiErr.Status).JSON(apiErr)
	}

	if valErr, ok := err.(ValidationError); ok {
		return c.Status(valErr.Status).JSON(valErr)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(Error{Code: "HTTP_ERROR", Message: fiberErr.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(Error{
		Code:    string(types.KindUnexpected),
		Message: err.Error(),
	})
}

func statusForKind(kind types.ErrorKind) int {
	switch kind {
	case types.KindGeneration, types.KindEmptyGeneration, types.KindUpload:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

// Error implements the error interface
func (e Error) Error() string {
	return e.Message
}

func NewError(status int, code, err string) Error {
	return Error{
		Status:  status,
		Code:    code,
		Message: err,
	}
}

func ErrBadRequest() Error {
	return Error{
		Status:  fiber.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "invalid JSON request",
	}
}

func ErrNotFound[T any](arg T, resource string) Error {
	return Error{
		Status:  fiber.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with %v not found", resource, arg),
	}
}

type ValidationError struct {
	Status int               `json:"status"`
	Errors map[string]string `json:"errors"`
}

func (e ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(errors map[string]string) ValidationError {
	return ValidationError{
		Status: fiber.StatusUnprocessableEntity,
		Errors: errors,
	}
}

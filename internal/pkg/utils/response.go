package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nhero-website/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total  int    `json:"total,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// SubmissionOK is the flat success body of the two lead endpoints.
type SubmissionOK struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmissionError is the flat error body of the two lead endpoints.
// Fields carries per-field validation messages when the request parsed
// but failed a field rule.
type SubmissionError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

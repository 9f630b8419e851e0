package server

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-studio/internal/pipeline"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/templates"
)

// BadRequestError indicates the request body could not be decoded or failed
// field validation.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

// HTTPStatus maps an error to the appropriate HTTP status code.
func HTTPStatus(err error) int {
	var notFound *templates.ErrTemplateNotFound
	var invalid *schemas.ValidationError
	var badReq *BadRequestError
	var renderFailed *pipeline.RenderFailedError
	switch {
	case errors.As(err, &badReq):
		return 400
	case errors.As(err, &notFound):
		return 400
	case errors.As(err, &invalid):
		return 400
	case errors.As(err, &renderFailed):
		return 500
	default:
		return 500
	}
}

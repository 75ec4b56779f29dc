// Package http provides the inbound REST adapters for the assignment
// coordinator and the technician directory. Handlers translate between the
// wire representation and the application's commands and queries, and map
// the domain error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps domain errors onto HTTP status codes:
//
//   - missing aggregates and a failed match are 404
//   - optimistic-concurrency conflicts are 409
//   - illegal transitions and validation failures are 400
//   - anything else is a 500
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoTechnicianMatch):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, workorder.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a JSON error response.
func writeError(ctx echo.Context, err error) error {
	code := statusFor(err)
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

package http

import (
	"errors"
	"fmt"
	"net/http"

	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalMessage = "Internal server error"

// problem is the public form of an error.
type problem struct {
	status  int
	message string
	details []string
}

// describe maps the error taxonomy onto HTTP. Joined validation errors become one 400
// with every failure listed; anything outside the taxonomy is a 500.
func describe(err error) problem {
	if parts := flatten(err); len(parts) > 1 {
		details := make([]string, 0, len(parts))
		for _, part := range parts {
			p := describeOne(part)
			if p.status != http.StatusBadRequest {
				return p
			}
			details = append(details, p.message)
		}
		return problem{status: http.StatusBadRequest, message: "Validation Error", details: details}
	}
	return describeOne(err)
}

// flatten expands errors.Join trees into their leaves. Taxonomy errors are leaves even
// though they unwrap to their sentinel and cause.
func flatten(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok || isTyped(err) {
		return []error{err}
	}
	var leaves []error
	for _, part := range joined.Unwrap() {
		leaves = append(leaves, flatten(part)...)
	}
	return leaves
}

func describeOne(err error) problem {
	var notFound *errs.ObjectNotFoundError
	var conflict *errs.ConflictError
	var invalid *errs.ValueIsInvalidError
	var outOfRange *errs.ValueIsOutOfRangeError
	var required *errs.ValueIsRequiredError

	switch {
	case errors.As(err, &notFound):
		return problem{status: http.StatusNotFound, message: causeOr(notFound.Cause, notFound.ParamName+" not found")}
	case errors.As(err, &conflict):
		return problem{status: http.StatusConflict, message: causeOr(conflict.Cause, conflict.Subject+" conflicts with its current state")}
	case errors.As(err, &outOfRange):
		return problem{status: http.StatusBadRequest, message: causeOr(outOfRange.Cause,
			fmt.Sprintf("%s must be between %v and %v", outOfRange.ParamName, outOfRange.Min, outOfRange.Max))}
	case errors.As(err, &required):
		return problem{status: http.StatusBadRequest, message: causeOr(required.Cause, required.ParamName+" is required")}
	case errors.As(err, &invalid):
		return problem{status: http.StatusBadRequest, message: causeOr(invalid.Cause, invalid.ParamName+" is invalid")}
	default:
		return problem{status: http.StatusInternalServerError, message: internalMessage}
	}
}

func isTyped(err error) bool {
	switch err.(type) {
	case *errs.ObjectNotFoundError, *errs.ConflictError, *errs.ValueIsInvalidError,
		*errs.ValueIsOutOfRangeError, *errs.ValueIsRequiredError:
		return true
	}
	return false
}

func causeOr(cause error, fallback string) string {
	if cause != nil {
		return cause.Error()
	}
	return fallback
}

// errorHandler renders every error returned by a route in the response envelope.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var p problem
		var he *echo.HTTPError
		if errors.As(err, &he) {
			p = problem{status: he.Code, message: fmt.Sprint(he.Message)}
		} else {
			p = describe(err)
		}

		if p.status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		if werr := fail(c, p.status, p.message, p.details); werr != nil {
			logger.Error("write error response", zap.Error(werr))
		}
	}
}

package http

import (
	"strconv"

	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, errInvalidID(name))
	}
	return id, nil
}

// queryInt returns 0 for a missing parameter.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, errNotInteger(name))
	}
	return v, nil
}

func pageParams(c echo.Context) (limit, offset int, err error) {
	if limit, err = queryInt(c, "limit"); err != nil {
		return 0, 0, err
	}
	if offset, err = queryInt(c, "offset"); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

type paramError string

func (e paramError) Error() string { return string(e) }

func errInvalidID(name string) error { return paramError(name + " must be a positive integer") }
func errNotInteger(name string) error { return paramError(name + " must be an integer") }

// bindBody decodes the JSON body into dst.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", paramError("Invalid request body"))
	}
	return nil
}

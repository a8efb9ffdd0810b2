package http

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// envelope is {success, message?, ...data}.
type envelope map[string]any

func respond(c echo.Context, status int, success bool, message string, data envelope) error {
	body := envelope{"success": success}
	if message != "" {
		body["message"] = message
	}
	for k, v := range data {
		body[k] = v
	}
	return c.JSON(status, body)
}

func succeed(c echo.Context, status int, message string, data envelope) error {
	return respond(c, status, true, message, data)
}

func fail(c echo.Context, status int, message string, details []string) error {
	body := envelope{"success": false, "message": message}
	if len(details) > 0 {
		body["errors"] = details
	}
	return c.JSON(status, body)
}

// money renders an amount as a JSON number with two decimals.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

package presenter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/logger"
)

const debugKey = "presenter.debug"

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Details any                 `json:"details,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// Raw writes an already encoded JSON body.
func Raw(c *fiber.Ctx, status int, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(status).Send(body)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Debug enables error details for the requests it handles.
func Debug(enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(debugKey, enabled)
		return c.Next()
	}
}

// Fail renders err as an ErrorResponse. message replaces the error's own
// message when set. Provider bodies are always passed through as details;
// the error chain only in debug mode.
func Fail(c *fiber.Ctx, err error, message string) error {
	status := apperr.StatusOf(err)
	resp := ErrorResponse{Message: message}

	var fe *fiber.Error
	var ae *apperr.Error
	switch {
	case errors.As(err, &ae):
		if resp.Message == "" {
			resp.Message = publicMessage(ae)
		}
		resp.Errors = ae.Fields
		if ae.Body != "" {
			resp.Details = body(ae.Body)
		}
	case errors.As(err, &fe):
		status = fe.Code
		if resp.Message == "" {
			resp.Message = fe.Message
		}
	default:
		if resp.Message == "" {
			resp.Message = http.StatusText(status)
		}
	}
	if resp.Details == nil && debugEnabled(c) {
		resp.Details = err.Error()
	}

	ev := logger.Ctx(c.UserContext()).Warn()
	if status >= http.StatusInternalServerError {
		ev = logger.Ctx(c.UserContext()).Error()
	}
	ev.Err(err).Int("status", status).Str("path", c.Path()).Msg("request failed")

	return JSON(c, status, resp)
}

// ErrorHandler is the fiber.Config error handler: anything a handler returns
// ends up in the same envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return Fail(c, err, "")
}

func publicMessage(e *apperr.Error) string {
	switch e.Kind {
	case apperr.KindValidation, apperr.KindUpstreamUnavailable, apperr.KindRateLimited:
		return e.Message
	default:
		return "Processing failed"
	}
}

func body(s string) any {
	if json.Valid([]byte(s)) {
		return json.RawMessage(s)
	}
	return s
}

func debugEnabled(c *fiber.Ctx) bool {
	on, _ := c.Locals(debugKey).(bool)
	return on
}

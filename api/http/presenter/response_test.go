package presenter

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
)

func render(t *testing.T, debug bool, err error, message string) (int, ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Use(Debug(debug))
	app.Get("/", func(c *fiber.Ctx) error { return Fail(c, err, message) })

	resp, e := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, e)
	var out ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestFailValidation(t *testing.T) {
	status, out := render(t, false, apperr.Validation("Invalid request parameters.", map[string][]string{"skills": {"required"}}), "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Invalid request parameters.", out.Message)
	assert.Equal(t, map[string][]string{"skills": {"required"}}, out.Errors)
	assert.Nil(t, out.Details)
}

func TestFailHidesInternalsUnlessDebug(t *testing.T) {
	err := errors.New("pq: secret table missing")

	status, out := render(t, false, err, "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", out.Message)
	assert.Nil(t, out.Details)

	_, out = render(t, true, err, "")
	assert.Equal(t, "pq: secret table missing", out.Details)
}

func TestFailMalformedIsGeneric(t *testing.T) {
	status, out := render(t, false, apperr.Malformed(errors.New("bad")), "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Processing failed", out.Message)
}

func TestFailUpstreamBody(t *testing.T) {
	e := apperr.Upstream("jsearch", http.StatusServiceUnavailable, errors.New("status 503"))
	e.Body = "upstream down"
	status, out := render(t, false, e, "Failed to fetch jobs")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "Failed to fetch jobs", out.Message)
	assert.Equal(t, "upstream down", out.Details)
}

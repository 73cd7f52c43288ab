package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammedkado/find-job-with-ai/api/http/presenter"
	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/compat"
	"github.com/muhammedkado/find-job-with-ai/pkg/jobsearch"
	"github.com/muhammedkado/find-job-with-ai/pkg/matching"
	"github.com/muhammedkado/find-job-with-ai/pkg/resume"
)

type fakeResumeService struct {
	out      resume.StructuredResume
	err      error
	enhanced string
	gotData  []byte
	section  string
}

func (f *fakeResumeService) Analyze(_ context.Context, data []byte) (resume.StructuredResume, error) {
	f.gotData = data
	return f.out, f.err
}

func (f *fakeResumeService) Enhance(_ context.Context, section, _ string) (string, error) {
	f.section = section
	return f.enhanced, f.err
}

type fakeSearcher struct {
	got jobsearch.Query
	res jobsearch.Result
	err error
}

func (f *fakeSearcher) Search(_ context.Context, q jobsearch.Query) (jobsearch.Result, error) {
	f.got = q
	return f.res, f.err
}

type fakeMatcher struct {
	got matching.Request
	out []byte
	err error
}

func (f *fakeMatcher) Match(_ context.Context, req matching.Request) ([]byte, error) {
	f.got = req
	return f.out, f.err
}

func newApp(debug bool, cv *CVHandler, jobs *JobsHandler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: presenter.ErrorHandler})
	app.Use(presenter.Debug(debug))
	app.Post("/analyze-cv", cv.Analyze)
	app.Post("/enhance", cv.Enhance)
	app.Get("/jobsearch", jobs.Search)
	app.Post("/jobs", jobs.Jobs)
	return app
}

func multipartRequest(t *testing.T, field, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/analyze-cv", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(b) > 0 {
		require.NoError(t, json.Unmarshal(b, &out), string(b))
	}
	return resp.StatusCode, out
}

var pdfBytes = []byte("%PDF-1.4\n%fake\n")

func TestAnalyzeCVValidation(t *testing.T) {
	svc := &fakeResumeService{}
	app := newApp(false, NewCVHandler(svc), NewJobsHandler(&fakeSearcher{}, &fakeMatcher{}))

	tests := []struct {
		name     string
		field    string
		filename string
		data     []byte
	}{
		{"missing file", "", "", nil},
		{"wrong field", "file", "cv.pdf", pdfBytes},
		{"wrong extension", "cv", "cv.docx", pdfBytes},
		{"not a pdf", "cv", "cv.pdf", []byte("hello")},
		{"too large", "cv", "cv.pdf", append(append([]byte{}, pdfBytes...), make([]byte, MaxCVBytes)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, multipartRequest(t, tt.field, tt.filename, tt.data))
			assert.Equal(t, http.StatusUnprocessableEntity, status)
			assert.Equal(t, false, body["success"])
			assert.Contains(t, body["errors"], "cv")
		})
	}
	assert.Nil(t, svc.gotData)
}

func TestAnalyzeCVSuccess(t *testing.T) {
	name := "Jane Doe"
	svc := &fakeResumeService{out: resume.StructuredResume{Name: &name, TechnicalSkills: []string{"Go"}}}
	app := newApp(false, NewCVHandler(svc), NewJobsHandler(&fakeSearcher{}, &fakeMatcher{}))

	status, body := do(t, app, multipartRequest(t, "cv", "CV.PDF", pdfBytes))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Jane Doe", body["name"])
	assert.Equal(t, pdfBytes, svc.gotData)
}

func TestAnalyzeCVProcessingFailure(t *testing.T) {
	svc := &fakeResumeService{err: apperr.Upstream("gemini", 0, errors.New("dial tcp: timeout"))}

	app := newApp(false, NewCVHandler(svc), NewJobsHandler(&fakeSearcher{}, &fakeMatcher{}))
	status, body := do(t, app, multipartRequest(t, "cv", "cv.pdf", pdfBytes))
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "Failed to process CV", body["message"])
	assert.NotContains(t, body, "details")

	app = newApp(true, NewCVHandler(svc), NewJobsHandler(&fakeSearcher{}, &fakeMatcher{}))
	_, body = do(t, app, multipartRequest(t, "cv", "cv.pdf", pdfBytes))
	assert.Contains(t, body["details"], "dial tcp: timeout")
}

func TestAnalyzeCVMalformedReply(t *testing.T) {
	svc := &fakeResumeService{err: apperr.Malformed(errors.New("no json"))}
	app := newApp(false, NewCVHandler(svc), NewJobsHandler(&fakeSearcher{}, &fakeMatcher{}))

	status, body := do(t, app, multipartRequest(t, "cv", "cv.pdf", pdfBytes))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Failed to process CV", body["message"])
}

func TestEnhance(t *testing.T) {
	svc := &fakeResumeService{enhanced: "Built Go services."}
	app := newApp(false, NewCVHandler(svc), NewJobsHandler(&fakeSearcher{}, &fakeMatcher{}))

	status, body := do(t, app, jsonRequest(http.MethodPost, "/enhance", `{"text":"made go stuff","section":"Experience"}`))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Built Go services.", body["enhanced"])
	assert.Equal(t, "experience", svc.section)
}

func TestEnhanceValidation(t *testing.T) {
	app := newApp(false, NewCVHandler(&fakeResumeService{}), NewJobsHandler(&fakeSearcher{}, &fakeMatcher{}))

	tests := map[string]struct {
		body  string
		field string
	}{
		"missing text":    {`{"section":"summary"}`, "text"},
		"text too long":   {`{"text":"` + strings.Repeat("a", maxEnhanceChars+1) + `"}`, "text"},
		"unknown section": {`{"text":"x","section":"hobbies"}`, "section"},
		"invalid json":    {`{"text":`, "body"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			status, body := do(t, app, jsonRequest(http.MethodPost, "/enhance", tt.body))
			assert.Equal(t, http.StatusUnprocessableEntity, status)
			assert.Contains(t, body["errors"], tt.field)
		})
	}
}

func TestSearchDefaultsAndPassThrough(t *testing.T) {
	raw := []byte(`{"status":"OK","data":[{"job_id":"a","extra":"kept"}]}`)
	search := &fakeSearcher{res: jobsearch.Result{Raw: raw}}
	app := newApp(false, NewCVHandler(&fakeResumeService{}), NewJobsHandler(search, &fakeMatcher{}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobsearch", nil), -1)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, raw, b)
	assert.Equal(t, jobsearch.Query{
		Query: "developer jobs in jordan", Page: 1, NumPages: 1, Country: "jo", DatePosted: "all",
	}, search.got)

	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/jobsearch?position=go+developer&page=3&country=DE", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "go developer", search.got.Query)
	assert.Equal(t, 3, search.got.Page)
	assert.Equal(t, "de", search.got.Country)
}

func TestSearchProviderFailure(t *testing.T) {
	upstream := apperr.Upstream("jsearch", http.StatusForbidden, errors.New("status 403"))
	upstream.Body = `{"message":"You are not subscribed to this API."}`
	app := newApp(false, NewCVHandler(&fakeResumeService{}), NewJobsHandler(&fakeSearcher{err: upstream}, &fakeMatcher{}))

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/jobsearch", nil))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to fetch jobs", body["message"])
	assert.Equal(t, map[string]any{"message": "You are not subscribed to this API."}, body["details"])
}

func TestJobs(t *testing.T) {
	match := &fakeMatcher{out: []byte(`{"jobs":[],"meta":{"total_jobs":0}}`)}
	app := newApp(false, NewCVHandler(&fakeResumeService{}), NewJobsHandler(&fakeSearcher{}, match))

	body := `{"skills":"Go, SQL","projects":[{"description":"CLI tool"}],"experience":[{"description":"Backend at X"}],
		"summary":"Engineer","country":"US","mode":"individual"}`
	status, out := do(t, app, jsonRequest(http.MethodPost, "/jobs", body))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, out, "meta")

	assert.Equal(t, "Go, SQL", match.got.Skills)
	assert.Equal(t, []string{"CLI tool"}, match.got.Projects)
	assert.Equal(t, []string{"Backend at X"}, match.got.Experience)
	assert.Equal(t, compat.ModeIndividual, match.got.Mode)
	assert.Equal(t, jobsearch.Query{
		Query: "developer jobs in usa", Page: 1, NumPages: 2, Country: "us", DatePosted: "all",
	}, match.got.Search)
}

func TestJobsValidation(t *testing.T) {
	match := &fakeMatcher{}
	app := newApp(false, NewCVHandler(&fakeResumeService{}), NewJobsHandler(&fakeSearcher{}, match))

	tests := map[string]struct {
		body  string
		field string
	}{
		"missing skills":   {`{"summary":"x"}`, "skills"},
		"skills too long":  {`{"skills":"` + strings.Repeat("a", 5001) + `"}`, "skills"},
		"project too long": {`{"skills":"Go","projects":[{"description":"` + strings.Repeat("a", 10001) + `"}]}`, "projects.0.description"},
		"bad mode":         {`{"skills":"Go","mode":"parallel"}`, "mode"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			status, body := do(t, app, jsonRequest(http.MethodPost, "/jobs", tt.body))
			assert.Equal(t, http.StatusUnprocessableEntity, status)
			assert.Equal(t, "Invalid request parameters.", body["message"])
			assert.Contains(t, body["errors"], tt.field)
		})
	}
	assert.Empty(t, match.got.Skills)
}

func TestJobsSearchFailure(t *testing.T) {
	match := &fakeMatcher{err: apperr.Upstream("jsearch", http.StatusTooManyRequests, errors.New("status 429"))}
	app := newApp(false, NewCVHandler(&fakeResumeService{}), NewJobsHandler(&fakeSearcher{}, match))

	status, body := do(t, app, jsonRequest(http.MethodPost, "/jobs", `{"skills":"Go"}`))
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "Failed to fetch jobs", body["message"])
}

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/muhammedkado/find-job-with-ai/api/http/presenter"
	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/prompt"
	"github.com/muhammedkado/find-job-with-ai/pkg/resume"
)

// MaxCVBytes limits uploaded résumés to 2MB.
const MaxCVBytes = 2 << 20

const maxEnhanceChars = 2000

type CVHandler struct {
	svc      resume.AnalysisService
	maxBytes int64
}

func NewCVHandler(svc resume.AnalysisService) *CVHandler {
	return &CVHandler{svc: svc, maxBytes: MaxCVBytes}
}

// Analyze extracts text from the uploaded PDF and returns the structured résumé.
// @Summary     Analyze a CV
// @Description Extracts text from an uploaded PDF résumé and returns structured fields.
// @Tags        CV
// @Accept      multipart/form-data
// @Produce     json
// @Param       cv formData file true "PDF résumé, at most 2MB"
// @Success     200 {object} resume.StructuredResume
// @Failure     422 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Failure     502 {object} presenter.ErrorResponse
// @Router      /analyze-cv [post]
func (h *CVHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("cv")
	if err != nil || fh == nil {
		return presenter.Fail(c, invalid("cv", "The cv field is required."), "")
	}
	if strings.ToLower(filepath.Ext(fh.Filename)) != ".pdf" {
		return presenter.Fail(c, invalid("cv", "The cv must be a file of type: pdf."), "")
	}
	if fh.Size > h.maxBytes {
		return presenter.Fail(c, invalid("cv", tooLarge(h.maxBytes)), "")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Fail(c, invalid("cv", "The cv failed to upload."), "")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Fail(c, invalid("cv", err.Error()), "")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return presenter.Fail(c, invalid("cv", "The cv must be a file of type: pdf."), "")
	}

	out, err := h.svc.Analyze(c.UserContext(), data)
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusOK, out)
	case errors.Is(err, resume.ErrNotPDF):
		return presenter.Fail(c, invalid("cv", "The cv must be a file of type: pdf."), "")
	case apperr.Is(err, apperr.KindValidation):
		return presenter.Fail(c, err, "")
	default:
		return presenter.Fail(c, err, "Failed to process CV")
	}
}

type enhanceRequest struct {
	Text    string `json:"text"`
	Section string `json:"section"`
}

type enhanceResponse struct {
	Success  bool   `json:"success"`
	Enhanced string `json:"enhanced"`
}

var enhanceSections = map[string]bool{
	prompt.SectionExperience: true,
	prompt.SectionProject:    true,
	prompt.SectionEducation:  true,
	prompt.SectionSummary:    true,
}

// Enhance rewrites one résumé section.
// @Summary     Enhance a CV section
// @Tags        CV
// @Accept      json
// @Produce     json
// @Param       input body enhanceRequest true "Section text and optional section kind"
// @Success     200 {object} enhanceResponse
// @Failure     422 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /enhance [post]
func (h *CVHandler) Enhance(c *fiber.Ctx) error {
	var req enhanceRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Fail(c, invalid("body", "The request body must be valid JSON."), "")
	}
	req.Text = strings.TrimSpace(req.Text)
	req.Section = strings.ToLower(strings.TrimSpace(req.Section))

	v := violations{}
	v.required("text", req.Text)
	v.maxLen("text", req.Text, maxEnhanceChars)
	if req.Section != "" && !enhanceSections[req.Section] {
		v.add("section", "The selected section is invalid.")
	}
	if err := v.err(); err != nil {
		return presenter.Fail(c, err, "")
	}

	out, err := h.svc.Enhance(c.UserContext(), req.Section, req.Text)
	if err != nil {
		return presenter.Fail(c, err, "Failed to enhance text")
	}
	return presenter.JSON(c, http.StatusOK, enhanceResponse{Success: true, Enhanced: out})
}

func invalid(field, msg string) error {
	return apperr.Validation("Invalid request parameters.", map[string][]string{field: {msg}})
}

func tooLarge(max int64) string {
	return fmt.Sprintf("The cv may not be greater than %d kilobytes.", max>>10)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, errors.New(tooLarge(max))
	}
	return b, nil
}

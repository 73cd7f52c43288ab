package resume

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/llm"
	"github.com/muhammedkado/find-job-with-ai/pkg/logger"
	"github.com/muhammedkado/find-job-with-ai/pkg/nlp"
	"github.com/muhammedkado/find-job-with-ai/pkg/prompt"
)

// AnalysisService describes the application use cases for résumés.
type AnalysisService interface {
	// Analyze extracts text from a PDF and asks the LLM for a StructuredResume.
	Analyze(ctx context.Context, data []byte) (StructuredResume, error)
	// Enhance rewrites one résumé section in at most two lines.
	Enhance(ctx context.Context, section, text string) (string, error)
}

type analysisService struct {
	llm       llm.ChatModel
	extractor TextExtractor
	format    Format
}

// NewAnalysisService creates the default implementation.
func NewAnalysisService(model llm.ChatModel, extractor TextExtractor, format Format) AnalysisService {
	if extractor == nil {
		extractor = PDFExtractor{}
	}
	return &analysisService{llm: model, extractor: extractor, format: format}
}

func (s *analysisService) Analyze(ctx context.Context, data []byte) (StructuredResume, error) {
	l := logger.Component(ctx, "resume")

	text, err := s.extractor.Extract(data)
	if err != nil {
		return StructuredResume{}, apperr.Upstream("pdf extractor", 0, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return StructuredResume{}, apperr.Validation("the uploaded cv contains no readable text", map[string][]string{
			"cv": {"The cv file has no extractable text."},
		})
	}

	var (
		userPrompt string
		opts       llm.Options
	)
	if s.format == FormatJSON {
		userPrompt, opts = prompt.ExtractResumeJSON(text), llm.Structured
	} else {
		userPrompt, opts = prompt.ExtractResume(text), llm.Extraction
	}

	raw, err := s.llm.Ask(ctx, prompt.System, userPrompt, opts)
	if err != nil {
		return StructuredResume{}, fmt.Errorf("extract resume: %w", err)
	}

	out, err := Parse(s.format, raw)
	switch {
	case errors.Is(err, apperr.ErrEmptyResponse):
		l.Warn().Str("format", string(s.format)).Msg("llm returned an empty extraction")
	case err != nil:
		return StructuredResume{}, fmt.Errorf("parse resume: %w", err)
	}
	ClassifyLanguages(&out)

	l.Info().
		Int("chars", len(text)).
		Str("format", string(s.format)).
		Str("model", s.llm.Name()).
		Msg("resume analyzed")
	return out, nil
}

func (s *analysisService) Enhance(ctx context.Context, section, text string) (string, error) {
	raw, err := s.llm.Ask(ctx, prompt.System, prompt.EnhanceSection(section, text), llm.Enhancement)
	if err != nil {
		return "", fmt.Errorf("enhance section: %w", err)
	}
	out := firstLines(nlp.StripFences(nlp.Unwrap(raw)), 2)
	if out == "" {
		return "", apperr.ErrEmptyResponse
	}
	return out, nil
}

// firstLines keeps at most n non-blank lines, trimmed of quotes and bullets.
func firstLines(s string, n int) string {
	lines := nlp.Lines(s)
	if len(lines) > n {
		lines = lines[:n]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSpace(strings.Trim(strings.TrimLeft(l, "-*• "), `"`))
	}
	return strings.Join(lines, "\n")
}

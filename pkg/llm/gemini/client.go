package gemini

import (
	"context"
	"errors"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/llm"
	"github.com/muhammedkado/find-job-with-ai/pkg/logger"
	"github.com/muhammedkado/find-job-with-ai/pkg/retry"
)

const (
	DefaultModel      = "gemini-1.5-pro"
	DefaultAPIVersion = "v1beta"
)

// Client wraps the Gemini generateContent API.
type Client struct {
	Model string
	Retry retry.Config
	api   *genai.Client
}

var _ llm.ChatModel = (*Client)(nil)

// New creates a Gemini client. baseURL may be empty to use the public endpoint.
func New(ctx context.Context, apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if model == "" {
		model = DefaultModel
	}
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: 90 * time.Second},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    baseURL,
			APIVersion: DefaultAPIVersion,
		},
	}
	api, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &Client{Model: model, Retry: retry.Default, api: api}, nil
}

func (c *Client) Name() string { return "gemini/" + c.Model }

func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string, opts llm.Options) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if systemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}
	if opts.Temperature > 0 {
		cfg.Temperature = genai.Ptr(opts.Temperature)
	}
	if opts.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = int32(opts.MaxOutputTokens)
	}
	if opts.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	l := logger.Component(ctx, "llm")
	resp, err := retry.Do(ctx, c.Retry, func() (*genai.GenerateContentResponse, error) {
		r, err := c.api.Models.GenerateContent(ctx, c.Model, genai.Text(userPrompt), cfg)
		return r, asStatusError(err)
	})
	if err != nil {
		return "", apperr.Upstream("gemini", 0, err)
	}
	if resp.UsageMetadata != nil {
		l.Debug().
			Str("model", c.Model).
			Int32("prompt_tokens", resp.UsageMetadata.PromptTokenCount).
			Int32("candidate_tokens", resp.UsageMetadata.CandidatesTokenCount).
			Msg("gemini completion")
	}
	return resp.Text(), nil
}

// asStatusError exposes the API status code so retry can classify it.
func asStatusError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &retry.StatusError{StatusCode: apiErr.Code, Body: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &retry.StatusError{StatusCode: apiErrPtr.Code, Body: apiErrPtr.Message}
	}
	return err
}

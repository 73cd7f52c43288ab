package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/llm"
	"github.com/muhammedkado/find-job-with-ai/pkg/logger"
	"github.com/muhammedkado/find-job-with-ai/pkg/retry"
)

// Client is a minimal OpenRouter (OpenAI-compatible) chat completions client.
type Client struct {
	APIKey   string
	BaseURL  string
	Model    string
	AppTitle string
	Referer  string
	Retry    retry.Config
	httpDo   *http.Client
}

func New(apiKey, baseURL, model, appTitle, referer string) *Client {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if model == "" {
		model = "qwen/qwen2.5-32b-instruct"
	}
	return &Client{
		APIKey:   apiKey,
		BaseURL:  baseURL,
		Model:    model,
		AppTitle: appTitle,
		Referer:  referer,
		Retry:    retry.Default,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

var _ llm.ChatModel = (*Client)(nil)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionsRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float32         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (c *Client) Name() string { return "openrouter/" + c.Model }

// Ask sends the prompts to the chat completions endpoint and returns the model reply.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string, opts llm.Options) (string, error) {
	if c.APIKey == "" {
		return "", apperr.Upstream("openrouter", 0, errors.New("openrouter api key is empty"))
	}
	reqBody := chatCompletionsRequest{
		Model:       c.Model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxOutputTokens,
	}
	if systemPrompt != "" {
		reqBody.Messages = append(reqBody.Messages, message{Role: "system", Content: systemPrompt})
	}
	reqBody.Messages = append(reqBody.Messages, message{Role: "user", Content: userPrompt})
	if reqBody.Temperature == 0 {
		reqBody.Temperature = 0.2
	}
	if opts.JSON {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	out, err := retry.Do(ctx, c.Retry, func() (chatCompletionsResponse, error) {
		return c.do(ctx, data)
	})
	if err != nil {
		return "", apperr.Upstream("openrouter", 0, err)
	}
	if len(out.Choices) == 0 {
		return "", apperr.Upstream("openrouter", 0, errors.New("no choices returned by model"))
	}
	logger.Ctx(ctx).Debug().
		Str("component", "llm").
		Str("model", c.Model).
		Int("prompt_tokens", out.Usage.PromptTokens).
		Int("completion_tokens", out.Usage.CompletionTokens).
		Msg("openrouter completion")
	return out.Choices[0].Message.Content, nil
}

func (c *Client) do(ctx context.Context, payload []byte) (chatCompletionsResponse, error) {
	var out chatCompletionsResponse
	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return out, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.Referer)
	}
	if c.AppTitle != "" {
		httpReq.Header.Set("X-Title", c.AppTitle)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return out, &retry.StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode openrouter response: %w", err)
	}
	return out, nil
}

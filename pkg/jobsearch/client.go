package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/logger"
	"github.com/muhammedkado/find-job-with-ai/pkg/ratelimit"
	"github.com/muhammedkado/find-job-with-ai/pkg/retry"
)

// Searcher is the port used by the matching use case.
type Searcher interface {
	Search(ctx context.Context, q Query) (Result, error)
}

// Client calls the JSearch API on RapidAPI.
type Client struct {
	APIKey  string
	BaseURL string
	Host    string
	Retry   retry.Config
	// Pacer, when set, spaces requests to stay within the provider quota.
	Pacer  ratelimit.Pacer
	httpDo *http.Client
}

var _ Searcher = (*Client)(nil)

func New(apiKey, baseURL, host string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://jsearch.p.rapidapi.com"
	}
	if host == "" {
		host = "jsearch.p.rapidapi.com"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Host:    host,
		Retry:   retry.Default,
		httpDo:  &http.Client{Timeout: timeout},
	}
}

type searchResponse struct {
	Status string    `json:"status"`
	Data   []Listing `json:"data"`
}

// Search runs one query. A non-2xx reply becomes an UpstreamUnavailable error
// carrying the provider status and body.
func (c *Client) Search(ctx context.Context, q Query) (Result, error) {
	if c.APIKey == "" {
		return Result{}, apperr.Upstream("jsearch", 0, errors.New("rapidapi key is empty"))
	}
	params := url.Values{}
	params.Set("query", q.Query)
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("num_pages", strconv.Itoa(q.NumPages))
	params.Set("country", q.Country)
	params.Set("date_posted", q.DatePosted)
	endpoint := c.BaseURL + "/search?" + params.Encode()

	start := time.Now()
	body, err := retry.Do(ctx, c.Retry, func() ([]byte, error) {
		if c.Pacer != nil {
			if err := c.Pacer.Wait(ctx); err != nil {
				return nil, err
			}
		}
		return c.get(ctx, endpoint)
	})
	if err != nil {
		var se *retry.StatusError
		if errors.As(err, &se) {
			e := apperr.Upstream("jsearch", se.StatusCode, err)
			e.Body = se.Body
			return Result{}, e
		}
		return Result{}, apperr.Upstream("jsearch", 0, err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Result{}, apperr.Upstream("jsearch", 0, fmt.Errorf("decode search response: %w", err))
	}
	logger.Ctx(ctx).Debug().
		Str("component", "jsearch").
		Str("query", q.Query).
		Int("jobs", len(parsed.Data)).
		Dur("took", time.Since(start)).
		Msg("job search done")
	return Result{Raw: body, Listings: parsed.Data}, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-host", c.Host)
	req.Header.Set("x-rapidapi-key", c.APIKey)

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &retry.StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// Package matching finds jobs for a candidate and ranks them by compatibility.
package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/cache"
	"github.com/muhammedkado/find-job-with-ai/pkg/compat"
	"github.com/muhammedkado/find-job-with-ai/pkg/jobsearch"
	"github.com/muhammedkado/find-job-with-ai/pkg/logger"
	"github.com/muhammedkado/find-job-with-ai/pkg/prompt"
	"github.com/muhammedkado/find-job-with-ai/pkg/ranking"
)

type Service interface {
	// Match returns the marshalled ranked job list. Repeated requests within
	// the cache TTL return byte-identical payloads.
	Match(ctx context.Context, req Request) ([]byte, error)
}

type scorer interface {
	Score(ctx context.Context, candidate string, jobs []prompt.Job, mode compat.Mode) ([]compat.Result, compat.Mode)
}

type service struct {
	search jobsearch.Searcher
	scorer scorer
	cache  cache.Cache
	ttl    time.Duration
	mode   compat.Mode
	now    func() time.Time
}

// NewService wires the matching use case. A nil cache disables caching.
func NewService(search jobsearch.Searcher, sc *compat.Scorer, c cache.Cache, ttl time.Duration, mode compat.Mode) Service {
	return newService(search, sc, c, ttl, mode)
}

func newService(search jobsearch.Searcher, sc scorer, c cache.Cache, ttl time.Duration, mode compat.Mode) *service {
	if c == nil {
		c = cache.Noop{}
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &service{search: search, scorer: sc, cache: c, ttl: ttl, mode: mode, now: time.Now}
}

func (s *service) Match(ctx context.Context, req Request) ([]byte, error) {
	l := logger.Component(ctx, "matching")
	candidate := prompt.CandidateProfile(req.Skills, req.Projects, req.Experience, req.Summary)

	found, err := s.search.Search(ctx, req.Search)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	listings := withIDs(found.Listings)

	mode := s.mode
	if req.Mode != "" {
		mode = req.Mode
	}

	key := cacheKey(candidate, mode, req.Search, listings)
	if b, ok := s.cache.Get(ctx, key); ok {
		l.Debug().Str("key", key).Msg("cache hit")
		return b, nil
	}
	jobs := make([]prompt.Job, len(listings))
	for i, li := range listings {
		jobs[i] = prompt.Job{ID: li.ID, Description: li.Description}
	}
	results, used := s.scorer.Score(ctx, candidate, jobs, mode)

	ranked := ranking.Rank(listings, results, used, s.now())
	b, err := json.Marshal(ranked)
	if err != nil {
		return nil, apperr.Internal("failed to encode ranked jobs", err)
	}
	s.cache.Set(ctx, key, b, s.ttl)

	l.Info().
		Int("jobs", ranked.Meta.TotalJobs).
		Float64("average_score", ranked.Meta.AverageScore).
		Str("mode", string(used)).
		Msg("jobs ranked")
	return b, nil
}

// withIDs gives listings without a provider id a positional one so results
// can still be joined back.
func withIDs(in []jobsearch.Listing) []jobsearch.Listing {
	out := make([]jobsearch.Listing, len(in))
	copy(out, in)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = "job-" + strconv.Itoa(i+1)
		}
	}
	return out
}

// cacheKey covers the requested mode, not the one that produced the payload.
func cacheKey(candidate string, mode compat.Mode, q jobsearch.Query, listings []jobsearch.Listing) string {
	parts := make([]string, 0, len(listings)+7)
	parts = append(parts, candidate, string(mode), q.Query, strconv.Itoa(q.Page), strconv.Itoa(q.NumPages), q.Country, q.DatePosted)
	for _, li := range listings {
		parts = append(parts, li.ID)
	}
	return cache.Key(parts...)
}

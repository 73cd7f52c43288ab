package compat

import (
	"context"
	"errors"
	"fmt"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/llm"
	"github.com/muhammedkado/find-job-with-ai/pkg/logger"
	"github.com/muhammedkado/find-job-with-ai/pkg/prompt"
	"github.com/muhammedkado/find-job-with-ai/pkg/ratelimit"
)

// MaxBatchSize caps how many jobs go into one batch prompt.
const MaxBatchSize = 50

// Scorer rates a candidate against job descriptions with the LLM.
type Scorer struct {
	llm       llm.ChatModel
	limiter   ratelimit.Limiter
	batchSize int
}

func NewScorer(model llm.ChatModel, limiter ratelimit.Limiter) *Scorer {
	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}
	return &Scorer{llm: model, limiter: limiter, batchSize: MaxBatchSize}
}

// Score returns exactly one result per job, in job order, plus the mode that
// produced them. Failures never abort: they degrade single results to score 0.
// Batch mode falls back to individual mode when the batch call fails.
func (s *Scorer) Score(ctx context.Context, candidate string, jobs []prompt.Job, mode Mode) ([]Result, Mode) {
	l := logger.Component(ctx, "compat")
	if len(jobs) == 0 {
		return []Result{}, mode
	}
	if mode == ModeBatch {
		results, err := s.scoreBatch(ctx, candidate, jobs)
		if err == nil {
			return results, ModeBatch
		}
		l.Warn().Err(err).Int("jobs", len(jobs)).Msg("batch scoring failed, falling back to individual mode")
	}
	return s.scoreIndividually(ctx, candidate, jobs), ModeIndividual
}

func (s *Scorer) scoreBatch(ctx context.Context, candidate string, jobs []prompt.Job) ([]Result, error) {
	capped := jobs
	if len(capped) > s.batchSize {
		capped = capped[:s.batchSize]
	}
	raw, err := s.llm.Ask(ctx, prompt.System, prompt.ScoreJobBatch(candidate, capped), llm.Structured)
	if err != nil {
		return nil, fmt.Errorf("batch call: %w", err)
	}
	parsed, err := ParseBatch(raw)
	if err != nil {
		return nil, fmt.Errorf("batch reply: %w", err)
	}

	results := make([]Result, len(jobs))
	missing := 0
	for i, j := range jobs {
		r, ok := parsed[j.ID]
		if !ok || i >= len(capped) {
			results[i] = DefaultResult(j.ID)
			missing++
			continue
		}
		results[i] = r
	}
	l := logger.Component(ctx, "compat")
	l.Info().
		Int("jobs", len(jobs)).
		Int("sent", len(capped)).
		Int("missing", missing).
		Msg("batch scoring done")
	return results, nil
}

func (s *Scorer) scoreIndividually(ctx context.Context, candidate string, jobs []prompt.Job) []Result {
	l := logger.Component(ctx, "compat")
	results := make([]Result, len(jobs))
	var limited, failed int
	for i, j := range jobs {
		if err := ctx.Err(); err != nil {
			results[i] = unavailable(j.ID, err)
			failed++
			continue
		}
		if !s.limiter.Allow() {
			results[i] = unavailable(j.ID, apperr.ErrRateLimited)
			limited++
			continue
		}
		r, err := s.scoreOne(ctx, candidate, j)
		if err != nil {
			l.Warn().Err(err).Str("job_id", j.ID).Msg("job scoring failed")
			results[i] = unavailable(j.ID, err)
			failed++
			continue
		}
		results[i] = r
	}
	l.Info().
		Int("jobs", len(jobs)).
		Int("rate_limited", limited).
		Int("failed", failed).
		Msg("individual scoring done")
	return results
}

func (s *Scorer) scoreOne(ctx context.Context, candidate string, job prompt.Job) (Result, error) {
	raw, err := s.llm.Ask(ctx, prompt.System, prompt.ScoreSingleJob(candidate, job), llm.Structured)
	if err != nil {
		return Result{}, err
	}
	r, err := ParseSingle(raw)
	if err != nil {
		return Result{}, err
	}
	r.JobID = job.ID
	return r, nil
}

// unavailable builds the zero-score result for a failed job. The reason names
// the failure class only, never the raw error.
func unavailable(jobID string, err error) Result {
	var why string
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		why = "request cancelled"
	case apperr.Is(err, apperr.KindMalformedLLMResponse), apperr.Is(err, apperr.KindEmptyResponse):
		why = "unreadable model reply"
	case apperr.Is(err, apperr.KindRateLimited):
		return Result{JobID: jobID, Score: 0, Reasons: []string{ReasonRateLimited}}
	default:
		why = "scoring service error"
	}
	return Result{JobID: jobID, Score: 0, Reasons: []string{reasonUnavailable + ": " + why}}
}

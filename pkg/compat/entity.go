package compat

// Mode is the scoring strategy.
type Mode string

const (
	ModeBatch      Mode = "batch"
	ModeIndividual Mode = "individual"
)

// ParseMode maps a config or request value to a Mode, defaulting to batch.
func ParseMode(s string) Mode {
	if Mode(s) == ModeIndividual {
		return ModeIndividual
	}
	return ModeBatch
}

// Result is the compatibility of the candidate with one job.
type Result struct {
	JobID   string   `json:"job_id"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// Reason strings recorded when a job could not be scored.
const (
	ReasonNoAnalysis  = "No analysis provided"
	ReasonRateLimited = "Rate limit exceeded"
	reasonUnavailable = "Analysis unavailable"
)

// DefaultResult is used for jobs the model did not score.
func DefaultResult(jobID string) Result {
	return Result{JobID: jobID, Score: 0, Reasons: []string{ReasonNoAnalysis}}
}

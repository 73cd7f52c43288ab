package matching

import (
	"github.com/muhammedkado/find-job-with-ai/pkg/compat"
	"github.com/muhammedkado/find-job-with-ai/pkg/jobsearch"
)

// Request carries the candidate sections and the job search parameters.
type Request struct {
	Skills     string
	Projects   []string
	Experience []string
	Summary    string
	Search     jobsearch.Query
	// Mode overrides the configured scoring mode when set.
	Mode compat.Mode
}

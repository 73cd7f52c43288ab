// Package ranking merges compatibility results into job listings and orders
// them for the client.
package ranking

import (
	"math"
	"sort"
	"time"

	"github.com/muhammedkado/find-job-with-ai/pkg/compat"
	"github.com/muhammedkado/find-job-with-ai/pkg/jobsearch"
)

// TimestampLayout is the format of Meta.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Job is a listing with its compatibility attached.
type Job struct {
	jobsearch.Listing
	Compatibility int      `json:"compatibility"`
	MatchReasons  []string `json:"match_reasons"`
}

type Meta struct {
	TotalJobs      int         `json:"total_jobs"`
	AverageScore   float64     `json:"average_score"`
	Timestamp      string      `json:"timestamp"`
	ProcessingMode compat.Mode `json:"processing_mode"`
}

// List is the response body of the matching endpoint.
type List struct {
	Jobs []Job `json:"jobs"`
	Meta Meta  `json:"meta"`
}

// Rank joins listings with results by job id, sorts by score descending and
// computes the summary. Equal scores keep the provider's order. Listings
// without a result get the default score of 0.
func Rank(listings []jobsearch.Listing, results []compat.Result, mode compat.Mode, now time.Time) List {
	byID := make(map[string]compat.Result, len(results))
	for _, r := range results {
		byID[r.JobID] = r
	}

	jobs := make([]Job, 0, len(listings))
	total := 0
	for _, l := range listings {
		r, ok := byID[l.ID]
		if !ok {
			r = compat.DefaultResult(l.ID)
		}
		reasons := r.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		jobs = append(jobs, Job{Listing: l, Compatibility: r.Score, MatchReasons: reasons})
		total += r.Score
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Compatibility > jobs[j].Compatibility
	})

	return List{
		Jobs: jobs,
		Meta: Meta{
			TotalJobs:      len(jobs),
			AverageScore:   average(total, len(jobs)),
			Timestamp:      now.UTC().Format(TimestampLayout),
			ProcessingMode: mode,
		},
	}
}

// average rounds to one decimal; 0 for an empty list.
func average(total, n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Round(float64(total)/float64(n)*10) / 10
}

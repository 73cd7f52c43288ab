package ranking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammedkado/find-job-with-ai/pkg/compat"
	"github.com/muhammedkado/find-job-with-ai/pkg/jobsearch"
)

var now = time.Date(2024, 5, 1, 12, 30, 45, 0, time.FixedZone("AMM", 3*3600))

func listings(ids ...string) []jobsearch.Listing {
	out := make([]jobsearch.Listing, len(ids))
	for i, id := range ids {
		out[i] = jobsearch.Listing{ID: id, Title: "title " + id}
	}
	return out
}

func TestRankStableDescending(t *testing.T) {
	got := Rank(listings("a", "b", "c"), []compat.Result{
		{JobID: "a", Score: 50, Reasons: []string{"x"}},
		{JobID: "b", Score: 90, Reasons: []string{"y"}},
		{JobID: "c", Score: 50, Reasons: []string{"z"}},
	}, compat.ModeBatch, now)

	var order []string
	for _, j := range got.Jobs {
		order = append(order, j.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, order)
	assert.Equal(t, 63.3, got.Meta.AverageScore)
	assert.Equal(t, 3, got.Meta.TotalJobs)
	assert.Equal(t, "2024-05-01 09:30:45", got.Meta.Timestamp)
	assert.Equal(t, compat.ModeBatch, got.Meta.ProcessingMode)
}

func TestRankAverage(t *testing.T) {
	got := Rank(listings("a", "b"), []compat.Result{
		{JobID: "a", Score: 0},
		{JobID: "b", Score: 100},
	}, compat.ModeIndividual, now)
	assert.Equal(t, 50.0, got.Meta.AverageScore)
}

func TestRankEmpty(t *testing.T) {
	got := Rank(nil, nil, compat.ModeBatch, now)
	assert.Equal(t, 0.0, got.Meta.AverageScore)
	assert.Equal(t, 0, got.Meta.TotalJobs)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"jobs":[]`)
}

func TestRankMissingResultGetsDefault(t *testing.T) {
	got := Rank(listings("a", "b"), []compat.Result{{JobID: "b", Score: 10, Reasons: []string{"Go"}}}, compat.ModeBatch, now)
	require.Len(t, got.Jobs, 2)
	assert.Equal(t, "a", got.Jobs[1].ID)
	assert.Equal(t, 0, got.Jobs[1].Compatibility)
	assert.Equal(t, []string{compat.ReasonNoAnalysis}, got.Jobs[1].MatchReasons)
}

func TestRankJSONShape(t *testing.T) {
	got := Rank(listings("a"), []compat.Result{{JobID: "a", Score: 77, Reasons: []string{"Go"}}}, compat.ModeBatch, now)
	b, err := json.Marshal(got)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	job := doc["jobs"].([]any)[0].(map[string]any)
	assert.Equal(t, "a", job["job_id"])
	assert.Equal(t, "title a", job["job_title"])
	assert.Equal(t, float64(77), job["compatibility"])
	assert.Equal(t, []any{"Go"}, job["match_reasons"])
	assert.Nil(t, job["employer_logo"])
}

package compat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
)

func TestParseBatchCoercesStringScores(t *testing.T) {
	got, err := ParseBatch(`{"jobs":{"abc":{"score":"85","reasons":["Go match"]}}}`)
	require.NoError(t, err)
	assert.Equal(t, Result{JobID: "abc", Score: 85, Reasons: []string{"Go match"}}, got["abc"])
}

func TestParseBatchTolerantShapes(t *testing.T) {
	reply := "Here are the scores:\n```json\n" +
		`{"jobs":{"a":{"score":72.9,"reasons":"Go"},"b":{"score":"90%","reasons":[]},"c":40,"d":{"score":150},"e":{"score":-3,"reasons":["x",1]}}}` +
		"\n```"
	got, err := ParseBatch(reply)
	require.NoError(t, err)

	assert.Equal(t, Result{JobID: "a", Score: 72, Reasons: []string{ReasonNoAnalysis}}, got["a"])
	assert.Equal(t, Result{JobID: "b", Score: 90, Reasons: []string{}}, got["b"])
	assert.Equal(t, Result{JobID: "c", Score: 40, Reasons: []string{ReasonNoAnalysis}}, got["c"])
	assert.Equal(t, 100, got["d"].Score)
	assert.Equal(t, Result{JobID: "e", Score: 0, Reasons: []string{"x", "1"}}, got["e"])
}

func TestScoresOutsideIntRangeClampHigh(t *testing.T) {
	tests := map[string]string{
		"huge number":        `{"score": 1e20, "reasons": []}`,
		"huge string":        `{"score": "99999999999999999999", "reasons": []}`,
		"out of float range": `{"score": "1` + strings.Repeat("0", 400) + `", "reasons": []}`,
	}
	for name, reply := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSingle(reply)
			require.NoError(t, err)
			assert.Equal(t, 100, got.Score)
		})
	}

	got, err := ParseSingle(`{"score": -1e20}`)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Score)
}

func TestParseBatchErrors(t *testing.T) {
	_, err := ParseBatch("I cannot help with that.")
	assert.Equal(t, apperr.KindMalformedLLMResponse, apperr.KindOf(err))

	_, err = ParseBatch(`{"score": 10}`)
	assert.Equal(t, apperr.KindMalformedLLMResponse, apperr.KindOf(err))

	_, err = ParseBatch("")
	assert.ErrorIs(t, err, apperr.ErrEmptyResponse)
}

func TestParseSingleWithProse(t *testing.T) {
	got, err := ParseSingle(`Sure! Here's the data: {"score": 70, "reasons": ["x"]} Hope that helps!`)
	require.NoError(t, err)
	assert.Equal(t, 70, got.Score)
	assert.Equal(t, []string{"x"}, got.Reasons)
}

func TestParseSingleMissingScore(t *testing.T) {
	_, err := ParseSingle(`{"reasons": ["x"]}`)
	assert.Equal(t, apperr.KindMalformedLLMResponse, apperr.KindOf(err))
}

func TestParseSingleGarbageScore(t *testing.T) {
	got, err := ParseSingle(`{"score": "high", "reasons": ["Go"]}`)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Score)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeIndividual, ParseMode("individual"))
	assert.Equal(t, ModeBatch, ParseMode(""))
	assert.Equal(t, ModeBatch, ParseMode("parallel"))
}

package compat

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/nlp"
)

const (
	minScore = 0
	maxScore = 100
)

// locate returns the JSON object in a reply: the whole text when it parses,
// otherwise the first brace-balanced object.
func locate(raw string) (gjson.Result, error) {
	text := nlp.StripFences(nlp.Unwrap(raw))
	if text == "" {
		return gjson.Result{}, apperr.ErrEmptyResponse
	}
	if strings.HasPrefix(text, "{") && gjson.Valid(text) {
		return gjson.Parse(text), nil
	}
	obj, ok := nlp.ExtractObject(text)
	if !ok || !gjson.Valid(obj) {
		return gjson.Result{}, apperr.Malformed(errors.New("no json object in reply"))
	}
	return gjson.Parse(obj), nil
}

// ParseBatch reads {"jobs": {"<id>": {"score": .., "reasons": [..]}}}.
func ParseBatch(raw string) (map[string]Result, error) {
	doc, err := locate(raw)
	if err != nil {
		return nil, err
	}
	jobs := doc.Get("jobs")
	if !jobs.IsObject() {
		return nil, apperr.Malformed(errors.New(`reply has no "jobs" object`))
	}
	out := make(map[string]Result)
	jobs.ForEach(func(key, value gjson.Result) bool {
		id := key.String()
		r := resultFrom(value)
		r.JobID = id
		out[id] = r
		return true
	})
	return out, nil
}

// ParseSingle reads one {"score": .., "reasons": [..]} object.
func ParseSingle(raw string) (Result, error) {
	doc, err := locate(raw)
	if err != nil {
		return Result{}, err
	}
	if !doc.Get("score").Exists() {
		return Result{}, apperr.Malformed(errors.New(`reply has no "score"`))
	}
	return resultFrom(doc), nil
}

func resultFrom(v gjson.Result) Result {
	if !v.IsObject() {
		// bare score, e.g. {"jobs": {"a": 80}}
		return Result{Score: coerceScore(v), Reasons: []string{ReasonNoAnalysis}}
	}
	return Result{
		Score:   coerceScore(v.Get("score")),
		Reasons: coerceReasons(v.Get("reasons")),
	}
}

var reLeadingNumber = regexp.MustCompile(`^[-+]?\d+(\.\d+)?`)

// coerceScore turns numbers and numeric strings ("85", "85%", "85.6") into an
// int clamped to [0,100]. Anything else is 0.
func coerceScore(v gjson.Result) int {
	var f float64
	switch v.Type {
	case gjson.Number:
		f = v.Num
	case gjson.String:
		m := reLeadingNumber.FindString(strings.TrimSpace(v.Str))
		if m == "" {
			return 0
		}
		n, err := strconv.ParseFloat(m, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0
		}
		f = n
	default:
		return 0
	}
	return clamp(f)
}

// clamp bounds the float before converting so huge values cannot wrap.
func clamp(score float64) int {
	if math.IsNaN(score) {
		return minScore
	}
	return int(math.Max(minScore, math.Min(maxScore, score)))
}

// coerceReasons keeps array items as strings; a missing or non-array value
// becomes the "no analysis" sentinel.
func coerceReasons(v gjson.Result) []string {
	if !v.IsArray() {
		return []string{ReasonNoAnalysis}
	}
	out := []string{}
	for _, item := range v.Array() {
		var s string
		if item.Type == gjson.String {
			s = item.Str
		} else {
			s = item.Raw
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

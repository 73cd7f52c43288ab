package handlers

import (
	"fmt"
	"unicode/utf8"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
)

// violations collects field errors in request order of checks.
type violations map[string][]string

func (v violations) add(field, format string, args ...any) {
	v[field] = append(v[field], fmt.Sprintf(format, args...))
}

func (v violations) required(field, value string) {
	if value == "" {
		v.add(field, "The %s field is required.", field)
	}
}

func (v violations) maxLen(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		v.add(field, "The %s may not be greater than %d characters.", field, max)
	}
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return apperr.Validation("Invalid request parameters.", v)
}

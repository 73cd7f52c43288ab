// Package prompt builds the natural-language prompts sent to the LLM.
// Every builder is a pure function of its input.
package prompt

import (
	"strings"

	"github.com/muhammedkado/find-job-with-ai/pkg/nlp"
)

type Kind string

const (
	KindExtractResume     Kind = "extract_resume"
	KindExtractResumeJSON Kind = "extract_resume_json"
	KindEnhanceSection    Kind = "enhance_section"
	KindScoreSingleJob    Kind = "score_single_job"
	KindScoreJobBatch     Kind = "score_job_batch"
)

// Character budgets applied before text is embedded.
const (
	MaxBatchJobChars   = 1000
	MaxSingleJobChars  = 2000
	MaxCandidateChars  = 5000
	MaxSkillsChars     = 5000
	MaxSectionChars    = 10000
	MaxResumeTextChars = 12000
)

// System is the system instruction shared by every call.
const System = "You are a precise recruiting assistant. Follow the requested output format exactly and never invent facts."

// Job is a job description keyed by its provider id.
type Job struct {
	ID          string
	Description string
}

// Payload carries the inputs for any prompt kind. Each kind reads only the
// fields it needs.
type Payload struct {
	Text      string
	Section   string
	Candidate string
	Jobs      []Job
}

// Build dispatches on kind. Unknown kinds get a generic template.
func Build(kind Kind, p Payload) string {
	switch kind {
	case KindExtractResume:
		return ExtractResume(p.Text)
	case KindExtractResumeJSON:
		return ExtractResumeJSON(p.Text)
	case KindEnhanceSection:
		return EnhanceSection(p.Section, p.Text)
	case KindScoreSingleJob:
		var job Job
		if len(p.Jobs) > 0 {
			job = p.Jobs[0]
		}
		return ScoreSingleJob(p.Candidate, job)
	case KindScoreJobBatch:
		return ScoreJobBatch(p.Candidate, p.Jobs)
	default:
		return generic(p.Text)
	}
}

func generic(text string) string {
	return "Answer the following request concisely and without markdown.\n\n" + strings.TrimSpace(text)
}

// clean prepares user-supplied text for embedding: valid UTF-8, trimmed, capped.
func clean(s string, limit int) string {
	return strings.TrimSpace(nlp.Truncate(nlp.SanitizeUTF8(s), limit))
}

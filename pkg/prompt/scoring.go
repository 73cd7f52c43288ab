package prompt

import (
	"strings"
)

const importantNotes = `**Important Notes**:
- Return ONLY valid JSON (no markdown)
- Ensure proper JSON escaping
- Array items should be specific technical matches
- If no matches exist, score 0 with empty reasons
- Ignore generic requirements like 'team player'
- Prioritize matches in: technologies, frameworks, specific tools, certifications`

// ScoreJobBatch builds one prompt scoring every job against the candidate.
// Each description is capped at MaxBatchJobChars.
func ScoreJobBatch(candidate string, jobs []Job) string {
	var sb strings.Builder
	sb.WriteString(`**Task**: Analyze job compatibility based on:
- Candidate's technical skills
- Project experience
- Professional Experience
- Career summary
- Job requirements

**Response Format**: STRICTLY VALID JSON
{
  "jobs": {
    "JOB_ID": {
      "score": 0-100,
      "reasons": ["specific match", "..."]
    }
  }
}

**Candidate Profile**:
`)
	sb.WriteString(strings.TrimSpace(candidate))
	sb.WriteString(`
**Job Analysis Instructions**:
1. For each job, identify 3-5 key match reasons
2. Score based on technical requirements matching
3. Prioritize specific technologies over generic terms
4. Consider years of experience where mentioned
5. Match both explicit and implicit requirements

**Job Descriptions**:`)
	for _, j := range jobs {
		sb.WriteString("\n\n--- JOB ID: ")
		sb.WriteString(j.ID)
		sb.WriteString(" ---\n")
		sb.WriteString(clean(j.Description, MaxBatchJobChars))
	}
	sb.WriteString("\n\n")
	sb.WriteString(importantNotes)
	return sb.String()
}

// ScoreSingleJob builds the per-job prompt. The candidate text is capped at
// MaxCandidateChars and the job description at MaxSingleJobChars.
func ScoreSingleJob(candidate string, job Job) string {
	var sb strings.Builder
	sb.WriteString(`**Task**: Rate how well the candidate matches the job below.

**Response Format**: STRICTLY VALID JSON
{"score": 0-100, "reasons": ["specific match", "..."]}

**Candidate Profile**:
`)
	sb.WriteString(clean(candidate, MaxCandidateChars))
	sb.WriteString("\n\n**Job Description** (JOB ID: ")
	sb.WriteString(job.ID)
	sb.WriteString("):\n")
	sb.WriteString(clean(job.Description, MaxSingleJobChars))
	sb.WriteString("\n\n")
	sb.WriteString(importantNotes)
	return sb.String()
}

// CandidateProfile joins the candidate's sections under fixed headers.
// Empty sections are left out.
func CandidateProfile(skills string, projects, experience []string, summary string) string {
	var sb strings.Builder
	sb.WriteString("Skills:\n")
	sb.WriteString(clean(skills, MaxSkillsChars))
	if joined := joinNonEmpty(projects); joined != "" {
		sb.WriteString("\n\nProject Experience:\n")
		sb.WriteString(clean(joined, MaxSectionChars))
	}
	if joined := joinNonEmpty(experience); joined != "" {
		sb.WriteString("\n\nProfessional Experience:\n")
		sb.WriteString(clean(joined, MaxSectionChars))
	}
	if s := strings.TrimSpace(summary); s != "" {
		sb.WriteString("\n\nSummary:\n")
		sb.WriteString(clean(s, MaxSectionChars))
	}
	return sb.String()
}

func joinNonEmpty(items []string) string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return strings.Join(out, "\n")
}

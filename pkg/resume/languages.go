package resume

import "github.com/muhammedkado/find-job-with-ai/pkg/nlp"

// programmingLanguages is the closed set of names treated as programming
// languages when they show up in the languages list.
var programmingLanguages = map[string]struct{}{
	"python": {}, "java": {}, "c++": {}, "c#": {}, "php": {}, "javascript": {},
	"typescript": {}, "ruby": {}, "go": {}, "swift": {}, "kotlin": {}, "perl": {},
	"r": {}, "scala": {}, "objective-c": {}, "html": {}, "css": {},
}

func IsProgrammingLanguage(name string) bool {
	_, ok := programmingLanguages[nlp.NormalizeKey(name)]
	return ok
}

// ClassifyLanguages moves programming languages out of Languages into
// TechnicalSkills. Skills are de-duplicated case-insensitively keeping the
// first-seen casing. Languages becomes nil when no spoken language is left.
func ClassifyLanguages(r *StructuredResume) {
	if r == nil {
		return
	}
	var spoken, programming []string
	for _, l := range r.Languages {
		if IsProgrammingLanguage(l) {
			programming = append(programming, l)
		} else {
			spoken = append(spoken, l)
		}
	}
	r.Languages = spoken

	if len(programming) == 0 && r.TechnicalSkills == nil {
		return
	}
	seen := make(map[string]struct{}, len(r.TechnicalSkills)+len(programming))
	merged := make([]string, 0, len(r.TechnicalSkills)+len(programming))
	for _, s := range append(append([]string{}, r.TechnicalSkills...), programming...) {
		key := nlp.NormalizeKey(s)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, s)
	}
	r.TechnicalSkills = merged
}

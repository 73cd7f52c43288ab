package resume

import (
	"regexp"
	"strings"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/nlp"
)

type field int

const (
	fieldNone field = iota
	fieldName
	fieldSummary
	fieldContact
	fieldEducation
	fieldExperience
	fieldProjects
	fieldSkills
	fieldLanguages
	fieldSocial
)

// labelAliases maps normalized labels to fields. Labels not listed here are
// treated as ordinary text.
var labelAliases = map[string]field{
	"full name":               fieldName,
	"name":                    fieldName,
	"candidate name":          fieldName,
	"summary":                 fieldSummary,
	"professional summary":    fieldSummary,
	"profile":                 fieldSummary,
	"objective":               fieldSummary,
	"contact":                 fieldContact,
	"contact info":            fieldContact,
	"contact information":     fieldContact,
	"contact details":         fieldContact,
	"education":               fieldEducation,
	"experience":              fieldExperience,
	"work experience":         fieldExperience,
	"professional experience": fieldExperience,
	"employment history":      fieldExperience,
	"projects":                fieldProjects,
	"project":                 fieldProjects,
	"personal projects":       fieldProjects,
	"technical skills":        fieldSkills,
	"skills":                  fieldSkills,
	"tech skills":             fieldSkills,
	"languages":               fieldLanguages,
	"spoken languages":        fieldLanguages,
	"social media accounts":   fieldSocial,
	"social media":            fieldSocial,
	"social accounts":         fieldSocial,
	"social links":            fieldSocial,
}

// platformLike are aliases that double as social platform names
// ("Profile: https://..."). Inside the social block they stay entries.
var platformLike = map[string]bool{
	"name":      true,
	"profile":   true,
	"project":   true,
	"objective": true,
}

// reLabel matches "<label>: <value>", tolerating bullets and markdown bold around the label.
var reLabel = regexp.MustCompile(`^[\s*#>-]*([A-Za-z][A-Za-z &/]*?)[\s*]*:[\s*]*(.*)$`)

// matchLabel reports whether line starts a known field. Inside the social
// block, platform-like aliases are not labels.
func matchLabel(line string, active field) (field, string, bool) {
	m := reLabel.FindStringSubmatch(line)
	if m == nil {
		return fieldNone, "", false
	}
	key := nlp.NormalizeKey(m[1])
	f, ok := labelAliases[key]
	if !ok || (active == fieldSocial && platformLike[key]) {
		return fieldNone, "", false
	}
	return f, strings.TrimSpace(m[2]), true
}

type parseState int

const (
	// stateScanning: no field is active, lines are skipped until a label appears.
	stateScanning parseState = iota
	// stateAccumulating: lines without a label are appended to the active field.
	stateAccumulating
)

type lineParser struct {
	state  parseState
	active field
	values map[field]*strings.Builder
}

func newLineParser() *lineParser {
	return &lineParser{state: stateScanning, values: make(map[field]*strings.Builder)}
}

// step consumes one line and performs a single state transition.
func (p *lineParser) step(line string) {
	f, value, isLabel := matchLabel(line, p.active)
	switch p.state {
	case stateScanning:
		if isLabel {
			p.begin(f, value)
		}
	case stateAccumulating:
		if isLabel {
			p.begin(f, value)
			return
		}
		if strings.TrimSpace(line) == "" {
			return
		}
		p.values[p.active].WriteString("\n" + strings.TrimSpace(line))
	}
}

func (p *lineParser) begin(f field, value string) {
	p.state = stateAccumulating
	p.active = f
	b, ok := p.values[f]
	if !ok {
		b = &strings.Builder{}
		p.values[f] = b
	} else if b.Len() > 0 {
		// repeated label continues the same field
		b.WriteString("\n")
	}
	b.WriteString(value)
}

func (p *lineParser) value(f field) (string, bool) {
	b, ok := p.values[f]
	if !ok {
		return "", false
	}
	return b.String(), true
}

// result formats the accumulated values into a StructuredResume.
func (p *lineParser) result() StructuredResume {
	var out StructuredResume
	if v, ok := p.value(fieldName); ok {
		out.Name = scalar(v)
	}
	if v, ok := p.value(fieldSummary); ok {
		out.Summary = scalar(v)
	}
	if v, ok := p.value(fieldContact); ok {
		out.Contact = parseContact(v)
	}
	if v, ok := p.value(fieldEducation); ok {
		out.Education = parseEducation(v)
	}
	if v, ok := p.value(fieldExperience); ok {
		out.Experience = parseExperience(v)
	}
	if v, ok := p.value(fieldProjects); ok {
		out.Projects = parseProjects(v)
	}
	if v, ok := p.value(fieldSkills); ok {
		out.TechnicalSkills = parseList(v)
	}
	if v, ok := p.value(fieldLanguages); ok {
		out.Languages = parseList(v)
	}
	if v, ok := p.value(fieldSocial); ok {
		out.SocialMediaAccounts = parseSocial(v)
	}
	return out
}

// ParseText parses the line-oriented extraction reply. Blank input yields an
// all-null record together with apperr.ErrEmptyResponse.
func ParseText(raw string) (StructuredResume, error) {
	text := nlp.StripFences(nlp.Unwrap(raw))
	if strings.TrimSpace(text) == "" {
		return StructuredResume{}, apperr.ErrEmptyResponse
	}
	p := newLineParser()
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		p.step(line)
	}
	return p.result(), nil
}

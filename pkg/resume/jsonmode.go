package resume

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/nlp"
)

var errNoJSONObject = errors.New("no json object found in reply")

// Defaults is the schema every JSON-mode result is merged over:
// scalars null, lists empty, contact present with null members.
func Defaults() StructuredResume {
	return StructuredResume{
		Contact:             &Contact{},
		Education:           []Education{},
		Experience:          []Experience{},
		Projects:            []Project{},
		TechnicalSkills:     []string{},
		Languages:           []string{},
		SocialMediaAccounts: map[string]string{},
	}
}

// ParseJSON parses the full-JSON extraction reply. It tries the whole reply,
// then the first brace-balanced object, and fails with MalformedLLMResponse.
// Unknown keys are ignored and missing keys keep their defaults.
func ParseJSON(raw string) (StructuredResume, error) {
	text := nlp.StripFences(nlp.Unwrap(raw))
	if text == "" {
		return Defaults(), apperr.ErrEmptyResponse
	}
	doc, err := locateObject(text)
	if err != nil {
		return StructuredResume{}, apperr.Malformed(err)
	}

	out := Defaults()
	out.Name = jsonScalar(first(doc, "name", "fullName", "full_name"))
	out.Summary = jsonScalar(first(doc, "summary", "professionalSummary"))
	if c := first(doc, "contact", "contactInformation"); c.Exists() {
		out.Contact = jsonContact(c)
	}
	if v := first(doc, "education"); v.Exists() {
		out.Education = jsonEducation(v)
	}
	if v := first(doc, "experience", "workExperience"); v.Exists() {
		out.Experience = jsonExperience(v)
	}
	if v := first(doc, "projects"); v.Exists() {
		out.Projects = jsonProjects(v)
	}
	if v := first(doc, "technicalSkills", "technical_skills", "skills"); v.Exists() {
		out.TechnicalSkills = jsonList(v)
	}
	if v := first(doc, "languages"); v.Exists() {
		out.Languages = jsonList(v)
	}
	if v := first(doc, "socialMediaAccounts", "social_media_accounts", "socialMedia"); v.Exists() {
		out.SocialMediaAccounts = jsonSocial(v)
	}
	return out, nil
}

func locateObject(text string) (gjson.Result, error) {
	if strings.HasPrefix(text, "{") && gjson.Valid(text) {
		return gjson.Parse(text), nil
	}
	obj, ok := nlp.ExtractObject(text)
	if !ok {
		return gjson.Result{}, errNoJSONObject
	}
	if !gjson.Valid(obj) {
		return gjson.Result{}, errors.New("extracted object is not valid json")
	}
	return gjson.Parse(obj), nil
}

func first(doc gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := doc.Get(k); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

func jsonScalar(v gjson.Result) *string {
	switch v.Type {
	case gjson.String, gjson.Number:
		return scalar(v.String())
	}
	return nil
}

func jsonText(v gjson.Result) string {
	switch v.Type {
	case gjson.String, gjson.Number:
		return strings.TrimSpace(v.String())
	}
	return ""
}

func jsonContact(v gjson.Result) *Contact {
	if v.Type == gjson.String {
		return parseContact(v.Str)
	}
	return &Contact{
		Email: jsonScalar(first(v, "email")),
		Phone: jsonScalar(first(v, "phone", "phoneNumber")),
		City:  jsonScalar(first(v, "city", "location")),
	}
}

// jsonList accepts an array of strings or a single delimited string.
func jsonList(v gjson.Result) []string {
	out := []string{}
	if v.Type == gjson.String {
		if l := parseList(v.Str); l != nil {
			out = l
		}
		return out
	}
	for _, item := range v.Array() {
		if s := jsonText(item); s != "" && !isPlaceholder(s) {
			out = append(out, s)
		}
	}
	return out
}

func jsonEducation(v gjson.Result) []Education {
	out := []Education{}
	for _, item := range v.Array() {
		if item.Type == gjson.String {
			out = append(out, parseEducation(item.Str)...)
			continue
		}
		if !item.IsObject() {
			continue
		}
		out = append(out, Education{
			Degree:         jsonText(first(item, "degree")),
			Institution:    jsonText(first(item, "institution", "school", "university")),
			StartingYear:   jsonText(first(item, "startingYear", "starting_year", "startYear", "start")),
			GraduationYear: jsonText(first(item, "graduationYear", "graduation_year", "endYear", "end")),
		})
	}
	return out
}

func jsonExperience(v gjson.Result) []Experience {
	out := []Experience{}
	for _, item := range v.Array() {
		if item.Type == gjson.String {
			out = append(out, parseExperience(item.Str)...)
			continue
		}
		if !item.IsObject() {
			continue
		}
		out = append(out, Experience{
			Position:    jsonText(first(item, "position", "title", "role")),
			Company:     jsonText(first(item, "company", "employer")),
			Duration:    jsonText(first(item, "duration", "period", "dates")),
			Description: jsonText(first(item, "description")),
		})
	}
	return out
}

func jsonProjects(v gjson.Result) []Project {
	out := []Project{}
	for _, item := range v.Array() {
		if item.Type == gjson.String {
			out = append(out, parseProjects(item.Str)...)
			continue
		}
		if !item.IsObject() {
			continue
		}
		out = append(out, Project{
			Title:       jsonText(first(item, "title", "name")),
			Description: jsonText(first(item, "description")),
		})
	}
	return out
}

// jsonSocial accepts {"platform": "url"}, [{"platform":..,"url":..}] or "Platform: URL" lines.
func jsonSocial(v gjson.Result) map[string]string {
	out := map[string]string{}
	switch {
	case v.Type == gjson.String:
		return parseSocial(v.Str)
	case v.IsObject():
		v.ForEach(func(key, value gjson.Result) bool {
			platform := strings.TrimSpace(key.String())
			url := jsonText(value)
			if platform != "" && url != "" && !isPlaceholder(url) {
				out[platform] = url
			}
			return true
		})
	case v.IsArray():
		for _, item := range v.Array() {
			platform := jsonText(first(item, "platform", "name"))
			url := jsonText(first(item, "url", "link"))
			if platform != "" && url != "" {
				out[platform] = url
			}
		}
	}
	return out
}

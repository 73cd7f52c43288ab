package resume

import (
	"regexp"
	"strings"

	"github.com/muhammedkado/find-job-with-ai/pkg/nlp"
)

// placeholders are values the model writes instead of leaving a field empty.
var placeholders = map[string]struct{}{
	"none": {}, "n/a": {}, "na": {}, "null": {}, "nil": {}, "-": {}, "unknown": {},
	"not found": {}, "not provided": {}, "not available": {}, "not specified": {}, "not mentioned": {},
}

func isPlaceholder(s string) bool {
	_, ok := placeholders[nlp.NormalizeKey(strings.Trim(s, ".<>"))]
	return ok
}

// scalar joins a multi-line value into one line; empty or placeholder values are nil.
func scalar(v string) *string {
	s := strings.Join(nlp.Lines(v), " ")
	if s == "" || isPlaceholder(s) {
		return nil
	}
	return strPtr(s)
}

// parseList tokenizes on comma, semicolon and newline. Empty results are nil.
func parseList(v string) []string {
	var out []string
	for _, tok := range nlp.SplitList(v) {
		tok = strings.TrimLeft(tok, "-*• ")
		if tok == "" || isPlaceholder(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

var reContactPart = regexp.MustCompile(`(?i)^(email|phone|city)\s*:\s*(.*)$`)

// parseContact scans comma separated segments for email, phone and city
// sub-labels. Other segments are ignored.
func parseContact(v string) *Contact {
	c := &Contact{}
	segments := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == '\n' })
	for _, seg := range segments {
		m := reContactPart.FindStringSubmatch(strings.TrimSpace(seg))
		if m == nil {
			continue
		}
		val := strings.TrimSpace(m[2])
		if val == "" || isPlaceholder(val) {
			continue
		}
		switch strings.ToLower(m[1]) {
		case "email":
			if c.Email == nil {
				c.Email = strPtr(val)
			}
		case "phone":
			if c.Phone == nil {
				c.Phone = strPtr(val)
			}
		case "city":
			if c.City == nil {
				c.City = strPtr(val)
			}
		}
	}
	return c
}

// rows splits v into pipe-delimited rows, keeping only rows with at least
// minCols columns. Markdown table borders, separator rows and echoed
// header rows are skipped.
func rows(v string, minCols int, header ...string) [][]string {
	var out [][]string
	for _, line := range nlp.Lines(v) {
		line = strings.TrimLeft(line, "-*• ")
		line = strings.Trim(strings.TrimSpace(line), "|")
		cols := strings.Split(line, "|")
		if len(cols) < minCols {
			continue
		}
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		if isSeparatorRow(cols) || isHeaderRow(cols, header) {
			continue
		}
		out = append(out, cols)
	}
	return out
}

func isSeparatorRow(cols []string) bool {
	for _, c := range cols {
		if strings.Trim(c, "-: ") != "" {
			return false
		}
	}
	return true
}

func isHeaderRow(cols, header []string) bool {
	if len(header) == 0 {
		return false
	}
	for i, h := range header {
		if i >= len(cols) || nlp.NormalizeKey(strings.Trim(cols[i], "<>")) != h {
			return false
		}
	}
	return true
}

func parseEducation(v string) []Education {
	out := []Education{}
	for _, c := range rows(v, 4, "degree", "institution") {
		out = append(out, Education{
			Degree:         c[0],
			Institution:    c[1],
			StartingYear:   c[2],
			GraduationYear: c[3],
		})
	}
	return out
}

func parseExperience(v string) []Experience {
	out := []Experience{}
	for _, c := range rows(v, 4, "position", "company") {
		out = append(out, Experience{
			Position:    c[0],
			Company:     c[1],
			Duration:    c[2],
			Description: strings.Join(c[3:], " | "),
		})
	}
	return out
}

func parseProjects(v string) []Project {
	out := []Project{}
	for _, c := range rows(v, 2, "title", "description") {
		out = append(out, Project{
			Title:       c[0],
			Description: strings.Join(c[1:], " | "),
		})
	}
	return out
}

var reSocial = regexp.MustCompile(`^([^:/]+?)\s*:\s*(\S.*)$`)

// parseSocial reads "platform: url" lines. Lines missing either half are dropped.
func parseSocial(v string) map[string]string {
	out := map[string]string{}
	for _, line := range nlp.Lines(v) {
		line = strings.TrimLeft(line, "-*• ")
		m := reSocial.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		platform := strings.TrimSpace(strings.Trim(m[1], "*"))
		url := strings.TrimSpace(m[2])
		switch strings.ToLower(platform) {
		case "", "http", "https":
			continue
		}
		if url == "" || isPlaceholder(url) {
			continue
		}
		if _, dup := out[platform]; !dup {
			out[platform] = url
		}
	}
	return out
}

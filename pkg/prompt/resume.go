package prompt

import "strings"

const extractInstructions = `Extract the following information from the résumé text below.
Return each field on its own line, in exactly this order and with exactly these labels.
Do not add any commentary, headings, explanations or markdown.

Full Name: <full name>
Summary: <two or three sentence professional summary>
Contact: Email: <email>, Phone: <phone>, City: <city>
Education:
<Degree> | <Institution> | <Starting Year> | <Graduation Year>
Experience:
<Position> | <Company> | <Duration> | <Description>
Projects:
<Title> | <Description>
Technical Skills: <skill>, <skill>, ...
Languages: <language>, <language>, ...
Social Media Accounts:
<Platform>: <URL>

Rules:
- One Education, Experience or Project entry per line, columns separated by " | ".
- Social media accounts go one per line as "Platform: URL".
- Write "None" after a label when the résumé has no such information.
- Do not invent information that is not in the résumé.`

const extractJSONInstructions = `Extract the résumé below into ONE JSON object with exactly these keys:
{
  "name": string|null,
  "summary": string|null,
  "contact": {"email": string|null, "phone": string|null, "city": string|null},
  "education": [{"degree": string, "institution": string, "startingYear": string, "graduationYear": string}],
  "experience": [{"position": string, "company": string, "duration": string, "description": string}],
  "projects": [{"title": string, "description": string}],
  "technicalSkills": [string],
  "languages": [string],
  "socialMediaAccounts": {"<platform>": "<url>"}
}

Rules:
- Return ONLY the JSON object, no markdown fences and no prose.
- Use null for missing values and [] for empty lists.
- Do not add extra keys and do not invent information.`

// ExtractResume asks for the line-oriented "Label: value" format.
func ExtractResume(resumeText string) string {
	return extractInstructions + "\n\nRésumé:\n" + clean(resumeText, MaxResumeTextChars)
}

// ExtractResumeJSON asks for the full-JSON format.
func ExtractResumeJSON(resumeText string) string {
	return extractJSONInstructions + "\n\nRésumé:\n" + clean(resumeText, MaxResumeTextChars)
}

// Sections accepted by EnhanceSection. Anything else gets the general template.
const (
	SectionExperience = "experience"
	SectionProject    = "project"
	SectionEducation  = "education"
	SectionSummary    = "summary"
	SectionGeneral    = "general"
)

var enhanceTemplates = map[string]string{
	SectionExperience: "Rewrite the following work experience entry as a concise, achievement-focused description. Start with a strong action verb and keep any numbers from the original.",
	SectionProject:    "Rewrite the following project description so it highlights the technologies used and the outcome.",
	SectionEducation:  "Rewrite the following education entry so it reads clearly and mentions relevant coursework or honours present in the text.",
	SectionSummary:    "Rewrite the following professional summary so it is confident, specific and tailored to technical roles.",
	SectionGeneral:    "Improve the following résumé text for clarity and impact.",
}

// EnhanceSection picks the template for section and appends the caller's text.
func EnhanceSection(section, text string) string {
	tmpl, ok := enhanceTemplates[strings.ToLower(strings.TrimSpace(section))]
	if !ok {
		tmpl = enhanceTemplates[SectionGeneral]
	}
	var sb strings.Builder
	sb.WriteString(tmpl)
	sb.WriteString("\nReturn at most two lines of plain text. No markdown, bullet points or quotes, and no facts that are not in the original.")
	sb.WriteString("\n\nText:\n")
	sb.WriteString(clean(text, MaxSectionChars))
	return sb.String()
}

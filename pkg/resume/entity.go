package resume

// StructuredResume is the structured form of a résumé.
// Scalars are nil when the field was not found. Slices are empty when the
// model explicitly reported nothing and nil when extraction failed.
type StructuredResume struct {
	Name                *string           `json:"name"`
	Summary             *string           `json:"summary"`
	Contact             *Contact          `json:"contact"`
	Education           []Education       `json:"education"`
	Experience          []Experience      `json:"experience"`
	Projects            []Project         `json:"projects"`
	TechnicalSkills     []string          `json:"technicalSkills"`
	Languages           []string          `json:"languages"`
	SocialMediaAccounts map[string]string `json:"socialMediaAccounts"`
}

type Contact struct {
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	City  *string `json:"city"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	StartingYear   string `json:"startingYear"`
	GraduationYear string `json:"graduationYear"`
}

type Experience struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Format is the prompt/response format version used for extraction.
type Format string

const (
	// FormatLines is the "Label: value" line format.
	FormatLines Format = "lines"
	// FormatJSON is the full-JSON format.
	FormatJSON Format = "json"
)

// ParseFormat maps a config value to a Format, defaulting to FormatLines.
func ParseFormat(s string) Format {
	if Format(s) == FormatJSON {
		return FormatJSON
	}
	return FormatLines
}

func strPtr(s string) *string { return &s }

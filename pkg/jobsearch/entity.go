package jobsearch

// Listing is one job posting as returned by the search provider. Only ID and
// Description drive scoring; everything else is passed through.
type Listing struct {
	ID             string  `json:"job_id"`
	Title          string  `json:"job_title"`
	Description    string  `json:"job_description"`
	PostedAt       string  `json:"job_posted_at"`
	Location       string  `json:"job_location"`
	Publisher      string  `json:"job_publisher"`
	ApplyLink      string  `json:"job_apply_link"`
	EmploymentType string  `json:"job_employment_type"`
	EmployerLogo   *string `json:"employer_logo"`
	EmployerName   string  `json:"employer_name"`
}

// Query mirrors the provider's search parameters.
type Query struct {
	Query      string
	Page       int
	NumPages   int
	Country    string
	DatePosted string
}

// Result keeps the provider's raw body next to the decoded listings.
type Result struct {
	Raw      []byte
	Listings []Listing
}

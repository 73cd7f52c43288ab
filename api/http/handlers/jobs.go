package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/muhammedkado/find-job-with-ai/api/http/presenter"
	"github.com/muhammedkado/find-job-with-ai/pkg/apperr"
	"github.com/muhammedkado/find-job-with-ai/pkg/compat"
	"github.com/muhammedkado/find-job-with-ai/pkg/jobsearch"
	"github.com/muhammedkado/find-job-with-ai/pkg/matching"
	"github.com/muhammedkado/find-job-with-ai/pkg/prompt"
)

const (
	defaultSearchQuery = "developer jobs in jordan"
	defaultMatchQuery  = "developer jobs in usa"
)

type JobsHandler struct {
	search jobsearch.Searcher
	match  matching.Service
}

func NewJobsHandler(search jobsearch.Searcher, match matching.Service) *JobsHandler {
	return &JobsHandler{search: search, match: match}
}

// Search proxies the job-search provider and returns its JSON as is.
// @Summary     Search jobs
// @Tags        Jobs
// @Produce     json
// @Param       query       query string false "Search query" default(developer jobs in jordan)
// @Param       position    query string false "Alias of query"
// @Param       page        query int    false "Page"      default(1)
// @Param       num_pages   query int    false "Pages"     default(1)
// @Param       country     query string false "Country"   default(jo)
// @Param       date_posted query string false "all, today, 3days, week, month" default(all)
// @Success     200 {object} map[string]any
// @Failure     502 {object} presenter.ErrorResponse
// @Router      /jobsearch [get]
func (h *JobsHandler) Search(c *fiber.Ctx) error {
	q := jobsearch.Query{
		Query:      queryString(c, defaultSearchQuery, "query", "position"),
		Page:       queryInt(c, "page", 1),
		NumPages:   queryInt(c, "num_pages", 1),
		Country:    strings.ToLower(queryString(c, "jo", "country")),
		DatePosted: queryString(c, "all", "date_posted"),
	}
	res, err := h.search.Search(c.UserContext(), q)
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch jobs")
	}
	return presenter.Raw(c, http.StatusOK, res.Raw)
}

type descriptionDTO struct {
	Description string `json:"description"`
}

type matchRequest struct {
	Skills     string           `json:"skills"`
	Projects   []descriptionDTO `json:"projects"`
	Experience []descriptionDTO `json:"experience"`
	Summary    string           `json:"summary"`
	Position   string           `json:"position"`
	Contact    map[string]any   `json:"contact"`
	Page       int              `json:"page"`
	NumPages   int              `json:"num_pages"`
	Country    string           `json:"country"`
	DatePosted string           `json:"date_posted"`
	Mode       string           `json:"mode"`
}

func (r matchRequest) validate() error {
	v := violations{}
	v.required("skills", strings.TrimSpace(r.Skills))
	v.maxLen("skills", r.Skills, prompt.MaxSkillsChars)
	for i, p := range r.Projects {
		v.maxLen(fieldIndex("projects", i), p.Description, prompt.MaxSectionChars)
	}
	for i, e := range r.Experience {
		v.maxLen(fieldIndex("experience", i), e.Description, prompt.MaxSectionChars)
	}
	v.maxLen("summary", r.Summary, prompt.MaxSectionChars)
	if m := strings.TrimSpace(r.Mode); m != "" && m != string(compat.ModeBatch) && m != string(compat.ModeIndividual) {
		v.add("mode", "The selected mode is invalid.")
	}
	return v.err()
}

func (r matchRequest) toDomain() matching.Request {
	out := matching.Request{
		Skills:  r.Skills,
		Summary: r.Summary,
		Search: jobsearch.Query{
			Query:      orDefault(r.Position, defaultMatchQuery),
			Page:       orDefaultInt(r.Page, 1),
			NumPages:   orDefaultInt(r.NumPages, 2),
			Country:    strings.ToLower(orDefault(r.Country, "us")),
			DatePosted: orDefault(r.DatePosted, "all"),
		},
	}
	if m := strings.TrimSpace(r.Mode); m != "" {
		out.Mode = compat.ParseMode(m)
	}
	for _, p := range r.Projects {
		out.Projects = append(out.Projects, p.Description)
	}
	for _, e := range r.Experience {
		out.Experience = append(out.Experience, e.Description)
	}
	return out
}

// Jobs searches jobs for the candidate and ranks them by compatibility.
// @Summary     Ranked job matches
// @Tags        Jobs
// @Accept      json
// @Produce     json
// @Param       input body matchRequest true "Candidate profile and search parameters"
// @Success     200 {object} ranking.List
// @Failure     422 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /jobs [post]
func (h *JobsHandler) Jobs(c *fiber.Ctx) error {
	var req matchRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Fail(c, invalid("body", "The request body must be valid JSON."), "")
	}
	if err := req.validate(); err != nil {
		return presenter.Fail(c, err, "")
	}
	b, err := h.match.Match(c.UserContext(), req.toDomain())
	switch {
	case apperr.Is(err, apperr.KindUpstreamUnavailable):
		return presenter.Fail(c, err, "Failed to fetch jobs")
	case err != nil:
		return presenter.Fail(c, err, "")
	}
	return presenter.Raw(c, http.StatusOK, b)
}

func fieldIndex(field string, i int) string {
	return field + "." + strconv.Itoa(i) + ".description"
}

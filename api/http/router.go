package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muhammedkado/find-job-with-ai/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Every route is served
// both at the root and under /api.
func Register(app *fiber.App, health *handlers.HealthHandler, cv *handlers.CVHandler, jobs *handlers.JobsHandler) {
	for _, r := range []fiber.Router{app, app.Group("/api")} {
		// Health and readiness endpoints for probes/monitoring
		r.Get("/health", health.Health)
		r.Get("/ready", health.Ready)

		// Resume analysis
		r.Post("/analyze-cv", cv.Analyze)
		r.Post("/upload-cv", cv.Analyze)
		r.Post("/enhance", cv.Enhance)

		// Jobs
		r.Get("/jobsearch", jobs.Search)
		r.Post("/jobs", jobs.Jobs)
	}
}

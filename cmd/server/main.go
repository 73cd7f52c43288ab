// @title         find-job-with-ai API
// @version       1.0
// @description   Résumé analysis and job matching backed by an LLM.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	flag "github.com/spf13/pflag"

	_ "github.com/muhammedkado/find-job-with-ai/docs"

	// internal imports
	"github.com/muhammedkado/find-job-with-ai/api/http"
	"github.com/muhammedkado/find-job-with-ai/api/http/handlers"
	"github.com/muhammedkado/find-job-with-ai/api/http/middleware"
	"github.com/muhammedkado/find-job-with-ai/api/http/presenter"
	"github.com/muhammedkado/find-job-with-ai/pkg/cache"
	"github.com/muhammedkado/find-job-with-ai/pkg/compat"
	"github.com/muhammedkado/find-job-with-ai/pkg/config"
	"github.com/muhammedkado/find-job-with-ai/pkg/health"
	"github.com/muhammedkado/find-job-with-ai/pkg/health/checkers"
	"github.com/muhammedkado/find-job-with-ai/pkg/jobsearch"
	"github.com/muhammedkado/find-job-with-ai/pkg/llm"
	"github.com/muhammedkado/find-job-with-ai/pkg/llm/gemini"
	"github.com/muhammedkado/find-job-with-ai/pkg/llm/openrouter"
	"github.com/muhammedkado/find-job-with-ai/pkg/logger"
	"github.com/muhammedkado/find-job-with-ai/pkg/matching"
	"github.com/muhammedkado/find-job-with-ai/pkg/ratelimit"
	"github.com/muhammedkado/find-job-with-ai/pkg/resume"
)

const memoryCacheEntries = 1024

func main() {
	envFile := flag.String("env-file", "", "path to a .env file (default ./.env)")
	debug := flag.Bool("debug", false, "include error details in responses (overrides APP_DEBUG)")
	flag.Parse()

	// Load configuration from env/.env
	var cfg config.Config
	if *envFile != "" {
		cfg = config.Load(*envFile)
	} else {
		cfg = config.Load()
	}
	if *debug {
		cfg.Debug = true
	}

	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log := logger.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model, err := newChatModel(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.LLMProvider).Msg("init llm client")
	}
	if cfg.RapidAPIKey == "" {
		log.Warn().Msg("RAPIDAPI_KEY is not set: job search requests will fail")
	}

	// Response cache: in-process, plus redis when configured
	mem := cache.NewMemory(memoryCacheEntries)
	go mem.Cleanup(ctx, time.Minute)
	var (
		respCache cache.Cache = mem
		readiness []health.Checker
	)
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect")
		}
		defer rc.Close()
		respCache = &cache.Tiered{L1: mem, L2: rc, L1TTL: cfg.CacheTTL}
		readiness = append(readiness, checkers.NewRedisChecker(rc.Client()))
	}

	// Wire dependencies
	searcher := jobsearch.New(cfg.RapidAPIKey, cfg.JSearchBase, cfg.JSearchHost, cfg.SearchTimeout)
	searcher.Pacer = ratelimit.NewPacer(float64(cfg.SearchRatePerSecond), 1)
	scorer := compat.NewScorer(model, ratelimit.NewPerMinute(cfg.ScoringRatePerMinute))
	matchSvc := matching.NewService(searcher, scorer, respCache, cfg.CacheTTL, compat.ParseMode(cfg.ScoringMode))
	resumeSvc := resume.NewAnalysisService(model, resume.PDFExtractor{}, resume.ParseFormat(cfg.ResumePromptFormat))

	healthHandler := handlers.NewHealthHandler(health.NewService(readiness...))
	cvHandler := handlers.NewCVHandler(resumeSvc)
	jobsHandler := handlers.NewJobsHandler(searcher, matchSvc)

	app := fiber.New(fiber.Config{
		AppName:               "find-job-with-ai",
		ErrorHandler:          presenter.ErrorHandler,
		BodyLimit:             4 << 20,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          5 * time.Minute,
		DisableStartupMessage: true,
	})
	app.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.Recover(),
		presenter.Debug(cfg.Debug),
	)

	// Register routes
	http.Register(app, healthHandler, cvHandler, jobsHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	// Start server
	log.Info().
		Str("port", cfg.Port).
		Str("llm", model.Name()).
		Str("scoring_mode", cfg.ScoringMode).
		Bool("redis", cfg.RedisURL != "").
		Msg("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newChatModel builds the LLM client selected by LLM_PROVIDER.
func newChatModel(ctx context.Context, cfg config.Config) (llm.ChatModel, error) {
	switch cfg.LLMProvider {
	case "openrouter":
		return openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
		), nil
	default:
		return gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)
	}
}

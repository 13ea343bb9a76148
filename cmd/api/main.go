package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"go-job-screening/internal/config"
	"go-job-screening/internal/handlers"
	"go-job-screening/internal/repositories"
	"go-job-screening/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	jobRepo := repositories.NewJobRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	screeningRepo := repositories.NewScreeningRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(
		cfg.Storage.UploadPath,
		cfg.Storage.NotificationPath,
	)
	if err := storageService.EnsureDirs(); err != nil {
		log.Fatalf("❌ Failed to create storage directories: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	matcher := services.NewMatcherService(cfg.Matching.FilterStopWords)
	ranker := services.NewRankerService(matcher, cfg.Matching.ScoreConcurrency)
	gate := services.NewThresholdGate(cfg.Matching.ScoreThreshold)
	mailer := services.NewSMTPMailer(cfg.SMTP)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	llmService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Worker.RetryMaxAttempts)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	summarizer := services.NewSummarizerService(jobRepo, llmService, cfg.Matching.ExternalCallTimeout)
	jobsLoader := services.NewJobsLoaderService(jobRepo, summarizer)
	scheduler := services.NewSchedulerService(
		interviewRepo,
		storageService,
		mailer,
		cfg.Matching.ExternalCallTimeout,
	)

	// Initialize screener
	screenerService := services.NewScreenerService(
		screeningRepo,
		docRepo,
		jobRepo,
		matchRepo,
		interviewRepo,
		pdfParser,
		summarizer,
		ranker,
		gate,
		scheduler,
		cfg.Matching.TopK,
	)
	log.Println("✅ Screener service initialized")

	// Initialize worker
	worker := services.NewWorker(
		screeningRepo,
		screenerService,
		cfg.Worker.Concurrency,
	)

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(
		docRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	screenHandler := handlers.NewScreenHandler(
		screeningRepo,
		docRepo,
		worker,
	)
	resultHandler := handlers.NewResultHandler(screeningRepo, screenerService)
	jobsHandler := handlers.NewJobsHandler(jobRepo, jobsLoader)
	coverLetterHandler := handlers.NewCoverLetterHandler(
		docRepo,
		jobRepo,
		pdfParser,
		llmService,
		cfg.Matching.ExternalCallTimeout,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Job Screening API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Get("/jobs", jobsHandler.HandleListJobs)
	api.Post("/jobs/import", jobsHandler.HandleImportJobs)
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/screen", screenHandler.HandleScreen)
	api.Get("/result/:id", resultHandler.HandleGetResult)
	api.Post("/cover-letter", coverLetterHandler.HandleDraftCoverLetter)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Job Screening API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET  /api/v1/jobs",
				"POST /api/v1/jobs/import",
				"POST /api/v1/upload",
				"POST /api/v1/screen",
				"GET  /api/v1/result/:id",
				"POST /api/v1/cover-letter",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

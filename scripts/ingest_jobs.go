package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go-job-screening/internal/config"
	"go-job-screening/internal/repositories"
	"go-job-screening/internal/services"
)

// Offline corpus ingestion: load the job description CSV, store the postings,
// and precompute their summaries so the first screening request does not pay
// the LLM latency.
func main() {
	corpusPath := flag.String("corpus", "./data/job_description.csv", "path to the job corpus CSV")
	summarize := flag.Bool("summarize", true, "precompute summaries via the LLM")
	flag.Parse()

	log.Println("🚀 Starting job corpus ingestion...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	jobRepo := repositories.NewJobRepository(db)

	llmService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Worker.RetryMaxAttempts)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	summarizer := services.NewSummarizerService(jobRepo, llmService, cfg.Matching.ExternalCallTimeout)
	jobsLoader := services.NewJobsLoaderService(jobRepo, summarizer)

	f, err := os.Open(*corpusPath)
	if err != nil {
		log.Fatalf("❌ Failed to open corpus file %s: %v", *corpusPath, err)
	}
	defer f.Close()

	imported, summarized, err := jobsLoader.ImportCorpus(context.Background(), f, *summarize)
	if err != nil {
		log.Fatalf("❌ Corpus ingestion failed: %v", err)
	}

	log.Printf("✅ Imported %d job postings (%d summarized)\n", imported, summarized)
}

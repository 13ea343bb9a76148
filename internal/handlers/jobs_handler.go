package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"go-job-screening/internal/models"
	"go-job-screening/internal/repositories"
	"go-job-screening/internal/services"
)

type JobsHandler struct {
	jobRepo    repositories.JobRepository
	jobsLoader services.JobsLoaderService
}

func NewJobsHandler(
	jobRepo repositories.JobRepository,
	jobsLoader services.JobsLoaderService,
) *JobsHandler {
	return &JobsHandler{
		jobRepo:    jobRepo,
		jobsLoader: jobsLoader,
	}
}

// HandleListJobs handles GET /jobs
func (h *JobsHandler) HandleListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list job postings",
		})
	}

	return c.JSON(fiber.Map{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// HandleImportJobs handles POST /jobs/import with a "corpus" CSV file. The
// optional "summarize" form value triggers summary precompute inline.
func (h *JobsHandler) HandleImportJobs(c *fiber.Ctx) error {
	file, err := c.FormFile("corpus")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No corpus uploaded. Please upload 'corpus' as a CSV file.",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to open corpus file: %v", err),
		})
	}
	defer src.Close()

	summarize := c.FormValue("summarize") == "true"

	imported, summarized, err := h.jobsLoader.ImportCorpus(c.Context(), src, summarize)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("corpus import failed: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.ImportJobsResponse{
		Imported:   imported,
		Summarized: summarized,
	})
}

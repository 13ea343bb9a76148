package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-job-screening/internal/models"
	"go-job-screening/internal/repositories"
	"go-job-screening/internal/services"
)

type CoverLetterHandler struct {
	docRepo     repositories.DocumentRepository
	jobRepo     repositories.JobRepository
	pdfParser   services.PDFParserService
	llm         services.LLMService
	callTimeout time.Duration
}

func NewCoverLetterHandler(
	docRepo repositories.DocumentRepository,
	jobRepo repositories.JobRepository,
	pdfParser services.PDFParserService,
	llm services.LLMService,
	callTimeout time.Duration,
) *CoverLetterHandler {
	return &CoverLetterHandler{
		docRepo:     docRepo,
		jobRepo:     jobRepo,
		pdfParser:   pdfParser,
		llm:         llm,
		callTimeout: callTimeout,
	}
}

// HandleDraftCoverLetter handles POST /cover-letter
func (h *CoverLetterHandler) HandleDraftCoverLetter(c *fiber.Ctx) error {
	var req models.CoverLetterRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	docID, err := uuid.Parse(req.ResumeDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_document_id format",
		})
	}

	doc, err := h.docRepo.FindByID(docID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	job, err := h.jobRepo.FindByID(req.JobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job posting not found",
		})
	}

	resumeText, err := h.pdfParser.ExtractText(doc.FilePath)
	if err != nil {
		log.Printf("⚠️  Failed to parse resume %s for cover letter: %v\n", doc.ID, err)
		resumeText = ""
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.callTimeout)
	defer cancel()

	letter, err := h.llm.DraftCoverLetter(ctx, resumeText, job.Description)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Cover letter generation failed",
		})
	}

	return c.JSON(models.CoverLetterResponse{
		JobID:       job.ID,
		CoverLetter: letter,
	})
}

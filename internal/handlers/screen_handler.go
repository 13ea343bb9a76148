package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-job-screening/internal/models"
	"go-job-screening/internal/repositories"
	"go-job-screening/internal/services"
)

type ScreenHandler struct {
	screeningRepo repositories.ScreeningRepository
	docRepo       repositories.DocumentRepository
	worker        services.Worker
}

func NewScreenHandler(
	screeningRepo repositories.ScreeningRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *ScreenHandler {
	return &ScreenHandler{
		screeningRepo: screeningRepo,
		docRepo:       docRepo,
		worker:        worker,
	}
}

// HandleScreen handles POST /screen
func (h *ScreenHandler) HandleScreen(c *fiber.Ctx) error {
	var req models.ScreenRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeDocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_document_id is required",
		})
	}

	docID, err := uuid.Parse(req.ResumeDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_document_id format",
		})
	}

	if _, err := h.docRepo.FindByID(docID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	screening := &models.ScreeningJob{
		ID:               uuid.New(),
		ResumeDocumentID: docID,
		CandidateEmail:   req.CandidateEmail,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.screeningRepo.Create(screening); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create screening job",
		})
	}

	h.worker.EnqueueScreening(screening.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.ScreenResponse{
		ID:     screening.ID.String(),
		Status: string(models.StatusQueued),
	})
}

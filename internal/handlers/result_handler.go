package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-job-screening/internal/models"
	"go-job-screening/internal/repositories"
	"go-job-screening/internal/services"
)

type ResultHandler struct {
	screeningRepo repositories.ScreeningRepository
	screener      services.ScreenerService
}

func NewResultHandler(
	screeningRepo repositories.ScreeningRepository,
	screener services.ScreenerService,
) *ResultHandler {
	return &ResultHandler{
		screeningRepo: screeningRepo,
		screener:      screener,
	}
}

// HandleGetResult handles GET /result/:id
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	screeningID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid screening ID format",
		})
	}

	screening, err := h.screeningRepo.FindByID(screeningID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Screening not found",
		})
	}

	response := models.ResultResponse{
		ID:     screening.ID.String(),
		Status: string(screening.Status),
	}

	if screening.Status == models.StatusCompleted {
		result, err := h.screener.BuildResult(screening)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to assemble screening result",
			})
		}
		response.Result = result
	}

	if screening.Status == models.StatusFailed && screening.ErrorMessage != nil {
		response.ErrorMessage = screening.ErrorMessage
	}

	return c.JSON(response)
}

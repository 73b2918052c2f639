// internal/api/v1/handlers/achievement_handler.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/service"
)

type AchievementHandler struct {
	AchievementService service.AchievementService
}

func NewAchievementHandler(achievementService service.AchievementService) *AchievementHandler {
	return &AchievementHandler{AchievementService: achievementService}
}

// GetAchievements godoc
// @Summary Get Achievements
// @Description Retrieves the user's unlocked achievements plus locked (non-hidden) ones with progress.
// @Tags Achievements
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} models.Response "Achievements retrieved"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/achievements [get]
func (h *AchievementHandler) GetAchievements(c *fiber.Ctx) error {
	userID := c.Params("userID")

	overview, err := h.AchievementService.Overview(c.Context(), userID)
	if err != nil {
		return handleServiceError(c, err, "GetAchievements")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Achievements retrieved successfully",
		Data:    overview,
	})
}

// AcknowledgeUnlocks godoc
// @Summary Acknowledge Achievement Unlocks
// @Description Marks all pending unlock notifications for the user as seen.
// @Tags Achievements
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} models.Response "Unlocks acknowledged"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/achievements/ack [post]
func (h *AchievementHandler) AcknowledgeUnlocks(c *fiber.Ctx) error {
	userID := c.Params("userID")

	count, err := h.AchievementService.AcknowledgeUnlocks(c.Context(), userID)
	if err != nil {
		return handleServiceError(c, err, "AcknowledgeUnlocks")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Achievement notifications acknowledged",
		Data:    fiber.Map{"acknowledged": count},
	})
}

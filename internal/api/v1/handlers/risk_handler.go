// internal/api/v1/handlers/risk_handler.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/service"
)

type RiskHandler struct {
	RiskService service.RiskService
}

func NewRiskHandler(riskService service.RiskService) *RiskHandler {
	return &RiskHandler{RiskService: riskService}
}

// GetRiskProfile godoc
// @Summary Get Risk Profile
// @Description Retrieves the user's aggregated health risk profile, highest current risk first.
// @Tags Risk
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} models.Response "Risk profile retrieved"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/risk-profile [get]
func (h *RiskHandler) GetRiskProfile(c *fiber.Ctx) error {
	userID := c.Params("userID")

	profile, err := h.RiskService.Profile(c.Context(), userID)
	if err != nil {
		return handleServiceError(c, err, "GetRiskProfile")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Risk profile retrieved successfully",
		Data:    profile,
	})
}

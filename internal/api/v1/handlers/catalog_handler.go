// internal/api/v1/handlers/catalog_handler.go
package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rs/zerolog/log"
)

// CatalogHandler menyajikan katalog statis (template task, achievement,
// risiko dasar). Isinya diinjeksi saat startup, jadi handler ini read-only.
type CatalogHandler struct {
	Templates    []models.TaskTemplate
	Achievements []models.Achievement
	Risks        []models.HealthRisk
}

func NewCatalogHandler(
	templates []models.TaskTemplate,
	achievements []models.Achievement,
	risks []models.HealthRisk,
) *CatalogHandler {
	return &CatalogHandler{
		Templates:    templates,
		Achievements: achievements,
		Risks:        risks,
	}
}

// GetTaskTemplates godoc
// @Summary Get Task Catalog
// @Description Retrieves all task templates, optionally filtered by category.
// @Tags Catalog
// @Produce json
// @Param category query string false "Filter by category" Enums(medical, mental_health, fitness, social, financial, nutrition)
// @Success 200 {object} models.Response "Templates retrieved"
// @Failure 400 {object} models.Response "Invalid query parameters"
// @Router /catalog/tasks [get]
func (h *CatalogHandler) GetTaskTemplates(c *fiber.Ctx) error {
	categoryFilter := c.Query("category")
	if categoryFilter != "" && !isValidCategory(categoryFilter) {
		log.Warn().Str("category_filter", categoryFilter).Msg("Handler: Invalid category filter value provided for GetTaskTemplates")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false,
			Message: fmt.Sprintf("Invalid category filter value: '%s'.", categoryFilter),
		})
	}

	templates := h.Templates
	if categoryFilter != "" {
		filtered := make([]models.TaskTemplate, 0, len(templates))
		for _, tpl := range templates {
			if tpl.Category == models.TaskCategory(categoryFilter) {
				filtered = append(filtered, tpl)
			}
		}
		templates = filtered
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Task catalog retrieved successfully",
		Data:    templates,
	})
}

// GetAchievementCatalog godoc
// @Summary Get Achievement Catalog
// @Description Retrieves the achievement catalog. Hidden achievements are excluded.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response "Achievements retrieved"
// @Router /catalog/achievements [get]
func (h *CatalogHandler) GetAchievementCatalog(c *fiber.Ctx) error {
	visible := make([]models.Achievement, 0, len(h.Achievements))
	for _, a := range h.Achievements {
		if !a.Hidden {
			visible = append(visible, a)
		}
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Achievement catalog retrieved successfully",
		Data:    visible,
	})
}

// GetRiskCatalog godoc
// @Summary Get Risk Catalog
// @Description Retrieves the baseline health risks.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response "Risks retrieved"
// @Router /catalog/risks [get]
func (h *CatalogHandler) GetRiskCatalog(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Risk catalog retrieved successfully",
		Data:    h.Risks,
	})
}

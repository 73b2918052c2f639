// internal/api/v1/handlers/stats_handler.go
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/service"
	"github.com/rs/zerolog/log"
)

type StatsHandler struct {
	StatsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{StatsService: statsService}
}

// parseRangeParam membaca query parameter rentang ("days"/"weeks") dengan
// batas atas agar klien tidak meminta rentang tak masuk akal.
func parseRangeParam(c *fiber.Ctx, name string, max int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true // 0 = pakai default service
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}

// GetDailyStats godoc
// @Summary Get Daily Stats
// @Description Retrieves per-day completion statistics for the last N days (default 7), in chronological order.
// @Tags Stats
// @Produce json
// @Param userID path string true "User ID"
// @Param days query int false "Number of days" default(7)
// @Success 200 {object} models.Response "Daily stats retrieved"
// @Failure 400 {object} models.Response "Invalid query parameters"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/stats/daily [get]
func (h *StatsHandler) GetDailyStats(c *fiber.Ctx) error {
	userID := c.Params("userID")

	days, ok := parseRangeParam(c, "days", 365)
	if !ok {
		log.Warn().Str("days", c.Query("days")).Str("user_id", userID).Msg("Handler: Invalid days parameter for GetDailyStats")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false,
			Message: "Invalid 'days' parameter: must be an integer between 1 and 365",
		})
	}

	stats, err := h.StatsService.Daily(c.Context(), userID, days)
	if err != nil {
		return handleServiceError(c, err, "GetDailyStats")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Daily stats retrieved successfully",
		Data:    stats,
	})
}

// GetWeeklyStats godoc
// @Summary Get Weekly Stats
// @Description Retrieves per-week (Monday-Sunday) completion statistics for the last N weeks (default 4), in chronological order.
// @Tags Stats
// @Produce json
// @Param userID path string true "User ID"
// @Param weeks query int false "Number of weeks" default(4)
// @Success 200 {object} models.Response "Weekly stats retrieved"
// @Failure 400 {object} models.Response "Invalid query parameters"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/stats/weekly [get]
func (h *StatsHandler) GetWeeklyStats(c *fiber.Ctx) error {
	userID := c.Params("userID")

	weeks, ok := parseRangeParam(c, "weeks", 52)
	if !ok {
		log.Warn().Str("weeks", c.Query("weeks")).Str("user_id", userID).Msg("Handler: Invalid weeks parameter for GetWeeklyStats")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false,
			Message: "Invalid 'weeks' parameter: must be an integer between 1 and 52",
		})
	}

	stats, err := h.StatsService.Weekly(c.Context(), userID, weeks)
	if err != nil {
		return handleServiceError(c, err, "GetWeeklyStats")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Weekly stats retrieved successfully",
		Data:    stats,
	})
}

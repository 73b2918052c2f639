// internal/api/v1/handlers/error_handler.go
package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/store"
	"github.com/rs/zerolog/log"
)

// ErrorHandler custom untuk Fiber
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	// Default error code
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	// Ambil status code dari fiber.Error jika ada
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	// Error non-fiber yang sampai ke sini dipetakan ke status yang sesuai.
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		code = fiber.StatusNotFound
		message = "User not found"
	case errors.Is(err, store.ErrInstanceNotFound):
		code = fiber.StatusNotFound
		message = "Task not found"
	case errors.Is(err, store.ErrNoCompletions):
		code = fiber.StatusBadRequest
		message = "Task has no completion to undo"
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		code = fiber.StatusBadRequest
		message = "Validation Failed"
	}

	// Log error dengan zerolog (sebelumnya sudah dilog oleh middleware, tapi ini untuk detail)
	log.Error().Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status_sent", code).
		Msg("Error occurred during request processing")

	// Kirim response JSON error
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Status(code).JSON(models.Response{
		Success: false,
		Message: message,
	})
}

// handleServiceError memetakan error dari service layer ke response HTTP.
// Helper bersama untuk semua handler di package ini.
func handleServiceError(c *fiber.Ctx, err error, operation string) error {
	log := log.With().Str("operation", operation).Logger()

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Warn().Err(err).Msg("User not found")
		return c.Status(fiber.StatusNotFound).JSON(models.Response{Success: false, Message: "User not found"})
	case errors.Is(err, store.ErrInstanceNotFound):
		log.Warn().Err(err).Msg("Task instance not found")
		return c.Status(fiber.StatusNotFound).JSON(models.Response{Success: false, Message: "Task not found or not yours"})
	case errors.Is(err, store.ErrNoCompletions):
		log.Warn().Err(err).Msg("Nothing to undo")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: "Task has no completion to undo"})
	}

	log.Error().Err(err).Msg("Internal server error")
	return c.Status(fiber.StatusInternalServerError).JSON(models.Response{Success: false, Message: "An internal error occurred"})
}

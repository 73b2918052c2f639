// internal/api/v1/handlers/user_handler.go
package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/service"
	"github.com/rakaarfi/vorsorge-guide-be/internal/utils"
	"github.com/rs/zerolog/log"
)

type UserHandler struct {
	UserService service.UserService
	Validate    *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		UserService: userService,
		Validate:    validator.New(),
	}
}

// ListUsers godoc
// @Summary List Users
// @Description Retrieves all registered users (demo user picker).
// @Tags Users
// @Produce json
// @Success 200 {object} models.Response "Users retrieved"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.UserService.ListUsers(c.Context())
	if err != nil {
		return handleServiceError(c, err, "ListUsers")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Users retrieved successfully",
		Data:    users,
	})
}

// CreateUser godoc
// @Summary Create User
// @Description Onboarding: creates a new user profile with default preferences.
// @Tags Users
// @Accept json
// @Produce json
// @Param input body models.CreateUserInput true "User data"
// @Success 201 {object} models.Response "User created"
// @Failure 400 {object} models.Response "Invalid input"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	input := new(models.CreateUserInput)
	if err := c.BodyParser(input); err != nil {
		log.Warn().Err(err).Msg("Handler: Failed to parse CreateUser body")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: "Invalid request body"})
	}

	if err := h.Validate.Struct(input); err != nil {
		log.Warn().Err(err).Msg("Handler: Validation failed for CreateUser")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false,
			Message: "Validation failed",
			Data:    utils.FormatValidationErrors(err),
		})
	}

	user, err := h.UserService.CreateUser(c.Context(), input)
	if err != nil {
		return handleServiceError(c, err, "CreateUser")
	}

	log.Info().Str("user_id", user.ID).Msg("Handler: User created")
	return c.Status(fiber.StatusCreated).JSON(models.Response{
		Success: true,
		Message: "User created successfully",
		Data:    user,
	})
}

// GetProfile godoc
// @Summary Get User Profile
// @Description Retrieves a user's profile including level progress and per-category progress.
// @Tags Users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} models.Response "Profile retrieved"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID} [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Params("userID")

	profile, err := h.UserService.GetProfile(c.Context(), userID)
	if err != nil {
		return handleServiceError(c, err, "GetProfile")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    profile,
	})
}

// UpdateProfile godoc
// @Summary Update User Profile
// @Description Updates a user's name, age, and risk factors.
// @Tags Users
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param input body models.UpdateProfileInput true "Profile data"
// @Success 200 {object} models.Response "Profile updated"
// @Failure 400 {object} models.Response "Invalid input"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID} [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Params("userID")

	input := new(models.UpdateProfileInput)
	if err := c.BodyParser(input); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Handler: Failed to parse UpdateProfile body")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: "Invalid request body"})
	}

	if err := h.Validate.Struct(input); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Handler: Validation failed for UpdateProfile")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false,
			Message: "Validation failed",
			Data:    utils.FormatValidationErrors(err),
		})
	}

	user, err := h.UserService.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		return handleServiceError(c, err, "UpdateProfile")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Profile updated successfully",
		Data:    user,
	})
}

// UpdatePreferences godoc
// @Summary Update User Preferences
// @Description Partially updates theme, notifications, reminder time, or language.
// @Tags Users
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param input body models.UpdatePreferencesInput true "Preference fields to update"
// @Success 200 {object} models.Response "Preferences updated"
// @Failure 400 {object} models.Response "Invalid input"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/preferences [patch]
func (h *UserHandler) UpdatePreferences(c *fiber.Ctx) error {
	userID := c.Params("userID")

	input := new(models.UpdatePreferencesInput)
	if err := c.BodyParser(input); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Handler: Failed to parse UpdatePreferences body")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: "Invalid request body"})
	}

	if err := h.Validate.Struct(input); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Handler: Validation failed for UpdatePreferences")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false,
			Message: "Validation failed",
			Data:    utils.FormatValidationErrors(err),
		})
	}

	user, err := h.UserService.UpdatePreferences(c.Context(), userID, input)
	if err != nil {
		return handleServiceError(c, err, "UpdatePreferences")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Preferences updated successfully",
		Data:    user,
	})
}

// internal/api/v1/handlers/task_handler.go
package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/service"
	"github.com/rakaarfi/vorsorge-guide-be/internal/utils"
	"github.com/rs/zerolog/log"
)

type TaskHandler struct {
	TaskService service.TaskService
	Validate    *validator.Validate
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		TaskService: taskService,
		Validate:    validator.New(),
	}
}

// Helper untuk validasi nilai filter state dari query string.
func isValidInstanceState(state string) bool {
	switch models.InstanceState(state) {
	case models.InstanceStateCompletedToday,
		models.InstanceStateDueToday,
		models.InstanceStateOverdue,
		models.InstanceStateUpcoming,
		models.InstanceStateSnoozed:
		return true
	default:
		return false
	}
}

func isValidCategory(category string) bool {
	return models.TaskCategory(category).IsValid()
}

// ==========================================================
// --- Task Lifecycle ---
// ==========================================================

// InitializeTasks godoc
// @Summary Initialize Tasks
// @Description Rebuilds the user's task instances from the catalog, filtered by age/gender and ordered by priority.
// @Tags Tasks
// @Produce json
// @Param userID path string true "User ID"
// @Success 201 {object} models.Response "Tasks initialized"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/tasks/init [post]
func (h *TaskHandler) InitializeTasks(c *fiber.Ctx) error {
	userID := c.Params("userID")

	tasks, err := h.TaskService.InitializeTasks(c.Context(), userID)
	if err != nil {
		return handleServiceError(c, err, "InitializeTasks")
	}

	log.Info().Str("user_id", userID).Int("task_count", len(tasks)).Msg("Handler: Tasks initialized")
	return c.Status(fiber.StatusCreated).JSON(models.Response{
		Success: true,
		Message: "Tasks initialized successfully",
		Data:    tasks,
	})
}

// ListTasks godoc
// @Summary List Tasks
// @Description Retrieves the user's tasks, optionally filtered by state, category, and title search, with pagination.
// @Tags Tasks
// @Produce json
// @Param userID path string true "User ID"
// @Param state query string false "Filter by derived state" Enums(completed_today, due_today, overdue, upcoming, snoozed)
// @Param category query string false "Filter by category" Enums(medical, mental_health, fitness, social, financial, nutrition)
// @Param search query string false "Case-insensitive substring match on the task title"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse[service.TaskView] "Tasks retrieved"
// @Failure 400 {object} models.Response "Invalid query parameters"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/tasks [get]
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	userID := c.Params("userID")

	stateFilter := c.Query("state")
	if stateFilter != "" && !isValidInstanceState(stateFilter) {
		log.Warn().Str("state_filter", stateFilter).Str("user_id", userID).Msg("Handler: Invalid state filter value provided for ListTasks")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false,
			Message: fmt.Sprintf("Invalid state filter value: '%s'. Valid states are completed_today, due_today, overdue, upcoming, snoozed.", stateFilter),
		})
	}

	categoryFilter := c.Query("category")
	if categoryFilter != "" && !isValidCategory(categoryFilter) {
		log.Warn().Str("category_filter", categoryFilter).Str("user_id", userID).Msg("Handler: Invalid category filter value provided for ListTasks")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false,
			Message: fmt.Sprintf("Invalid category filter value: '%s'.", categoryFilter),
		})
	}

	pagination := utils.ParsePaginationParams(c)
	filter := service.TaskListFilter{
		State:    models.InstanceState(stateFilter),
		Category: models.TaskCategory(categoryFilter),
		Search:   c.Query("search"),
		Page:     pagination.Page,
		Limit:    pagination.Limit,
	}

	tasks, totalCount, err := h.TaskService.ListTasks(c.Context(), userID, filter)
	if err != nil {
		return handleServiceError(c, err, "ListTasks")
	}

	meta := utils.BuildPaginationMeta(totalCount, pagination.Limit, pagination.Page)
	return c.Status(fiber.StatusOK).JSON(utils.NewPaginatedResponse("Tasks retrieved successfully", tasks, meta))
}

// GetTask godoc
// @Summary Get Task
// @Description Retrieves a single task instance with its catalog template and derived state.
// @Tags Tasks
// @Produce json
// @Param userID path string true "User ID"
// @Param instanceID path string true "Task instance ID"
// @Success 200 {object} models.Response "Task retrieved"
// @Failure 404 {object} models.Response "Task not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/tasks/{instanceID} [get]
func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	userID := c.Params("userID")
	instanceID := c.Params("instanceID")

	task, err := h.TaskService.GetTask(c.Context(), userID, instanceID)
	if err != nil {
		return handleServiceError(c, err, "GetTask")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Task retrieved successfully",
		Data:    task,
	})
}

// ==========================================================
// --- Completion Flow ---
// ==========================================================

// CompleteTask godoc
// @Summary Complete Task
// @Description Marks a task as completed: awards points (with streak/early bonuses), advances the schedule, updates streaks, and unlocks achievements.
// @Tags Tasks
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param instanceID path string true "Task instance ID"
// @Param input body models.CompleteTaskInput false "Optional notes and early-completion flag"
// @Success 200 {object} models.Response "Task completed"
// @Failure 400 {object} models.Response "Invalid input"
// @Failure 404 {object} models.Response "Task not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/tasks/{instanceID}/complete [post]
func (h *TaskHandler) CompleteTask(c *fiber.Ctx) error {
	userID := c.Params("userID")
	instanceID := c.Params("instanceID")

	// Body opsional: tanpa body berarti completion polos.
	input := new(models.CompleteTaskInput)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(input); err != nil {
			log.Warn().Err(err).Str("instance_id", instanceID).Msg("Handler: Failed to parse CompleteTask body")
			return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: "Invalid request body"})
		}
		if err := h.Validate.Struct(input); err != nil {
			log.Warn().Err(err).Str("instance_id", instanceID).Msg("Handler: Validation failed for CompleteTask")
			return c.Status(fiber.StatusBadRequest).JSON(models.Response{
				Success: false,
				Message: "Validation failed",
				Data:    utils.FormatValidationErrors(err),
			})
		}
	}

	result, err := h.TaskService.CompleteTask(c.Context(), userID, instanceID, input)
	if err != nil {
		return handleServiceError(c, err, "CompleteTask")
	}

	log.Info().
		Str("user_id", userID).
		Str("instance_id", instanceID).
		Int("points", result.Points).
		Int("new_streak", result.NewStreak).
		Bool("leveled_up", result.LeveledUp).
		Msg("Handler: Task completed")
	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Task completed successfully",
		Data:    result,
	})
}

// UndoCompletion godoc
// @Summary Undo Task Completion
// @Description Reverts the most recent completion of a task and reclaims its points. Achievements already unlocked are kept.
// @Tags Tasks
// @Produce json
// @Param userID path string true "User ID"
// @Param instanceID path string true "Task instance ID"
// @Success 200 {object} models.Response "Completion undone"
// @Failure 400 {object} models.Response "No completion to undo"
// @Failure 404 {object} models.Response "Task not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/tasks/{instanceID}/undo [post]
func (h *TaskHandler) UndoCompletion(c *fiber.Ctx) error {
	userID := c.Params("userID")
	instanceID := c.Params("instanceID")

	task, err := h.TaskService.UndoCompletion(c.Context(), userID, instanceID)
	if err != nil {
		return handleServiceError(c, err, "UndoCompletion")
	}

	log.Info().Str("user_id", userID).Str("instance_id", instanceID).Msg("Handler: Completion undone")
	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Completion undone successfully",
		Data:    task,
	})
}

// SnoozeTask godoc
// @Summary Snooze Task
// @Description Postpones a task by a number of days (1-30).
// @Tags Tasks
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param instanceID path string true "Task instance ID"
// @Param input body models.SnoozeTaskInput true "Days to snooze"
// @Success 200 {object} models.Response "Task snoozed"
// @Failure 400 {object} models.Response "Invalid input"
// @Failure 404 {object} models.Response "Task not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/tasks/{instanceID}/snooze [post]
func (h *TaskHandler) SnoozeTask(c *fiber.Ctx) error {
	userID := c.Params("userID")
	instanceID := c.Params("instanceID")

	input := new(models.SnoozeTaskInput)
	if err := c.BodyParser(input); err != nil {
		log.Warn().Err(err).Str("instance_id", instanceID).Msg("Handler: Failed to parse SnoozeTask body")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: "Invalid request body"})
	}

	if err := h.Validate.Struct(input); err != nil {
		log.Warn().Err(err).Str("instance_id", instanceID).Msg("Handler: Validation failed for SnoozeTask")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false,
			Message: "Validation failed",
			Data:    utils.FormatValidationErrors(err),
		})
	}

	task, err := h.TaskService.SnoozeTask(c.Context(), userID, instanceID, input.Days)
	if err != nil {
		return handleServiceError(c, err, "SnoozeTask")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Task snoozed successfully",
		Data:    task,
	})
}

// SetStatus godoc
// @Summary Set Task Status
// @Description Changes a task's lifecycle status (active, pending, completed_today, paused, archived).
// @Tags Tasks
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param instanceID path string true "Task instance ID"
// @Param input body models.SetStatusInput true "New status"
// @Success 200 {object} models.Response "Status updated"
// @Failure 400 {object} models.Response "Invalid input"
// @Failure 404 {object} models.Response "Task not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/tasks/{instanceID}/status [patch]
func (h *TaskHandler) SetStatus(c *fiber.Ctx) error {
	userID := c.Params("userID")
	instanceID := c.Params("instanceID")

	input := new(models.SetStatusInput)
	if err := c.BodyParser(input); err != nil {
		log.Warn().Err(err).Str("instance_id", instanceID).Msg("Handler: Failed to parse SetStatus body")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: "Invalid request body"})
	}

	if err := h.Validate.Struct(input); err != nil {
		log.Warn().Err(err).Str("instance_id", instanceID).Msg("Handler: Validation failed for SetStatus")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false,
			Message: "Validation failed",
			Data:    utils.FormatValidationErrors(err),
		})
	}

	task, err := h.TaskService.SetStatus(c.Context(), userID, instanceID, input.Status)
	if err != nil {
		return handleServiceError(c, err, "SetStatus")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Task status updated successfully",
		Data:    task,
	})
}

// UpdateNotes godoc
// @Summary Update Task Notes
// @Description Replaces the user's notes on a task instance.
// @Tags Tasks
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param instanceID path string true "Task instance ID"
// @Param input body models.UpdateNotesInput true "Notes"
// @Success 200 {object} models.Response "Notes updated"
// @Failure 400 {object} models.Response "Invalid input"
// @Failure 404 {object} models.Response "Task not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/tasks/{instanceID}/notes [patch]
func (h *TaskHandler) UpdateNotes(c *fiber.Ctx) error {
	userID := c.Params("userID")
	instanceID := c.Params("instanceID")

	input := new(models.UpdateNotesInput)
	if err := c.BodyParser(input); err != nil {
		log.Warn().Err(err).Str("instance_id", instanceID).Msg("Handler: Failed to parse UpdateNotes body")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: "Invalid request body"})
	}

	if err := h.Validate.Struct(input); err != nil {
		log.Warn().Err(err).Str("instance_id", instanceID).Msg("Handler: Validation failed for UpdateNotes")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false,
			Message: "Validation failed",
			Data:    utils.FormatValidationErrors(err),
		})
	}

	task, err := h.TaskService.UpdateNotes(c.Context(), userID, instanceID, input.Notes)
	if err != nil {
		return handleServiceError(c, err, "UpdateNotes")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Task notes updated successfully",
		Data:    task,
	})
}

// internal/api/v1/handlers/calendar_handler.go
package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/vorsorge-guide-be/internal/calendar"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/service"
)

// Jam default acara kalender bila task tidak membawa jam spesifik.
const defaultEventHour = 9

type CalendarHandler struct {
	TaskService service.TaskService
	nowFn       func() time.Time
}

func NewCalendarHandler(taskService service.TaskService, nowFn func() time.Time) *CalendarHandler {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &CalendarHandler{
		TaskService: taskService,
		nowFn:       nowFn,
	}
}

// eventFromTask membangun calendar.Event dari task view: acara dimulai pada
// tanggal jatuh tempo berikutnya, jam 9 pagi.
func eventFromTask(task *service.TaskView) calendar.Event {
	due := task.Instance.NextDue
	start := time.Date(due.Year(), due.Month(), due.Day(), defaultEventHour, 0, 0, 0, due.Location())

	description := task.Template.Description
	if task.Template.HowToComplete != "" {
		if description != "" {
			description += "\n\n"
		}
		description += task.Template.HowToComplete
	}

	return calendar.Event{
		Title:       task.Template.Title,
		Description: description,
		Start:       start,
		Duration:    task.Template.Duration,
	}
}

// DownloadICS godoc
// @Summary Download Task as ICS
// @Description Generates an iCalendar (.ics) file for the task's next due date, including a 15-minute reminder alarm.
// @Tags Calendar
// @Produce text/calendar
// @Param userID path string true "User ID"
// @Param instanceID path string true "Task instance ID"
// @Success 200 {string} string "ICS file"
// @Failure 404 {object} models.Response "Task not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/tasks/{instanceID}/calendar.ics [get]
func (h *CalendarHandler) DownloadICS(c *fiber.Ctx) error {
	userID := c.Params("userID")
	instanceID := c.Params("instanceID")

	task, err := h.TaskService.GetTask(c.Context(), userID, instanceID)
	if err != nil {
		return handleServiceError(c, err, "DownloadICS")
	}

	event := eventFromTask(task)
	ics := event.ICS(h.nowFn())

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.ics"`, task.Instance.TaskID))
	return c.Status(fiber.StatusOK).SendString(ics)
}

// GetCalendarLinks godoc
// @Summary Get Calendar Links
// @Description Returns add-to-calendar links (Google, Outlook) plus the ICS download path for the task's next due date.
// @Tags Calendar
// @Produce json
// @Param userID path string true "User ID"
// @Param instanceID path string true "Task instance ID"
// @Success 200 {object} models.Response "Links retrieved"
// @Failure 404 {object} models.Response "Task not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users/{userID}/tasks/{instanceID}/calendar-links [get]
func (h *CalendarHandler) GetCalendarLinks(c *fiber.Ctx) error {
	userID := c.Params("userID")
	instanceID := c.Params("instanceID")

	task, err := h.TaskService.GetTask(c.Context(), userID, instanceID)
	if err != nil {
		return handleServiceError(c, err, "GetCalendarLinks")
	}

	event := eventFromTask(task)
	links := fiber.Map{
		"google":  event.GoogleURL(),
		"outlook": event.OutlookURL(),
		"ics":     fmt.Sprintf("/api/v1/users/%s/tasks/%s/calendar.ics", userID, instanceID),
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Calendar links retrieved successfully",
		Data:    links,
	})
}

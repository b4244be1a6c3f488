package handler

import (
	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/internal/ws"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the error taxonomy onto HTTP statuses. Store failures
// are reported with a generic message; details go to the log.
func respondError(c *fiber.Ctx, err error) error {
	status, msg := errorStatus(err)
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func errorStatus(err error) (int, string) {
	switch {
	case err == nil:
		return 500, "Internal Server Error"
	case apperror.IsValidation(err):
		return 400, err.Error()
	case apperror.IsNotFound(err):
		return 404, err.Error()
	case apperror.IsNotSupported(err):
		return 501, err.Error()
	default:
		return 500, "Internal Server Error"
	}
}

// respondErrorWith is respondError with the workflow's notices attached.
func respondErrorWith(c *fiber.Ctx, err error, o *outcome) error {
	status, msg := errorStatus(err)
	return c.Status(status).JSON(o.body(fiber.Map{"error": msg}))
}

// Notices forwards workflow notices to connected clients.
type Notices interface {
	Success(message string)
	Error(message string)
}

// outcome collects what a workflow reported during one request: notices are
// forwarded to the WebSocket hub and echoed in the response, the navigation
// target is returned as "redirect".
type outcome struct {
	notices  Notices
	messages []fiber.Map
	redirect string
}

func newOutcome(notices Notices) *outcome {
	return &outcome{notices: notices}
}

func (o *outcome) Success(message string) {
	o.messages = append(o.messages, fiber.Map{"level": ws.NoticeSuccess, "message": message})
	if o.notices != nil {
		o.notices.Success(message)
	}
}

func (o *outcome) Error(message string) {
	o.messages = append(o.messages, fiber.Map{"level": ws.NoticeError, "message": message})
	if o.notices != nil {
		o.notices.Error(message)
	}
}

func (o *outcome) Navigate(path string) {
	o.redirect = path
}

// body merges the recorded outcome into a response payload.
func (o *outcome) body(m fiber.Map) fiber.Map {
	if m == nil {
		m = fiber.Map{}
	}
	if len(o.messages) > 0 {
		m["notices"] = o.messages
	}
	if o.redirect != "" {
		m["redirect"] = o.redirect
	}
	return m
}

package httpapi

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/careerscout/careerscout/internal/engine"
	"github.com/careerscout/careerscout/internal/engine/careers"
)

type sendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// sendEmail delivers one HTML email through the mail provider.
func sendEmail(c *fiber.Ctx) error {
	var req sendEmailRequest
	if err := c.BodyParser(&req); err != nil || req.To == "" || req.Subject == "" || req.HTML == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: to, subject, or html",
		})
	}

	data, err := careers.SendEmail(c.Context(), req.To, req.Subject, req.HTML)
	if err != nil {
		slog.Error("send email failed", "to", req.To, "error", err)
		status := fiber.StatusInternalServerError
		msg := "Failed to send email"
		var se *engine.StatusError
		if errors.As(err, &se) {
			status = se.Status
			msg = se.Error()
		}
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": data})
}

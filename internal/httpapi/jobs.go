package httpapi

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/careerscout/careerscout/internal/engine"
	"github.com/careerscout/careerscout/internal/engine/careers"
)

type museJobsRequest struct {
	Category string `json:"category"`
	Level    string `json:"level"`
	Location string `json:"location"`
	Company  string `json:"company"`
}

// museJobs proxies a job listing search to The Muse and returns pruned
// results.
func museJobs(c *fiber.Ctx) error {
	var req museJobsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Job category is required"})
	}
	if req.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Job category is required"})
	}

	jobs, err := careers.MuseSearch(c.Context(), req.Category, req.Level, req.Location, req.Company)
	if err != nil {
		slog.Error("muse search failed", "category", req.Category, "error", err)
		var se *engine.StatusError
		if errors.As(err, &se) {
			return c.Status(se.Status).JSON(fiber.Map{
				"error":   "Error from external API",
				"details": se.Body,
				"status":  se.Status,
			})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "No response from external API",
			"message": err.Error(),
		})
	}

	if len(jobs) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":        "No jobs found matching the criteria",
			"searchParams": req,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"response": careers.PruneMuseJobs(jobs),
	})
}

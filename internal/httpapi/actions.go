package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/careerscout/careerscout/internal/dispatch"
)

type actionRequest struct {
	Tool       string          `json:"tool"`
	Parameters json.RawMessage `json:"parameters"`
}

// listActions returns the advertised tool catalog.
func listActions(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dispatch.Registry())
}

// runAction executes one named tool and returns its envelope.
func runAction(c *fiber.Ctx) error {
	var req actionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing tool or parameters"})
	}
	if req.Tool == "" || len(req.Parameters) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing tool or parameters"})
	}

	env, err := dispatch.Dispatch(c.Context(), req.Tool, req.Parameters)
	if err != nil {
		if errors.Is(err, dispatch.ErrUnknownTool) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Unknown tool: %s", req.Tool),
			})
		}
		slog.Error("action dispatch failed", "tool", req.Tool, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(env)
}

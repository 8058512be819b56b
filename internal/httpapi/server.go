// Package httpapi serves the REST surface: the tool action endpoint, a
// JSON-RPC bridge, the Muse job proxy, and the email route. It shares the
// dispatch layer with the MCP server so both surfaces behave identically.
package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/careerscout/careerscout/internal/engine"
)

// New builds the Fiber app with all routes registered.
func New(version string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "careerscout " + version,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type, Authorization, X-Requested-With",
	}))

	Register(app)
	return app
}

// Register wires all HTTP routes onto the given Fiber app.
func Register(app *fiber.App) {
	app.Get("/healthz", health)
	app.Get("/metrics", metrics)

	app.Post("/jobs", museJobs)

	app.Get("/mcp/actions", listActions)
	app.Post("/mcp/actions", runAction)
	app.Post("/mcp", jsonRPC)

	app.Post("/send-email", sendEmail)
}

func health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "Career Scout tool server is running",
		"endpoints": []string{
			"POST /jobs",
			"GET /mcp/actions",
			"POST /mcp/actions",
			"POST /mcp",
			"POST /send-email",
			"GET /metrics",
		},
	})
}

func metrics(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(engine.FormatMetrics())
}

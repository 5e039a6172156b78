package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	database "ailms_backend/internals/databases"
)

func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("AI LMS backend is running 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		deps := database.Health(c.UserContext())
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		for _, v := range deps {
			if v == "DOWN" {
				serverStatus = "DOWN"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"dependencies":   deps,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}

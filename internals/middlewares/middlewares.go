package middlewares

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"ailms_backend/internals/middlewares/logger"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocalRequestID  = "requestid"
)

// RequestContext: request id + timeout untuk context service/store.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(LocalRequestID, id)

		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()
		if d := time.Since(start); d > timeout/2 {
			log.Printf("[SLOW] id=%s %s %s dur=%s", id, c.Method(), c.OriginalURL(), d)
		}
		return err
	}
}

// SetupMiddlewares memasang middleware global, urutannya: recover → request ctx → log → cors → gzip/etag → limiter
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(5 * time.Second))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
}

package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func rateLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": message,
			})
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return rateLimiter(100, time.Minute, "❌ Terlalu banyak permintaan. Silakan coba lagi nanti.")
}

// Chatbot lebih ketat, satu pesan user = dua record tersimpan.
func ChatRateLimiter() fiber.Handler {
	return rateLimiter(30, time.Minute, "❌ Terlalu banyak pesan ke asisten. Tunggu sebentar ya.")
}

// Submit quiz/assignment
func SubmissionRateLimiter() fiber.Handler {
	return rateLimiter(10, time.Minute, "❌ Terlalu banyak pengumpulan. Coba beberapa saat lagi.")
}

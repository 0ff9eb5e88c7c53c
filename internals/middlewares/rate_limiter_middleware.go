package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"finakihub_backend/internals/configs"
)

// RateLimits holds the per-IP request budgets. A zero budget disables that limiter.
type RateLimits struct {
	Global   int
	Login    int
	Register int
}

func NewRateLimits(cfg *configs.Config) RateLimits {
	return RateLimits{
		Global:   cfg.RateLimitMax,
		Login:    cfg.RateLimitLogin,
		Register: cfg.RateLimitRegister,
	}
}

func passThrough(c *fiber.Ctx) error { return c.Next() }

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	if max <= 0 {
		return passThrough
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":    fiber.StatusTooManyRequests,
				"status":  "error",
				"message": message,
				"detail":  message,
			})
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter(max int) fiber.Handler {
	return newLimiter(max, 1*time.Minute, "Demasiadas solicitudes. Inténtalo de nuevo más tarde.")
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter(max int) fiber.Handler {
	return newLimiter(max, 1*time.Minute, "Demasiados intentos de inicio de sesión. Espera un momento.")
}

// Rate limiter untuk register route
func RegisterRateLimiter(max int) fiber.Handler {
	return newLimiter(max, 5*time.Minute, "Demasiados registros. Espera unos minutos.")
}

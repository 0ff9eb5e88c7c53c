package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
	log "github.com/sirupsen/logrus"
)

// RequestContext tags each request with an X-Request-ID and gives handlers a
// context bounded by timeout; store calls take it through c.UserContext().
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("reqid", id)

		start := time.Now()
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		log.WithFields(log.Fields{
			"reqid":  id,
			"status": c.Response().StatusCode(),
			"dur":    time.Since(start).String(),
		}).Debugf("[REQ] %s %s", c.Method(), c.OriginalURL())
		return err
	}
}

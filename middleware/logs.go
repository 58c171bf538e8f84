package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs one line per request: method, path, status, latency and
// the acting username when authenticated.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		username := CurrentUser(c).Username

		log.Printf("%s %s %d %s %s",
			c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start), username)
		return err
	}
}

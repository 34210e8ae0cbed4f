package middleware

import (
	"trivia-api/internal/util"

	"github.com/gofiber/fiber/v2"
)

const (
	// HeaderRequestID carries the request id on requests and responses
	HeaderRequestID = "X-Request-ID"

	requestIDLocalKey = "request_id"
)

// RequestID tags every request with a ULID. A well-formed ULID sent by the
// client is kept so ids can be correlated across services.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if !util.IsULID(id) {
			id = util.NewULID()
		}
		c.Locals(requestIDLocalKey, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// RequestIDFrom returns the id assigned by RequestID, or "" outside of it.
func RequestIDFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDLocalKey).(string)
	return id
}

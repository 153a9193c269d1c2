package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionHeader carries the opaque shopper session id between the SPA and the gateway.
const SessionHeader = "X-Session-ID"

const sessionLocal = "session_id"

// Session assigns every request a shopper session id. A missing or malformed
// header gets a fresh id, which is echoed back so the SPA can persist it.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(SessionHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Locals(sessionLocal, id)
		c.Set(SessionHeader, id)
		return c.Next()
	}
}

// SessionID returns the shopper session id assigned by Session.
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(sessionLocal).(string)
	return id
}

// RayID returns the request id assigned by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}

package server

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description, shown to the shopper.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// RespondError writes an ErrorResponse with status.
func RespondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
	})
}

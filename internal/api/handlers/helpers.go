package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errNoUser = errors.New("no authenticated user in context")

// getUserID reads the identity the auth middleware stored in the request
// context.
func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("userID").(string)
	if !ok || raw == "" {
		return uuid.Nil, errNoUser
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errNoUser
	}
	return id, nil
}

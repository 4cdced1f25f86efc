package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys filled by middleware.AuthJWT.
const (
	LocUserID    = "user_id"
	LocUserName  = "user_name"
	LocUserEmail = "user_email"
	LocRawToken  = "raw_token"
	LocClaims    = "jwt_claims"
)

// GetUserID returns the owner id (opaque identity-provider subject) of the caller.
// 401 when the request went through no auth middleware.
func GetUserID(c *fiber.Ctx) (string, error) {
	v, _ := c.Locals(LocUserID).(string)
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return v, nil
}

// GetUserName returns the display name from the token, or "" when absent.
func GetUserName(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserName).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// Actor is what gets written as changed_by on audit entries: the name when the
// token carries one, the user id otherwise.
func Actor(c *fiber.Ctx) string {
	if n := GetUserName(c); n != "" {
		return n
	}
	id, _ := GetUserID(c)
	return id
}

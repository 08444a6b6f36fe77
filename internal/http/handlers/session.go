package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	sessionCookie = "sid"
	sessionTTL    = 7 * 24 * time.Hour
)

// ensureSID returns the caller's anonymous session id, issuing a fresh
// HTTP-only cookie when none is present yet.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies(sessionCookie)
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: "Lax",
			Expires:  time.Now().Add(sessionTTL),
		})
	}
	return sid
}

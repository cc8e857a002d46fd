package session

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const cookieName = "cl_session"

const localsKey = "sessionID"

var ErrNoSession = errors.New("no session on request")

// Middleware assigns an anonymous session id cookie to each browser. The id
// scopes the cart; there are no accounts and no credentials behind it.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cookieName)
		if id == "" {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     cookieName,
				Value:    id,
				Expires:  time.Now().Add(365 * 24 * time.Hour),
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}
		c.Locals(localsKey, id)
		return c.Next()
	}
}

// FromCtx returns the session id stored by Middleware.
func FromCtx(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(localsKey).(string)
	if !ok || id == "" {
		return "", ErrNoSession
	}
	return id, nil
}

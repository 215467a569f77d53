// middleware/auth.go
package middleware

import (
	"context"

	"oneearth/logger"
	"oneearth/models"
	"oneearth/services"

	"github.com/gofiber/fiber/v2"
)

type contextKey string

const userContextKey contextKey = "user"

// SessionLoader is the part of services.AuthService the guard needs.
type SessionLoader interface {
	State(ctx context.Context) (services.SessionState, error)
}

// RequireSession admits any logged-in caller.
func RequireSession(sessions SessionLoader, l *logger.Logger) fiber.Handler {
	return RequireRole(sessions, "", l)
}

// RequireRole loads the session, runs services.Authorize and maps its decision onto a status:
// loading is 503, redirect-to-login 401, redirect-home 403. Allowed callers are stored in Locals.
func RequireRole(sessions SessionLoader, role models.Role, l *logger.Logger) fiber.Handler {
	log := l.Component("guard")

	return func(c *fiber.Ctx) error {
		state, err := sessions.State(c.UserContext())
		if err != nil {
			log.WithError(err).Warnf("⚠️ session unavailable for %s", c.Path())
		}

		switch services.Authorize(state, role) {
		case services.DecisionLoading:
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "session unavailable"})
		case services.DecisionRedirectLogin:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		case services.DecisionRedirectHome:
			log.WithField("user_id", state.User.ID).Infof("🚫 role %s required for %s", role, c.Path())
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient role"})
		}

		c.Locals(string(userContextKey), state.User)
		return c.Next()
	}
}

// CurrentUser returns the user stored by RequireRole, or nil on unguarded routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(string(userContextKey)).(*models.User)
	return u
}

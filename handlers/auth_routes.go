// handlers/auth_routes.go
package handlers

import (
	"oneearth/logger"
	"oneearth/middleware"
	"oneearth/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, auth *services.AuthService, l *logger.Logger) {
	log := l.Component("auth_routes")
	group := app.Group("/auth")

	group.Post("/register", func(c *fiber.Ctx) error {
		var req services.RegisterInput
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		user, err := auth.Register(c.UserContext(), req)
		if err != nil {
			return respondError(c, log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user.Public())
	})

	group.Post("/login", func(c *fiber.Ctx) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		user, err := auth.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return respondError(c, log, err)
		}
		return c.JSON(user.Public())
	})

	group.Post("/logout", func(c *fiber.Ctx) error {
		if err := auth.Logout(c.UserContext()); err != nil {
			return respondError(c, log, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	// 🔐 refreshes the session copy so XP earned since login shows up
	group.Get("/me", middleware.RequireSession(auth, l), func(c *fiber.Ctx) error {
		user, err := auth.Refresh(c.UserContext())
		if err != nil {
			return respondError(c, log, err)
		}
		return c.JSON(user.Public())
	})
}

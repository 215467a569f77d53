// handlers/challenge_routes.go
package handlers

import (
	"oneearth/logger"
	"oneearth/middleware"
	"oneearth/models"
	"oneearth/services"

	"github.com/gofiber/fiber/v2"
)

func SetupChallengeRoutes(app *fiber.App, challenges *services.ChallengeService, auth *services.AuthService, l *logger.Logger) {
	log := l.Component("challenge_routes")

	// 🔓 Public
	app.Get("/challenges", func(c *fiber.Ctx) error {
		list, err := challenges.ListChallenges(c.UserContext())
		if err != nil {
			return respondError(c, log, err)
		}
		return c.JSON(list)
	})
	app.Get("/challenges/slug/:slug", func(c *fiber.Ctx) error {
		ch, err := challenges.Challenges.GetBySlug(c.UserContext(), c.Params("slug"))
		if err != nil {
			return respondError(c, log, err)
		}
		return c.JSON(ch)
	})
	app.Get("/challenges/:id", func(c *fiber.Ctx) error {
		ch, err := challenges.Challenges.GetByID(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondError(c, log, err)
		}
		return c.JSON(ch)
	})

	// 🔐 Session required
	app.Post("/challenges/:id/join", middleware.RequireSession(auth, l), func(c *fiber.Ctx) error {
		comp, created, err := challenges.JoinChallenge(c.UserContext(), middleware.CurrentUser(c), c.Params("id"))
		if err != nil {
			return respondError(c, log, err)
		}
		status := fiber.StatusOK
		if created {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(comp)
	})

	// 🔐 Hosts only
	hostOnly := middleware.RequireRole(auth, models.RoleHost, l)

	app.Post("/challenges", hostOnly, func(c *fiber.Ctx) error {
		var req services.CreateChallengeInput
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		ch, err := challenges.CreateChallenge(c.UserContext(), middleware.CurrentUser(c), req)
		if err != nil {
			return respondError(c, log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(ch)
	})

	review := func(approve bool) fiber.Handler {
		return func(c *fiber.Ctx) error {
			comp, err := challenges.ReviewCompletion(c.UserContext(), middleware.CurrentUser(c), c.Params("id"), approve)
			if err != nil {
				return respondError(c, log, err)
			}
			return c.JSON(comp)
		}
	}
	app.Post("/host/completions/:id/approve", hostOnly, review(true))
	app.Post("/host/completions/:id/reject", hostOnly, review(false))
}

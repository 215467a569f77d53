// handlers/reward_routes.go
package handlers

import (
	"oneearth/logger"
	"oneearth/middleware"
	"oneearth/models"
	"oneearth/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRewardRoutes(app *fiber.App, rewards *services.RewardService, auth *services.AuthService, l *logger.Logger) {
	log := l.Component("reward_routes")

	app.Get("/rewards", func(c *fiber.Ctx) error {
		list, err := rewards.ListRewards(c.UserContext())
		if err != nil {
			return respondError(c, log, err)
		}
		return c.JSON(list)
	})

	app.Post("/rewards", middleware.RequireRole(auth, models.RoleHost, l), func(c *fiber.Ctx) error {
		var req services.CreateRewardInput
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		rw, err := rewards.CreateReward(c.UserContext(), middleware.CurrentUser(c), req)
		if err != nil {
			return respondError(c, log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rw)
	})

	app.Post("/rewards/:id/claim", middleware.RequireSession(auth, l), func(c *fiber.Ctx) error {
		res, err := rewards.ClaimReward(c.UserContext(), middleware.CurrentUser(c), c.Params("id"))
		if err != nil {
			return respondError(c, log, err)
		}
		return c.JSON(res)
	})
}

// handlers/progression_routes.go
package handlers

import (
	"oneearth/logger"
	"oneearth/middleware"
	"oneearth/models"
	"oneearth/services"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressionRoutes(app *fiber.App, progression *services.ProgressionService, auth *services.AuthService, l *logger.Logger) {
	log := l.Component("progression_routes")

	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		board, err := progression.Leaderboard(c.UserContext())
		if err != nil {
			return respondError(c, log, err)
		}
		for i := range board {
			board[i] = board[i].Public()
		}
		return c.JSON(board)
	})

	app.Get("/profile", middleware.RequireSession(auth, l), func(c *fiber.Ctx) error {
		stats, err := progression.Profile(c.UserContext(), middleware.CurrentUser(c).ID)
		if err != nil {
			return respondError(c, log, err)
		}
		stats.User = stats.User.Public()
		return c.JSON(stats)
	})

	app.Get("/host/dashboard", middleware.RequireRole(auth, models.RoleHost, l), func(c *fiber.Ctx) error {
		dash, err := progression.HostDashboard(c.UserContext(), middleware.CurrentUser(c).ID)
		if err != nil {
			return respondError(c, log, err)
		}
		for i := range dash.Pending {
			dash.Pending[i].User = dash.Pending[i].User.Public()
		}
		return c.JSON(dash)
	})
}

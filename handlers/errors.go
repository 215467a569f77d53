// handlers/errors.go
package handlers

import (
	"errors"

	"oneearth/repository"
	"oneearth/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{repository.ErrNotFound, fiber.StatusNotFound},
	{services.ErrInvalidCredentials, fiber.StatusUnauthorized},
	{services.ErrNoSession, fiber.StatusUnauthorized},
	{services.ErrHostOnly, fiber.StatusForbidden},
	{services.ErrNotChallengeHost, fiber.StatusForbidden},
	{services.ErrEmailTaken, fiber.StatusConflict},
	{services.ErrChallengeEnded, fiber.StatusConflict},
	{services.ErrCompletionNotPending, fiber.StatusConflict},
	{services.ErrRewardUnavailable, fiber.StatusConflict},
	{services.ErrMissingFields, fiber.StatusUnprocessableEntity},
	{services.ErrInvalidInput, fiber.StatusUnprocessableEntity},
	{services.ErrInvalidRole, fiber.StatusUnprocessableEntity},
	{services.ErrInsufficientXP, fiber.StatusUnprocessableEntity},
}

// statusFor maps a service error onto an HTTP status. Anything unknown is a 500.
func statusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, log *logrus.Entry, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.WithError(err).Errorf("❌ %s %s failed", c.Method(), c.Path())
		return c.Status(status).JSON(fiber.Map{"error": "internal error"})
	}
	var fe *services.FieldError
	if errors.As(err, &fe) {
		return c.Status(status).JSON(fiber.Map{"error": err.Error(), "fields": fe.Fields})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
}

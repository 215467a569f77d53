package logger

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus logger
type Logger struct {
	*logrus.Logger
	service string
}

// New creates a JSON logger tagged with the service name.
func New(serviceName, level string) *Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	log.SetOutput(os.Stdout)

	switch level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	return &Logger{Logger: log, service: serviceName}
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{Logger: log, service: "test"}
}

// Component returns an entry scoped to one part of the service.
func (l *Logger) Component(name string) *logrus.Entry {
	return l.WithFields(logrus.Fields{"service": l.service, "component": name})
}

// Middleware logs every request once it has been handled.
func Middleware(l *Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		fields := logrus.Fields{
			"service":  l.service,
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).String(),
		}
		if err != nil {
			fields["error"] = err.Error()
			l.WithFields(fields).Error("request failed")
			return err
		}
		l.WithFields(fields).Debug("request completed")
		return nil
	}
}

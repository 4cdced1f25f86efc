package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"hostelku_backend/internals/configs"
)

// LoggerMiddleware writes one access log line per request in the app timezone.
func LoggerMiddleware() fiber.Handler {
	tz := configs.AppTimezone
	if tz == "" {
		tz = configs.DefaultTimezone
	}
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   tz,
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}

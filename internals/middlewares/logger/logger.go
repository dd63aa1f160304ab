package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request, ikut menampilkan request-id
// yang di-set middleware timing di main.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "02-Jan-2006 15:04:05",
		TimeZone:   "Asia/Makassar",
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} ${path} id=${locals:reqid} ${error}\n",
	})
}

package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat ringkas semua request ke API layanan.
// Format selaras dengan log aplikasi lain: tag di depan, lalu detail.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[HTTP] [${time}] ${ip} ${method} ${path} -> ${status} (${latency})\n",
	})
}

package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic dan mengembalikan error 500.
// Stack trace dicatat lewat log aplikasi (bukan stderr default) supaya
// nyambung dengan log [REQ] yang pakai request-id.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			reqID, _ := c.Locals("reqid").(string)
			log.Printf("[PANIC] id=%s %s %s: %v", reqID, c.Method(), c.OriginalURL(), e)
		},
	})
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// RequestLogger middleware de logging estructurado: método, ruta, status y
// latencia por petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

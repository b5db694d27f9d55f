package http

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Limiter es el puerto que consume el middleware de límite de tasa.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// RateLimitMiddleware limita peticiones por ruta e IP. Con limiter nil el
// middleware es pasivo (desarrollo y tests sin Redis). Un fallo de Redis no
// bloquea el tráfico: se loguea y la petición pasa.
func RateLimitMiddleware(limiter Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil {
			return c.Next()
		}
		key := c.Route().Path + ":" + c.IP()
		allowed, retryAfter, err := limiter.Allow(c.Context(), key)
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("limitador de tasa no disponible")
			return c.Next()
		}
		if !allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())))
			return fallo(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "demasiadas peticiones, intente más tarde")
		}
		return c.Next()
	}
}

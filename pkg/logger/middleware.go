package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestLogger middleware de Fiber que emite una línea estructurada por petición.
// 5xx se registra como error, 4xx como warn y el resto como info.
func RequestLogger(l *Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		if chainErr != nil {
			if fe, ok := chainErr.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		level := zerolog.InfoLevel
		switch {
		case status >= 500:
			level = zerolog.ErrorLevel
		case status >= 400:
			level = zerolog.WarnLevel
		}
		l.zl.WithLevel(level).Str("method", c.Method()).
			Str("path", c.Path()).
			Str("query", string(c.Request().URI().QueryString())).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.IP()).
			Int("body_size", len(c.Response().Body())).
			Msg("http_request")

		return chainErr
	}
}

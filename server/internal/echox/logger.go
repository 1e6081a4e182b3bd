package echox

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/starudream/e2e-kit/server/logger"
)

// MiddlewareLogger logs one line per request with the matched route.
func MiddlewareLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			startTime := time.Now()

			log := logger.Ctx(c.Request().Context()).With().
				Str("method", c.Request().Method).
				Str("route", c.Path()).
				Logger()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.Info().
				Err(err).
				Str("ip", c.RealIP()).
				Str("query", c.QueryString()).
				Int("status", c.Response().Status).
				Dur("took", time.Since(startTime)).
				Msg("req")

			return nil
		}
	}
}

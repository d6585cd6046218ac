package server

import (
	"net/http"

	"NutriScan_Backend/internal/utility"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// LoggerMiddleware assigns a request id and attaches a child logger carrying
// it to both the echo context and the request context.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(echo.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(utility.RequestIDKey, requestID)
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		c.Set(utility.LoggerKey, &logger)

		req := c.Request()
		c.SetRequest(req.WithContext(logger.WithContext(req.Context())))

		return next(c)
	}
}

// RequestLogMiddleware writes one access log line per request.
func RequestLogMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogMethod:  true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger := utility.GetLogger(c)
			event := logger.Info()
			if v.Error != nil {
				event = logger.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("ip", utility.GetRealIP(c)).
				Msg("request")
			return nil
		},
	})
}

// RateLimitMiddleware throttles callers by user id, or by IP before
// authentication has run.
func RateLimitMiddleware(limiter *utility.KeyedLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, err := utility.GetUserIDFromContext(c)
			if err != nil {
				key = "ip:" + utility.GetRealIP(c)
			}

			if !limiter.Allow(key) {
				utility.GetLogger(c).Warn().Str("key", key).Msg("Rate limit exceeded")
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"success": false,
					"error":   "Too many requests. Please slow down.",
				})
			}
			return next(c)
		}
	}
}

package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/clientes/internal/auth"
)

// RequestLogger logs every served request with logrus
func RequestLogger(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let error handler write status before it is logged
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := logrus.Fields{
				"method":    req.Method,
				"path":      req.URL.Path,
				"status":    res.Status,
				"latency":   time.Since(start).String(),
				"requestId": res.Header().Get(echo.HeaderXRequestID),
				"remoteIp":  c.RealIP(),
			}

			if claims, ok := auth.ClaimsFromContext(req.Context()); ok {
				fields["subject"] = claims.Subject
			}

			entry := logger.WithFields(fields)
			switch {
			case res.Status >= 500:
				entry.Error("request failed")
			case res.Status >= 400:
				entry.Warn("request rejected")
			default:
				entry.Info("request served")
			}
			return nil
		}
	}
}

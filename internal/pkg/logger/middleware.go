package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware creates request-logging middleware for Echo. When New
// Relic is configured it also opens a web transaction per request so
// downstream code can correlate logs and notice errors.
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var txn *newrelic.Transaction

			if logger.nrApp != nil {
				txn = logger.nrApp.StartTransaction(c.Request().Method + " " + c.Path())
				defer txn.End()

				txn.SetWebRequestHTTP(c.Request())
				txn.SetWebResponse(c.Response().Writer)
				c.SetRequest(c.Request().WithContext(newrelic.NewContext(c.Request().Context(), txn)))
			}

			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			if txn != nil {
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, method, path, clientIP, requestID, statusCode, latency, err)

			return err
		}
	}
}

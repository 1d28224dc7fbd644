package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/utils"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs them with stack traces, and notices them on the active New Relic
// transaction when one exists.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}

	stack := debug.Stack()

	zapLogger.Error("Panic recovered",
		logger.Err(err),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("stack", string(stack)),
	)

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(err)
	}

	if !c.Response().Committed {
		_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

// ErrorMiddleware converts errors collected on the context into JSON
// responses. Anything outside the apperror taxonomy becomes a generic
// internal error so nothing about internals leaks to the caller.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unhandled error", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("request failed", appErr,
				zap.String("path", c.FullPath()), zap.Int("status", status))
		} else {
			log.Warn("request rejected",
				zap.String("path", c.FullPath()), zap.Int("status", status), zap.String("reason", appErr.Message))
		}

		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}

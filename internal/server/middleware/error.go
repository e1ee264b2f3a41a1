package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/draftbox/mediaroute/internal/domain"
)

// ErrorHandler serializes errors attached by handlers. Problems render as
// RFC 9457 bodies with their own status; anything else becomes a 500.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var problem *domain.Problem
		if errors.As(err, &problem) {
			if problem.Log != nil {
				logger.Error("request failed",
					zap.String("title", problem.Title),
					zap.Error(problem.Log),
				)
			}

			// RFC 9457 dictates the json is at the root
			c.JSON(problem.Status, problem)
			c.Abort()
			return
		}

		logger.Error("unhandled error", zap.Error(err))

		c.JSON(http.StatusInternalServerError, domain.New(
			http.StatusInternalServerError,
			"Internal Server Error",
			"An unexpected error occurred.",
		))
		c.Abort()
	}
}

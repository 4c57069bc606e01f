package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "cashbook/internal/errors"
	"cashbook/internal/logger"
)

// ErrorHandler renders the last error a handler attached with c.Error as the
// JSON error envelope. Errors that are not AppErrors become INTERNAL_ERROR so
// their text never reaches the client. A response already written by the
// handler is left as is.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := toAppError(c.Errors.Last().Err)
		if appErr.Internal != nil {
			logger.Get().Errorw("Request failed",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(requestIDKey),
			)
		}

		if c.Writer.Written() {
			return
		}
		abortWithError(c, appErr)
	}
}

func toAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

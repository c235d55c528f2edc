package response

import (
	"errors"
	"log/slog"

	"shop-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// Error writes err as {"error": code, "message": text} with the status of its kind.
// Internal causes are logged and replaced with a generic message.
func Error(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	kind := apperr.KindOf(err).String()

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperr.KindInternal {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"kind", kind,
			"error", err,
		)
		c.AbortWithStatusJSON(status, gin.H{
			"error":   apperr.ErrInternal.Code,
			"message": apperr.ErrInternal.Message,
		})
		return
	}

	slog.DebugContext(c.Request.Context(), "request rejected",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"kind", kind,
		"code", appErr.Code,
	)
	c.AbortWithStatusJSON(status, gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	})
}

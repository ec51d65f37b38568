package middleware

import (
	"log/slog"
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const loggedStackLines = 12

// ErrorHandler logs the cause of every 5xx a handler reported through httperr and writes the
// public response if the handler did not.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		var public *httperr.Response
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			resp, ok := ginErr.Meta.(httperr.Response)
			if !ok || !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if public == nil {
				public = &resp
			}
			if resp.Status >= http.StatusInternalServerError {
				slog.ErrorContext(c.Request.Context(), "request failed",
					"path", c.FullPath(),
					"error", ginErr.Err.Error(),
					"stack", errs.ExtractStackLines(ginErr.Err, loggedStackLines))
			}
		}

		if c.Writer.Written() {
			return
		}
		if public != nil {
			c.JSON(public.Status, public)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}

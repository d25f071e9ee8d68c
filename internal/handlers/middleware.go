package handlers

import (
	"time"

	"conversationLogger/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLoggerMiddleware tags each request with an id and logs its outcome.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestId := ctx.GetHeader(RequestIDHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		ctx.Set("request_id", requestId)
		ctx.Header(RequestIDHeader, requestId)

		start := time.Now()
		ctx.Next()

		logger.L.Info("request",
			"request_id", requestId,
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

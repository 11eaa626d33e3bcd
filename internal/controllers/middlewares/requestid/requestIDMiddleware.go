package requestIDMiddleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeaderKey  = "X-Request-Id"
	RequestIDContextKey = "request_id"
)

// RequestID tags every request with an id, keeping an id supplied by the
// client so requests can be traced across services.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeaderKey)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set(RequestIDContextKey, requestID)
		ctx.Writer.Header().Set(RequestIDHeaderKey, requestID)
		ctx.Next()
	}
}

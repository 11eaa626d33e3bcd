package parseErrors

import "github.com/gin-gonic/gin"

// ErrorResponse wraps an error into the JSON body returned to clients
func ErrorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

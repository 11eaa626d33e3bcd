package healthController

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

type Controller struct{}

// New creates a pointer to a Controller
func New() *Controller {
	return &Controller{}
}

// Health reports service liveness
func (c *Controller) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

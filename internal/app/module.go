package app

import "github.com/gin-gonic/gin"

// Module is a self-contained feature unit that mounts its own routes
// under the versioned API group.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup)
}

package history

import (
	"github.com/gin-gonic/gin"

	"github.com/zhmaterial/material-api/api/types"
)

// RegisterRoutes registers search history routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", Get(deps))
	router.DELETE("", Delete(deps))
}

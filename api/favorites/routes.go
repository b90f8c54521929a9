package favorites

import (
	"github.com/gin-gonic/gin"

	"github.com/zhmaterial/material-api/api/types"
)

// RegisterRoutes registers favorites routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Post(deps))
	router.GET("", Get(deps))
	router.DELETE("/:id", Delete(deps))
}

package translation

import (
	"github.com/gin-gonic/gin"

	"github.com/zhmaterial/material-api/api/types"
)

// RegisterRoutes registers translation routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/translate (router already includes /translate prefix)
	router.POST("", Post(deps))
}

package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zhmaterial/material-api/api/types"
	"github.com/zhmaterial/material-api/pkg/config"
)

// Get handles health check requests
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"search":    searchBackendStatus(),
		}

		if deps != nil && deps.DB != nil {
			response["database"] = databaseStatus(deps)
		} else {
			response["database"] = gin.H{"status": "not configured"}
		}

		c.JSON(http.StatusOK, response)
	}
}

// searchBackendStatus reports whether searches hit the live API or demo data
func searchBackendStatus() gin.H {
	if config.PixabayConfigured() {
		return gin.H{"mode": "live"}
	}
	return gin.H{"mode": "demo", "reason": "api key not configured"}
}

// databaseStatus returns the database connection status
func databaseStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}

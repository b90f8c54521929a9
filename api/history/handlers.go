package history

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhmaterial/material-api/api/types"
)

// Get returns the most recent distinct searches
// @Summary      Recent searches
// @Tags         history
// @Produce      json
// @Success      200  {object}  types.HistoryResponse
// @Router       /api/v1/history [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := deps.HistoryService.Recent(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to load search history",
			})
			return
		}

		c.JSON(http.StatusOK, types.HistoryResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Search history retrieved",
			},
			History: entries,
			Count:   len(entries),
		})
	}
}

// Delete clears the search history
// @Summary      Clear search history
// @Tags         history
// @Produce      json
// @Success      200  {object}  types.BaseResponse
// @Router       /api/v1/history [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.HistoryService.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to clear search history",
			})
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Search history cleared",
		})
	}
}

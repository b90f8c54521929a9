package search

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zhmaterial/material-api/api/types"
	"github.com/zhmaterial/material-api/internal/models"
	"github.com/zhmaterial/material-api/internal/services/search"
	apperrors "github.com/zhmaterial/material-api/pkg/errors"
)

// Get handles media search requests
// @Summary      Search stock media
// @Description  Translates a Chinese query to English and searches photos and videos. Falls back to demo data when no API key is configured or the upstream fails; degraded responses carry usingMockData=true rather than an error status.
// @Tags         search
// @Produce      json
// @Param        q     query  string  true   "Search query (Chinese or English)"
// @Param        type  query  string  false  "Media type filter"  Enums(all, photos, videos)  default(all)
// @Param        page  query  int     false  "Page number (1-100)"  default(1)
// @Success      200  {object}  search.Response  "Search results"
// @Failure      400  {object}  types.ErrorResponse  "Missing or blank query, or page out of range"
// @Router       /api/v1/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")

		mediaType := c.DefaultQuery("type", search.TypeAll)
		if mediaType != search.TypeAll && mediaType != search.TypePhotos && mediaType != search.TypeVideos {
			mediaType = search.TypeAll
		}

		page := 1
		if raw := c.Query("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Invalid page number",
				})
				return
			}
			page = parsed
		}

		response, err := deps.SearchService.Search(c.Request.Context(), search.Request{
			Query:     query,
			MediaType: mediaType,
			Page:      page,
		})
		if err != nil {
			// The orchestrator only errors on bad input; everything
			// upstream degrades to demo data instead
			status := http.StatusBadRequest
			if !apperrors.IsClientError(err) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, types.ErrorResponse{
				Status:  types.StatusError,
				Message: errorMessage(err),
			})
			return
		}

		if deps.HistoryService != nil {
			deps.HistoryService.Record(c.Request.Context(), &models.SearchHistory{
				Query:           response.Query,
				TranslatedQuery: response.TranslatedQuery,
				MediaType:       response.MediaType,
				TotalHits:       response.TotalHits,
				UsedMockData:    response.UsingMockData,
			})
		}

		c.JSON(http.StatusOK, response)
	}
}

func errorMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return "Search failed"
}

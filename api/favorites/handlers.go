package favorites

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zhmaterial/material-api/api/types"
	"github.com/zhmaterial/material-api/internal/models"
	apperrors "github.com/zhmaterial/material-api/pkg/errors"
)

// Post saves a favorite media item
// @Summary      Save a favorite
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        request  body  types.FavoriteRequest  true  "Media item to save"
// @Success      201  {object}  types.SingleFavoriteResponse
// @Failure      400  {object}  types.ErrorResponse
// @Router       /api/v1/favorites [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.FavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		favorite := &models.Favorite{
			MediaID:   req.MediaID,
			MediaKind: req.MediaKind,
			Title:     req.Title,
			Thumbnail: req.Thumbnail,
			PageURL:   req.PageURL,
			Tags:      req.Tags,
			Source:    req.Source,
		}

		if err := deps.FavoritesService.Save(c.Request.Context(), favorite); err != nil {
			writeError(c, err, "Failed to save favorite")
			return
		}

		c.JSON(http.StatusCreated, types.SingleFavoriteResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Favorite saved",
			},
			Favorite: favorite,
		})
	}
}

// Get lists saved favorites
// @Summary      List favorites
// @Tags         favorites
// @Produce      json
// @Param        type  query  string  false  "Filter by media kind"  Enums(photo, video)
// @Param        page  query  int     false  "Page number"  default(1)
// @Success      200  {object}  types.FavoritesResponse
// @Router       /api/v1/favorites [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaKind := c.Query("type")
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

		items, total, err := deps.FavoritesService.List(c.Request.Context(), mediaKind, page, 20)
		if err != nil {
			writeError(c, err, "Failed to list favorites")
			return
		}

		c.JSON(http.StatusOK, types.FavoritesResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Favorites retrieved",
			},
			Favorites: items,
			Count:     len(items),
			Total:     total,
			Page:      page,
		})
	}
}

// Delete removes a favorite
// @Summary      Delete a favorite
// @Tags         favorites
// @Produce      json
// @Param        id  path  int  true  "Favorite ID"
// @Success      200  {object}  types.BaseResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/v1/favorites/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid favorite ID",
			})
			return
		}

		if err := deps.FavoritesService.Delete(c.Request.Context(), uint(id)); err != nil {
			writeError(c, err, "Failed to delete favorite")
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Favorite deleted",
		})
	}
}

func writeError(c *gin.Context, err error, fallback string) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		c.JSON(appErr.HTTPCode, types.ErrorResponse{
			Status:  types.StatusError,
			Message: appErr.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, types.ErrorResponse{
		Status:  types.StatusError,
		Message: fallback,
	})
}

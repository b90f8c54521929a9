package translation

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zhmaterial/material-api/api/types"
	translationsvc "github.com/zhmaterial/material-api/internal/services/translation"
)

// Post handles translation requests
// @Summary      Translate Chinese text to an English search query
// @Description  Resolves text through the cache, phrase dictionary, external providers and the local fallback. Never fails past validation: on total provider failure the local tier still produces a usable query.
// @Tags         translation
// @Accept       json
// @Produce      json
// @Param        request  body  types.TranslateRequest  true  "Text to translate"
// @Success      200  {object}  types.TranslateResponse  "Translation result"
// @Failure      400  {object}  types.ErrorResponse  "Missing or blank text"
// @Router       /api/v1/translate [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TranslateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid text parameter",
			})
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid text parameter",
			})
			return
		}

		result := deps.Translator.Translate(c.Request.Context(), req.Text)

		c.JSON(http.StatusOK, types.TranslateResponse{
			TranslatedText: result.Translated,
			Source:         result.Source,
			Cached:         result.Source == translationsvc.SourceCache,
		})
	}
}

package translation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhmaterial/material-api/api/types"
	translationsvc "github.com/zhmaterial/material-api/internal/services/translation"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// Resolver without providers still resolves via dictionary and the
	// local fallback
	deps := &types.Dependencies{
		Translator: translationsvc.NewResolver(translationsvc.Config{}),
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/translate"), deps)
	return router
}

func TestPost(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name:           "dictionary phrase",
			body:           types.TranslateRequest{Text: "商业会议"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "business meeting", resp["translatedText"])
				assert.Equal(t, "dictionary", resp["source"])
			},
		},
		{
			name:           "local substitution",
			body:           types.TranslateRequest{Text: "商务视频"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "businessvideo", resp["translatedText"])
				assert.Equal(t, "local", resp["source"])
			},
		},
		{
			name:           "missing text field",
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "error", resp["status"])
				assert.Equal(t, "Invalid text parameter", resp["message"])
			},
		},
		{
			name:           "blank text",
			body:           map[string]string{"text": "   "},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter()

			var payload []byte
			if s, ok := tt.body.(string); ok {
				payload = []byte(s)
			} else {
				var err error
				payload, err = json.Marshal(tt.body)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.checkResponse != nil {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestPost_RepeatIsCached(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(types.TranslateRequest{Text: "商务视频"})

	do := func() map[string]interface{} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	first := do()
	assert.Equal(t, "local", first["source"])
	_, hasCached := first["cached"]
	assert.False(t, hasCached, "first resolution should not be flagged cached")

	second := do()
	assert.Equal(t, "cache", second["source"])
	assert.Equal(t, true, second["cached"])
}

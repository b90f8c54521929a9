// Package middleware holds reusable gin middleware that needs service
// dependencies, currently the GET response cache used on the search route.
package middleware

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zhmaterial/material-api/internal/services/cache"
)

// CacheConfig holds configuration for cache middleware
type CacheConfig struct {
	Cache      cache.Cache
	DefaultTTL time.Duration
	Enabled    bool
}

// responseWriter captures the response body for caching
type responseWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// CacheMiddleware caches successful GET responses keyed by path and sorted
// query parameters. Clients can bypass with Cache-Control: no-cache.
func CacheMiddleware(config CacheConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.Enabled || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		if shouldBypassCache(c.Request) {
			c.Header("X-Cache", "BYPASS")
			c.Next()
			return
		}

		key := cacheKey(c.Request)

		if data, found := config.Cache.Get(context.Background(), key); found {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
			status:         http.StatusOK,
		}
		c.Writer = w

		c.Next()

		if w.status == http.StatusOK && w.body.Len() > 0 {
			_ = config.Cache.Set(context.Background(), key, w.body.Bytes(), config.DefaultTTL)
		}
	}
}

// shouldBypassCache checks request cache-control headers
func shouldBypassCache(req *http.Request) bool {
	cacheControl := strings.ToLower(req.Header.Get("Cache-Control"))
	if strings.Contains(cacheControl, "no-cache") || strings.Contains(cacheControl, "no-store") {
		return true
	}
	return req.Header.Get("Pragma") == "no-cache"
}

// cacheKey creates a stable key from path and sorted query parameters
func cacheKey(req *http.Request) string {
	parts := []string{req.URL.Path}

	if req.URL.RawQuery != "" {
		params := req.URL.Query()
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			for _, v := range params[k] {
				parts = append(parts, fmt.Sprintf("%s=%s", k, v))
			}
		}
	}

	return "http:" + strings.Join(parts, ":")
}

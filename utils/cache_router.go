package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CacheNoCache = 0
	CacheCustom  = -1
)

// CacheControl sets the cache-control header for every response of the routes it guards.
// Handlers that want their own caching policy should be guarded with CacheCustom.
func CacheControl(seconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch {
		case seconds == CacheCustom:
		case seconds <= CacheNoCache:
			c.Header("cache-control", "no-cache")
		default:
			c.Header("cache-control", "private, max-age="+strconv.Itoa(seconds))
		}
		c.Next()
	}
}

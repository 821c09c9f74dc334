package httpx

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID propagates the client's X-Request-ID, generating one when absent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// Logger writes one line per request. Paths in skip are not logged; health
// checks poll constantly and drown everything else out.
func Logger(skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if _, ok := skipped[c.Request.URL.Path]; ok {
			return
		}
		rid, _ := c.Get("rid")
		query := c.Request.URL.RawQuery
		if query != "" {
			query = "?" + query
		}
		log.Printf("[http] rid=%v %s %s%s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, query, c.Writer.Status(), time.Since(start))
	}
}

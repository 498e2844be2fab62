package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request and converts panics into a
// JSON 500 instead of a dropped connection. Request bodies and query
// strings are never logged; auth endpoints carry secrets in both.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				log.Printf("panic %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   gin.H{"code": "INTERNAL_SERVER_ERROR", "message": "Internal Server Error"},
				})
			}
		}()

		c.Next()

		log.Printf("%d %s %s %s", c.Writer.Status(), c.Request.Method, c.Request.URL.Path, time.Since(start))
	}
}

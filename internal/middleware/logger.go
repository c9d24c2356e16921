package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("http")

// RequestLogger logs one line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		if status >= 500 {
			log.Errorf("%s %s %d %v", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
			return
		}
		log.Infof("%s %s %d %v", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
	}
}

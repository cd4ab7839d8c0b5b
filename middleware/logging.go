package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	ua "github.com/mileusna/useragent"
)

// RequestLogger logs one line per request with the client family parsed from
// the User-Agent header.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		agent := ua.Parse(c.Request.UserAgent())
		client := agent.Name
		if client == "" {
			client = "unknown"
		}
		if agent.Mobile {
			client += "/mobile"
		}

		log.Printf("%s %s %d %s client=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			client,
		)
	}
}

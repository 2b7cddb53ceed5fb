package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP sets the real client IP into Gin context (key: "real_ip"),
// preferring the left-most X-Forwarded-For entry and falling back to the
// connection peer.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			first := strings.TrimSpace(strings.Split(xff, ",")[0])
			if ip := net.ParseIP(first); ip != nil {
				c.Set("real_ip", ip.String())
				c.Next()
				return
			}
		}
		c.Set("real_ip", c.ClientIP())
		c.Next()
	}
}

package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP sets the client IP into the Gin context (key: "real_ip").
// When trustForwarded is set, CF-Connecting-IP and then the left-most
// X-Forwarded-For entry win over c.ClientIP().
func RealIP(trustForwarded bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if trustForwarded {
			if ip := forwardedIP(c); ip != "" {
				c.Set("real_ip", ip)
				c.Next()
				return
			}
		}
		c.Set("real_ip", c.ClientIP())
		c.Next()
	}
}

func forwardedIP(c *gin.Context) string {
	if cf := strings.TrimSpace(c.GetHeader("CF-Connecting-IP")); cf != "" {
		if ip := net.ParseIP(cf); ip != nil {
			return ip.String()
		}
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	return ""
}

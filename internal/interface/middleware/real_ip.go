package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// forwardedHeaders are checked in order; the first parseable address wins.
// X-Forwarded-For may carry a chain, only its left-most entry is used.
var forwardedHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

func firstIP(v string) string {
	first, _, _ := strings.Cut(v, ",")
	if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
		return ip.String()
	}
	return ""
}

// RealIP stores the client address under "real_ip" for the rate limiter and
// the request logs. It falls back to c.ClientIP().
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := ""
		for _, h := range forwardedHeaders {
			if ip = firstIP(c.GetHeader(h)); ip != "" {
				break
			}
		}
		if ip == "" {
			ip = c.ClientIP()
		}
		c.Set("real_ip", ip)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookapi/internal/infrastructure/config"
)

// CORS 跨域资源共享中间件
// 1. Origin不在允许列表中时返回403
// 2. 预检请求（OPTIONS）直接返回204
// 注意：allow_credentials=true时不能使用"*"，此时回显请求的Origin
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")

		// 非浏览器跨域请求不需要CORS头
		if origin == "" {
			c.Next()
			return
		}

		allowedOrigin, ok := matchOrigin(cfg.AllowOrigins, origin, cfg.AllowCredentials)
		if !ok {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		if allowedOrigin != "*" {
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		if exposeHeaders != "" {
			c.Header("Access-Control-Expose-Headers", exposeHeaders)
		}
		if cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		if cfg.MaxAge > 0 {
			c.Header("Access-Control-Max-Age", maxAge)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// matchOrigin 返回应写入Access-Control-Allow-Origin的值
func matchOrigin(allowOrigins []string, origin string, credentials bool) (string, bool) {
	for _, allowOrigin := range allowOrigins {
		switch {
		case allowOrigin == "*" && credentials:
			return origin, true
		case allowOrigin == "*":
			return "*", true
		case allowOrigin == origin:
			return origin, true
		}
	}
	return "", false
}

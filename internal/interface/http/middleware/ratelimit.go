package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/xiebiao/bookapi/pkg/errors"
	"github.com/xiebiao/bookapi/pkg/metrics"
	"github.com/xiebiao/bookapi/pkg/response"
)

// RateLimit 全局令牌桶限流中间件
// limit为每秒请求数，burst为桶容量；limit<=0时不限流
func RateLimit(limit float64, burst int) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(limit), burst)
	limitHeader := strconv.Itoa(int(limit))

	return func(c *gin.Context) {
		if !limiter.Allow() {
			metrics.IncCounter(metrics.RateLimitRejectsTotal)
			c.Header("Retry-After", "1")
			response.Error(c, apperrors.ErrRateLimited)
			return
		}

		c.Header("X-RateLimit-Limit", limitHeader)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Second).Unix(), 10))

		c.Next()
	}
}

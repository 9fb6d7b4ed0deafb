package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookapi/pkg/metrics"
)

// unmatchedPath 未匹配任何路由时使用的path标签，避免标签基数失控
const unmatchedPath = "unmatched"

// Metrics HTTP指标中间件（RED：请求数、错误数、耗时）
// path标签使用路由模板（如/api/books/:id），而不是原始URL
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.IncGauge(metrics.HTTPRequestsInProgress)
		start := time.Now()

		defer func() {
			metrics.DecGauge(metrics.HTTPRequestsInProgress)

			path := c.FullPath()
			if path == "" {
				path = unmatchedPath
			}
			method := c.Request.Method

			metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
				"method": method,
				"path":   path,
				"status": strconv.Itoa(c.Writer.Status()),
			})
			metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, map[string]string{
				"method": method,
				"path":   path,
			}, time.Since(start).Seconds())
		}()

		c.Next()
	}
}

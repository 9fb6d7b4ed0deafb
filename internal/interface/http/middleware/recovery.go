package middleware

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookapi/pkg/errors"
	"github.com/xiebiao/bookapi/pkg/metrics"
	"github.com/xiebiao/bookapi/pkg/response"
)

// Recovery panic恢复中间件
// 客户端只收到500和通用提示，panic内容写入日志
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		metrics.IncCounter(metrics.PanicRecoveriesTotal)
		slog.ErrorContext(c.Request.Context(), "panic recovered",
			"request_id", c.GetString(RequestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", fmt.Sprintf("%v", recovered),
		)
		response.Error(c, apperrors.ErrInternal)
	})
}

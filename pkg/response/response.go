package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

// ErrorBody 统一错误响应结构
// 所有错误响应只包含message字段
type ErrorBody struct {
	Message string `json:"message" example:"Missing Book Title"`
}

// StatusBody 操作结果响应（删除等不返回资源的操作）
type StatusBody struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Book 0 deleted successfully"`
}

// OK 200响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Status 200 + {status, message}
func Status(c *gin.Context, status, message string) {
	c.JSON(http.StatusOK, StatusBody{
		Status:  status,
		Message: message,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	book, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误记录原始原因，客户端只看到通用提示
	if appErr.Err != nil {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", appErr.Err,
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus(), ErrorBody{Message: appErr.Message})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}

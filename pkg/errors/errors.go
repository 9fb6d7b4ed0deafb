package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，HTTP状态码由Code推导（Code / 100）
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，使errors.Is(err, ErrNotFound)对携带不同Message的同码错误也成立
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// HTTPStatus 由业务错误码推导HTTP状态码
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、资源不存在）
// - 5xxxx: 服务端错误

const (
	// 参数错误（40000-40099）
	ErrCodeInvalidParams    = 40000 // 参数错误(通用)
	ErrCodeInvalidID        = 40001 // 路径ID非法
	ErrCodeInvalidBody      = 40002 // 请求体格式错误
	ErrCodeMissingField     = 40003 // 缺少必填字段
	ErrCodeInvalidDate      = 40004 // 日期无法解析
	ErrCodeMethodNotAllowed = 40005 // 不支持的HTTP方法(按400返回)

	// 资源错误（40400-40499）
	ErrCodeNotFound = 40400 // 资源不存在

	// 冲突（40900-40999）
	ErrCodeConflict = 40900 // 与当前存储状态冲突

	// 限流（42900-42999）
	ErrCodeRateLimited = 42900

	// 系统级错误码（50000-50099）
	ErrCodeInternal = 50000
)

// 客户端看到的内部错误提示
const InternalErrorMessage = "Internal Server Error Occurred"

var (
	ErrInternal      = New(ErrCodeInternal, InternalErrorMessage)
	ErrInvalidParams = New(ErrCodeInvalidParams, "Invalid request parameters")
	ErrInvalidBody   = New(ErrCodeInvalidBody, "Invalid request body")
	ErrNotFound      = New(ErrCodeNotFound, "Resource Not Found")
	ErrRateLimited   = New(ErrCodeRateLimited, "Rate limit exceeded")
)

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, InternalErrorMessage)
}

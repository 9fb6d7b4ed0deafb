package book

import (
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeNotFound, "Resource Not Found")

	// ErrInvalidBookID 路径ID不是非负整数
	ErrInvalidBookID = apperrors.New(apperrors.ErrCodeInvalidID, "Invalid book ID")

	// ErrInvalidPublishedDate 出版日期无法解析
	ErrInvalidPublishedDate = apperrors.New(apperrors.ErrCodeInvalidDate, "Invalid Book Published Date")

	// ErrIDSpaceExhausted 已占用最大位置,追加无法再分配ID
	ErrIDSpaceExhausted = apperrors.New(apperrors.ErrCodeConflict, "Book ID space exhausted")
)

// 缺少必填字段时的提示,按校验顺序排列
const (
	MsgMissingTitle         = "Missing Book Title"
	MsgMissingAuthor        = "Missing Book Author"
	MsgMissingPublishedDate = "Missing Book Published Date"
	MsgMissingSummary       = "Missing Book Summary"
)

// newMissingFieldError 缺少必填字段错误
func newMissingFieldError(message string) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeMissingField, message)
}

package book

import (
	"context"
	"log/slog"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/pkg/metrics"
)

// ReplaceBookUseCase 图书整体替换用例(不存在则创建)
type ReplaceBookUseCase struct {
	bookService book.Service
}

// NewReplaceBookUseCase 创建替换用例
func NewReplaceBookUseCase(bookService book.Service) *ReplaceBookUseCase {
	return &ReplaceBookUseCase{
		bookService: bookService,
	}
}

// ReplaceBookRequest 替换请求DTO
type ReplaceBookRequest struct {
	ID   int
	Book DraftInput
}

// Execute 执行替换
func (uc *ReplaceBookUseCase) Execute(ctx context.Context, req ReplaceBookRequest) (*BookResult, error) {
	b, err := uc.bookService.ReplaceBook(ctx, req.ID, req.Book.toDraft())
	metrics.RecordBookOperation("replace", err)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "book replaced", "id", b.ID)
	result := toResult(b)
	return &result, nil
}

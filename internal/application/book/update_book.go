package book

import (
	"context"
	"log/slog"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/pkg/metrics"
)

// UpdateBookUseCase 图书部分更新用例
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建部分更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
	}
}

// UpdateBookRequest 部分更新请求DTO,nil字段保持原值
type UpdateBookRequest struct {
	ID            int
	Title         *string
	Author        *string
	PublishedDate *string
	Summary       *string
}

// Execute 执行部分更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookResult, error) {
	b, err := uc.bookService.UpdateBook(ctx, req.ID, book.Patch{
		Title:         req.Title,
		Author:        req.Author,
		PublishedDate: req.PublishedDate,
		Summary:       req.Summary,
	})
	metrics.RecordBookOperation("update", err)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "book updated", "id", b.ID)
	result := toResult(b)
	return &result, nil
}

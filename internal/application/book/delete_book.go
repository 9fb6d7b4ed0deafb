package book

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/pkg/metrics"
)

// DeleteBookUseCase 图书删除用例
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
	}
}

// DeleteBookResponse 删除结果DTO(不返回被删除的内容)
type DeleteBookResponse struct {
	Status  string
	Message string
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id int) (*DeleteBookResponse, error) {
	err := uc.bookService.DeleteBook(ctx, id)
	metrics.RecordBookOperation("delete", err)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "book deleted", "id", id)
	return &DeleteBookResponse{
		Status:  "success",
		Message: fmt.Sprintf("Book %d deleted successfully", id),
	}, nil
}

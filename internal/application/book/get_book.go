package book

import (
	"context"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/pkg/metrics"
)

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建详情用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
	}
}

// Execute 按ID查询图书
func (uc *GetBookUseCase) Execute(ctx context.Context, id int) (*BookResult, error) {
	b, err := uc.bookService.GetBook(ctx, id)
	metrics.RecordBookOperation("get", err)
	if err != nil {
		return nil, err
	}
	result := toResult(b)
	return &result, nil
}

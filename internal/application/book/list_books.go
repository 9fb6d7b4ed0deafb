package book

import (
	"context"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/pkg/metrics"
)

// ListBooksUseCase 图书列表查询用例
// 返回全部图书,不分页、不过滤、不排序
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]BookResult, error) {
	books, err := uc.bookService.ListBooks(ctx)
	metrics.RecordBookOperation("list", err)
	if err != nil {
		return nil, err
	}
	return toResults(books), nil
}

// Count 图书数量(健康检查使用)
func (uc *ListBooksUseCase) Count(ctx context.Context) (int, error) {
	return uc.bookService.CountBooks(ctx)
}

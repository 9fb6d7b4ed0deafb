package book

import (
	"context"
	"log/slog"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/pkg/metrics"
)

// CreateBooksUseCase 图书创建用例(单本或批量)
type CreateBooksUseCase struct {
	bookService book.Service
}

// NewCreateBooksUseCase 创建图书创建用例
func NewCreateBooksUseCase(bookService book.Service) *CreateBooksUseCase {
	return &CreateBooksUseCase{
		bookService: bookService,
	}
}

// CreateBooksRequest 创建请求DTO
// 单本创建时Items只有一项
type CreateBooksRequest struct {
	Items []DraftInput
}

// Execute 执行创建
// 校验、日期规范化、ID分配由领域服务负责;任一项失败则全部不写入
func (uc *CreateBooksUseCase) Execute(ctx context.Context, req CreateBooksRequest) ([]BookResult, error) {
	drafts := make([]book.Draft, len(req.Items))
	for i, item := range req.Items {
		drafts[i] = item.toDraft()
	}

	created, err := uc.bookService.CreateBooks(ctx, drafts)
	metrics.RecordBookOperation("create", err)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "books created", "count", len(created))
	return toResults(created), nil
}

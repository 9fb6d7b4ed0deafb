package book

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookapi/pkg/tracing"
)

const tracerName = "bookapi/domain/book"

// Service 图书领域服务接口
// 设计说明:
// 1. 封装ID分配、按值查找、按位置写入/删除等规则
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// ListBooks 返回全部图书,不分页、不过滤
	ListBooks(ctx context.Context) ([]*Book, error)

	// CountBooks 返回图书数量
	CountBooks(ctx context.Context) (int, error)

	// CreateBooks 批量创建图书
	// 业务规则:
	// - 先按顺序校验全部Draft,任一失败则不修改存储
	// - ID从当前存储长度开始依次分配
	// - 出版日期规范化为YYYY-MM-DD
	CreateBooks(ctx context.Context, drafts []Draft) ([]*Book, error)

	// GetBook 按ID值查找图书
	GetBook(ctx context.Context, id int) (*Book, error)

	// UpdateBook 部分更新
	// 业务规则: 按ID值查找,合并后写回位置=id的槽位
	UpdateBook(ctx context.Context, id int, patch Patch) (*Book, error)

	// ReplaceBook 整体替换(不存在则创建)
	// 业务规则: 校验全部字段,写入位置=id的槽位
	ReplaceBook(ctx context.Context, id int, draft Draft) (*Book, error)

	// DeleteBook 删除图书
	// 业务规则: 按ID值确认存在后,删除位置=id的槽位
	DeleteBook(ctx context.Context, id int) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListBooks 查询全部图书
func (s *service) ListBooks(ctx context.Context) (books []*Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.ListBooks")
	defer func() { tracing.EndSpan(span, err) }()

	books, err = s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("book.count", len(books)))
	return books, nil
}

// CountBooks 图书数量
func (s *service) CountBooks(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// CreateBooks 批量创建图书
func (s *service) CreateBooks(ctx context.Context, drafts []Draft) (created []*Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.CreateBooks")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.Int("book.batch_size", len(drafts)))

	// 1. 全部校验通过之后才写入存储
	toStore := make([]*Book, 0, len(drafts))
	for _, d := range drafts {
		if err := VerifyFields(d).Err(); err != nil {
			return nil, err
		}

		// 2. 日期规范化
		date, err := NormalizeDate(d.PublishedDate)
		if err != nil {
			return nil, err
		}

		// ID由仓储在追加时分配
		toStore = append(toStore, NewBook(0, d, date))
	}

	if len(toStore) == 0 {
		return []*Book{}, nil
	}

	// 3. 追加到存储
	return s.repo.Append(ctx, toStore)
}

// GetBook 按ID获取图书
func (s *service) GetBook(ctx context.Context, id int) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.GetBook")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.Int("book.id", id))

	if id < 0 {
		return nil, ErrInvalidBookID
	}
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 部分更新图书
func (s *service) UpdateBook(ctx context.Context, id int, patch Patch) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.UpdateBook")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.Int("book.id", id))

	if id < 0 {
		return nil, ErrInvalidBookID
	}

	// 1. 按ID值查找
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 提供了非空新日期则规范化,未提供或为空串时保留原日期
	if patch.PublishedDate != nil && strings.TrimSpace(*patch.PublishedDate) == "" {
		patch.PublishedDate = nil
	}
	if patch.PublishedDate != nil {
		date, err := NormalizeDate(*patch.PublishedDate)
		if err != nil {
			return nil, err
		}
		patch.PublishedDate = &date
	}

	// 3. 合并后写回位置=id的槽位(不是查找命中的位置)
	merged := existing.Merge(patch)
	if err := s.repo.Put(ctx, id, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// ReplaceBook 整体替换图书
func (s *service) ReplaceBook(ctx context.Context, id int, draft Draft) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.ReplaceBook")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.Int("book.id", id))

	if id < 0 {
		return nil, ErrInvalidBookID
	}

	if err := VerifyFields(draft).Err(); err != nil {
		return nil, err
	}

	date, err := NormalizeDate(draft.PublishedDate)
	if err != nil {
		return nil, err
	}

	b = NewBook(id, draft, date)
	if err := s.repo.Put(ctx, id, b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id int) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.DeleteBook")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.Int("book.id", id))

	if id < 0 {
		return ErrInvalidBookID
	}

	// 1. 确认ID存在
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	// 2. 删除位置=id的槽位(不是查找命中的位置)
	return s.repo.RemoveAt(ctx, id)
}

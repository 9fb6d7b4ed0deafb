package book

import (
	"github.com/xiebiao/bookapi/internal/domain/book"
)

// BookResult 用例输出DTO,与HTTP层解耦
type BookResult struct {
	ID            int
	Title         string
	Author        string
	PublishedDate string
	Summary       string
}

func toResult(b *book.Book) BookResult {
	return BookResult{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		PublishedDate: b.PublishedDate,
		Summary:       b.Summary,
	}
}

func toResults(books []*book.Book) []BookResult {
	results := make([]BookResult, len(books))
	for i, b := range books {
		results[i] = toResult(b)
	}
	return results
}

// DraftInput 创建/替换时的输入
type DraftInput struct {
	Title         string
	Author        string
	PublishedDate string
	Summary       string
}

func (in DraftInput) toDraft() book.Draft {
	return book.Draft{
		Title:         in.Title,
		Author:        in.Author,
		PublishedDate: in.PublishedDate,
		Summary:       in.Summary,
	}
}

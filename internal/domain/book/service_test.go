package book_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

func draft(title string) book.Draft {
	return book.Draft{
		Title:         title,
		Author:        "Author " + title,
		PublishedDate: "2021-03-04T10:00:00Z",
		Summary:       "Summary " + title,
	}
}

func newService(t *testing.T, titles ...string) (book.Service, book.Repository) {
	t.Helper()
	repo := memory.NewBookRepository()
	svc := book.NewService(repo)
	if len(titles) > 0 {
		drafts := make([]book.Draft, 0, len(titles))
		for _, title := range titles {
			drafts = append(drafts, draft(title))
		}
		_, err := svc.CreateBooks(context.Background(), drafts)
		require.NoError(t, err)
	}
	return svc, repo
}

func TestCreateBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("单本创建,ID等于原长度,日期规范化", func(t *testing.T) {
		svc, _ := newService(t, "A", "B")

		created, err := svc.CreateBooks(ctx, []book.Draft{draft("C")})
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, 2, created[0].ID)
		assert.Equal(t, "2021-03-04", created[0].PublishedDate)

		got, err := svc.GetBook(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, created[0], got)
	})

	t.Run("批量中有无效项时存储不变", func(t *testing.T) {
		svc, repo := newService(t, "A")

		invalid := draft("bad")
		invalid.Summary = ""
		_, err := svc.CreateBooks(ctx, []book.Draft{draft("B"), invalid, draft("C")})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, book.MsgMissingSummary, appErr.Message)
		assert.Equal(t, 400, appErr.HTTPStatus())

		n, _ := repo.Len(ctx)
		assert.Equal(t, 1, n)
	})

	t.Run("日期无法解析时返回400且存储不变", func(t *testing.T) {
		svc, repo := newService(t)

		bad := draft("A")
		bad.PublishedDate = "someday"
		_, err := svc.CreateBooks(ctx, []book.Draft{bad})
		assert.ErrorIs(t, err, book.ErrInvalidPublishedDate)

		n, _ := repo.Len(ctx)
		assert.Zero(t, n)
	})

	t.Run("空批量返回空切片", func(t *testing.T) {
		svc, _ := newService(t)
		created, err := svc.CreateBooks(ctx, nil)
		require.NoError(t, err)
		assert.NotNil(t, created)
		assert.Empty(t, created)
	})
}

func TestGetBook(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, "A")

	_, err := svc.GetBook(ctx, 9)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	_, err = svc.GetBook(ctx, -1)
	assert.ErrorIs(t, err, book.ErrInvalidBookID)
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("合并字段,未提供日期时保留原日期", func(t *testing.T) {
		svc, _ := newService(t, "A", "B")
		title := "B2"

		updated, err := svc.UpdateBook(ctx, 1, book.Patch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "B2", updated.Title)
		assert.Equal(t, "Author B", updated.Author)
		assert.Equal(t, "2021-03-04", updated.PublishedDate)

		got, _ := svc.GetBook(ctx, 1)
		assert.Equal(t, updated, got)
	})

	t.Run("空日期视为未提供", func(t *testing.T) {
		svc, _ := newService(t, "A")
		title, empty := "B", ""

		updated, err := svc.UpdateBook(ctx, 0, book.Patch{Title: &title, PublishedDate: &empty})
		require.NoError(t, err)
		assert.Equal(t, "B", updated.Title)
		assert.Equal(t, "2021-03-04", updated.PublishedDate)
	})

	t.Run("提供日期时规范化", func(t *testing.T) {
		svc, _ := newService(t, "A")
		date := "1999-12-31T23:00:00Z"

		updated, err := svc.UpdateBook(ctx, 0, book.Patch{PublishedDate: &date})
		require.NoError(t, err)
		assert.Equal(t, "1999-12-31", updated.PublishedDate)
	})

	t.Run("不存在返回404", func(t *testing.T) {
		svc, _ := newService(t, "A")
		title := "x"
		_, err := svc.UpdateBook(ctx, 5, book.Patch{Title: &title})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("写回位置=id而不是命中位置", func(t *testing.T) {
		svc, repo := newService(t, "A", "B", "C")
		require.NoError(t, svc.DeleteBook(ctx, 0))
		// 现在: 位置0=B(id 1), 位置1=C(id 2)

		title := "C2"
		_, err := svc.UpdateBook(ctx, 2, book.Patch{Title: &title})
		require.NoError(t, err)

		// 位置2超出长度2,存储扩展为3个槽位,C仍在位置1
		n, _ := repo.Len(ctx)
		assert.Equal(t, 3, n)
		books, _ := svc.ListBooks(ctx)
		require.Len(t, books, 3)
		assert.Equal(t, []string{"B", "C", "C2"}, []string{books[0].Title, books[1].Title, books[2].Title})
	})
}

func TestReplaceBook(t *testing.T) {
	ctx := context.Background()

	t.Run("不存在时创建", func(t *testing.T) {
		svc, _ := newService(t)

		b, err := svc.ReplaceBook(ctx, 0, draft("New"))
		require.NoError(t, err)
		assert.Equal(t, 0, b.ID)
		assert.Equal(t, "2021-03-04", b.PublishedDate)

		got, err := svc.GetBook(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
	})

	t.Run("存在时覆盖", func(t *testing.T) {
		svc, _ := newService(t, "A", "B")

		_, err := svc.ReplaceBook(ctx, 1, draft("B2"))
		require.NoError(t, err)

		books, _ := svc.ListBooks(ctx)
		require.Len(t, books, 2)
		assert.Equal(t, "B2", books[1].Title)
	})

	t.Run("缺少字段返回400", func(t *testing.T) {
		svc, _ := newService(t, "A")
		d := draft("A")
		d.Author = ""

		_, err := svc.ReplaceBook(ctx, 0, d)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, book.MsgMissingAuthor, appErr.Message)
	})
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()

	t.Run("删除位置=id的元素,后续前移", func(t *testing.T) {
		svc, _ := newService(t, "A", "B", "C")
		require.NoError(t, svc.DeleteBook(ctx, 1))

		books, _ := svc.ListBooks(ctx)
		require.Len(t, books, 2)
		assert.Equal(t, "A", books[0].Title)
		assert.Equal(t, "C", books[1].Title)
	})

	t.Run("不存在返回404", func(t *testing.T) {
		svc, _ := newService(t, "A")
		assert.ErrorIs(t, svc.DeleteBook(ctx, 3), book.ErrBookNotFound)
	})

	t.Run("id与位置错位时按位置删除", func(t *testing.T) {
		svc, _ := newService(t, "A", "B", "C")
		require.NoError(t, svc.DeleteBook(ctx, 0))
		// 位置0=B(id 1), 位置1=C(id 2)

		// id=1存在,删除的是位置1的C
		require.NoError(t, svc.DeleteBook(ctx, 1))

		books, _ := svc.ListBooks(ctx)
		require.Len(t, books, 1)
		assert.Equal(t, "B", books[0].Title)
	})
}

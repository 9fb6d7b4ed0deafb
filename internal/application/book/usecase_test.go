package book_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookapi/internal/application/book"
	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/memory"
)

func strPtr(s string) *string { return &s }

func newService() book.Service {
	return book.NewService(memory.NewBookRepository())
}

func TestBookUseCases_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	create := appbook.NewCreateBooksUseCase(svc)
	list := appbook.NewListBooksUseCase(svc)
	get := appbook.NewGetBookUseCase(svc)
	update := appbook.NewUpdateBookUseCase(svc)
	replace := appbook.NewReplaceBookUseCase(svc)
	del := appbook.NewDeleteBookUseCase(svc)

	// 1. 批量创建
	created, err := create.Execute(ctx, appbook.CreateBooksRequest{Items: []appbook.DraftInput{
		{Title: "A", Author: "X", PublishedDate: "2020-01-02", Summary: "s"},
		{Title: "B", Author: "Y", PublishedDate: "2021-03-04", Summary: "t"},
	}})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, 0, created[0].ID)
	assert.Equal(t, 1, created[1].ID)

	// 2. 列表
	all, err := list.Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err := list.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// 3. 详情
	got, err := get.Execute(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Title)

	// 4. 部分更新
	updated, err := update.Execute(ctx, appbook.UpdateBookRequest{ID: 1, Title: strPtr("B2")})
	require.NoError(t, err)
	assert.Equal(t, "B2", updated.Title)
	assert.Equal(t, "Y", updated.Author)

	// 5. 替换
	replaced, err := replace.Execute(ctx, appbook.ReplaceBookRequest{ID: 0, Book: appbook.DraftInput{
		Title: "C", Author: "Z", PublishedDate: "2019-05-06", Summary: "u",
	}})
	require.NoError(t, err)
	assert.Equal(t, 0, replaced.ID)
	assert.Equal(t, "C", replaced.Title)

	// 6. 删除
	resp, err := del.Execute(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Book 0 deleted successfully", resp.Message)

	_, err = get.Execute(ctx, 0)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestCreateBooksUseCase_ValidationFailureStoresNothing(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	create := appbook.NewCreateBooksUseCase(svc)

	_, err := create.Execute(ctx, appbook.CreateBooksRequest{Items: []appbook.DraftInput{
		{Title: "A", Author: "X", PublishedDate: "2020-01-02", Summary: "s"},
		{Author: "Y", PublishedDate: "2021-03-04", Summary: "t"},
	}})
	require.Error(t, err)

	all, err := appbook.NewListBooksUseCase(svc).Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteBookUseCase_NotFound(t *testing.T) {
	_, err := appbook.NewDeleteBookUseCase(newService()).Execute(context.Background(), 7)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"参数错误", ErrCodeInvalidParams, http.StatusBadRequest},
		{"缺少字段", ErrCodeMissingField, http.StatusBadRequest},
		{"方法不支持仍返回400", ErrCodeMethodNotAllowed, http.StatusBadRequest},
		{"资源不存在", ErrCodeNotFound, http.StatusNotFound},
		{"存储冲突", ErrCodeConflict, http.StatusConflict},
		{"限流", ErrCodeRateLimited, http.StatusTooManyRequests},
		{"内部错误", ErrCodeInternal, http.StatusInternalServerError},
		{"非法错误码", 123, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.code, "x").HTTPStatus())
		})
	}
}

func TestAppError_IsComparesCode(t *testing.T) {
	err := fmt.Errorf("lookup: %w", Newf(ErrCodeNotFound, "Book %d not found", 3))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidBody))
}

func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		appErr := GetAppError(ErrNotFound)
		assert.Same(t, ErrNotFound, appErr)
	})

	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		cause := errors.New("boom")
		appErr := GetAppError(cause)

		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.Equal(t, InternalErrorMessage, appErr.Message)
		assert.ErrorIs(t, appErr, cause)
		assert.Contains(t, appErr.Error(), "boom")
	})
}

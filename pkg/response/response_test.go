package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/books/1", nil)
	return c, w
}

func TestError(t *testing.T) {
	t.Run("AppError按错误码映射状态码", func(t *testing.T) {
		c, w := newContext()
		Error(c, apperrors.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Resource Not Found"}`, w.Body.String())
		assert.True(t, c.IsAborted())
	})

	t.Run("未知错误返回500且不泄露原因", func(t *testing.T) {
		c, w := newContext()
		Error(c, errors.New("slice bounds out of range"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Internal Server Error Occurred"}`, w.Body.String())
	})
}

func TestErrorWithCode(t *testing.T) {
	c, w := newContext()
	ErrorWithCode(c, apperrors.ErrCodeMethodNotAllowed, "Method TRACE not allowed.")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Method TRACE not allowed."}`, w.Body.String())
}

func TestSuccessHelpers(t *testing.T) {
	c, w := newContext()
	Created(c, []string{"a"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `["a"]`, w.Body.String())

	c, w = newContext()
	Status(c, "success", "Book 2 deleted successfully")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","message":"Book 2 deleted successfully"}`, w.Body.String())
}

package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookapi/internal/application/book"
	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
	"github.com/xiebiao/bookapi/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase   *appbook.ListBooksUseCase
	createBooksUseCase *appbook.CreateBooksUseCase
	getBookUseCase     *appbook.GetBookUseCase
	updateBookUseCase  *appbook.UpdateBookUseCase
	replaceBookUseCase *appbook.ReplaceBookUseCase
	deleteBookUseCase  *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	createBooksUseCase *appbook.CreateBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	replaceBookUseCase *appbook.ReplaceBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:   listBooksUseCase,
		createBooksUseCase: createBooksUseCase,
		getBookUseCase:     getBookUseCase,
		updateBookUseCase:  updateBookUseCase,
		replaceBookUseCase: replaceBookUseCase,
		deleteBookUseCase:  deleteBookUseCase,
	}
}

// ListBooks 图书列表
// @Summary      List all books
// @Description  Returns every stored book. No pagination, filtering or sorting.
// @Tags         books
// @Produce      json
// @Success      200 {array}  dto.BookResponse
// @Failure      500 {object} response.ErrorBody
// @Router       /api/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	results, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewBookListResponse(results))
}

// CreateBooks 创建图书(单本或批量)
// @Summary      Create one or more books
// @Description  Accepts a single book object or an array of book objects. All entries are validated before any is stored.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        request body dto.BookRequest true "Book, or an array of books"
// @Success      201 {array}  dto.BookResponse
// @Failure      400 {object} response.ErrorBody "Missing field, invalid date or invalid body"
// @Failure      409 {object} response.ErrorBody "Book ID space exhausted"
// @Failure      500 {object} response.ErrorBody
// @Router       /api/books [post]
func (h *BookHandler) CreateBooks(c *gin.Context) {
	// 1. 读取并解析请求体
	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, apperrors.ErrInvalidBody)
		return
	}
	reqs, err := dto.DecodeBookRequests(body)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 2. 调用应用层用例
	items := make([]appbook.DraftInput, len(reqs))
	for i, req := range reqs {
		items[i] = req.ToInput()
	}
	results, err := h.createBooksUseCase.Execute(c.Request.Context(), appbook.CreateBooksRequest{Items: items})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 单本创建同样返回数组
	response.Created(c, dto.NewBookListResponse(results))
}

// GetBook 图书详情
// @Summary      Get a book
// @Tags         books
// @Produce      json
// @Param        id  path     int true "Book ID"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "Invalid book ID"
// @Failure      404 {object} response.ErrorBody "Resource Not Found"
// @Router       /api/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewBookResponse(result))
}

// UpdateBook 部分更新图书
// @Summary      Partially update a book
// @Description  Fields that are absent or null keep their current value. The id in the body is ignored.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id      path int                  true "Book ID"
// @Param        request body dto.BookPatchRequest true "Fields to update"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "Invalid id, body or date"
// @Failure      404 {object} response.ErrorBody "Resource Not Found"
// @Router       /api/books/{id} [patch]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, apperrors.ErrInvalidBody)
		return
	}
	req, err := dto.DecodeBookPatchRequest(body)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:            id,
		Title:         req.Title,
		Author:        req.Author,
		PublishedDate: req.PublishedDate,
		Summary:       req.Summary,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewBookResponse(result))
}

// ReplaceBook 整体替换图书
// @Summary      Replace or create a book
// @Description  Writes the book at the given id, overwriting or extending the store. Never returns 404.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id      path int             true "Book ID"
// @Param        request body dto.BookRequest true "Complete book"
// @Success      201 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "Invalid id, missing field or invalid date"
// @Router       /api/books/{id} [put]
func (h *BookHandler) ReplaceBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, apperrors.ErrInvalidBody)
		return
	}
	req, err := dto.DecodeBookRequest(body)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.replaceBookUseCase.Execute(c.Request.Context(), appbook.ReplaceBookRequest{
		ID:   id,
		Book: req.ToInput(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewBookResponse(result))
}

// DeleteBook 删除图书
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        id  path     int true "Book ID"
// @Success      200 {object} response.StatusBody
// @Failure      400 {object} response.ErrorBody "Invalid book ID"
// @Failure      404 {object} response.ErrorBody "Resource Not Found"
// @Router       /api/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.deleteBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Status(c, result.Status, result.Message)
}

// Health 健康检查
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Router       /health [get]
func (h *BookHandler) Health(c *gin.Context) {
	count, err := h.listBooksUseCase.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.HealthResponse{Status: "ok", Books: count})
}

// MethodNotAllowed 不支持的HTTP方法
// 保持400状态码,与已有客户端的约定一致
func MethodNotAllowed(c *gin.Context) {
	response.ErrorWithCode(c, apperrors.ErrCodeMethodNotAllowed,
		fmt.Sprintf("Method %s not allowed.", c.Request.Method))
}

// parseID 解析路径参数id,必须是非负十进制整数
func parseID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, book.ErrInvalidBookID
	}
	return id, nil
}

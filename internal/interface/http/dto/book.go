package dto

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"

	appbook "github.com/xiebiao/bookapi/internal/application/book"
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

// json 与encoding/json行为一致的jsoniter配置
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BookRequest HTTP图书请求(创建、整体替换)
// 必填校验在领域层完成,这里不加binding tag,缺失字段保持空串
type BookRequest struct {
	Title         string `json:"title" example:"The Go Programming Language"`
	Author        string `json:"author" example:"Alan A. A. Donovan"`
	PublishedDate string `json:"publishedDate" example:"2015-10-26"`
	Summary       string `json:"summary" example:"The authoritative resource to writing clear and idiomatic Go."`
}

// ToInput 转换为用例输入
func (r BookRequest) ToInput() appbook.DraftInput {
	return appbook.DraftInput{
		Title:         r.Title,
		Author:        r.Author,
		PublishedDate: r.PublishedDate,
		Summary:       r.Summary,
	}
}

// BookPatchRequest HTTP图书部分更新请求
// 字段缺失或为null时保持原值;id字段即使出现也被忽略
type BookPatchRequest struct {
	Title         *string `json:"title,omitempty" example:"The Go Programming Language, 2nd Edition"`
	Author        *string `json:"author,omitempty" example:"Alan A. A. Donovan"`
	PublishedDate *string `json:"publishedDate,omitempty" example:"2024-01-15"`
	Summary       *string `json:"summary,omitempty" example:"Updated summary."`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID            int    `json:"id" example:"0"`
	Title         string `json:"title" example:"The Go Programming Language"`
	Author        string `json:"author" example:"Alan A. A. Donovan"`
	PublishedDate string `json:"publishedDate" example:"2015-10-26"`
	Summary       string `json:"summary" example:"The authoritative resource to writing clear and idiomatic Go."`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Books  int    `json:"books" example:"3"`
}

// NewBookResponse 用例输出 → HTTP响应
func NewBookResponse(r *appbook.BookResult) BookResponse {
	return BookResponse{
		ID:            r.ID,
		Title:         r.Title,
		Author:        r.Author,
		PublishedDate: r.PublishedDate,
		Summary:       r.Summary,
	}
}

// NewBookListResponse 列表转换,空列表返回[]而不是null
func NewBookListResponse(results []appbook.BookResult) []BookResponse {
	list := make([]BookResponse, 0, len(results))
	for i := range results {
		list = append(list, NewBookResponse(&results[i]))
	}
	return list
}

// DecodeBookRequests 解析创建请求体
// 请求体可以是单个对象或对象数组,返回值统一为切片
// 其他JSON类型或格式错误返回ErrInvalidBody
func DecodeBookRequests(body []byte) ([]BookRequest, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, apperrors.ErrInvalidBody
	}

	switch trimmed[0] {
	case '[':
		var raws []bookFields
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, apperrors.ErrInvalidBody
		}
		reqs := make([]BookRequest, 0, len(raws))
		for _, raw := range raws {
			req, err := raw.toRequest()
			if err != nil {
				return nil, err
			}
			reqs = append(reqs, req)
		}
		return reqs, nil
	case '{':
		var raw bookFields
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, apperrors.ErrInvalidBody
		}
		req, err := raw.toRequest()
		if err != nil {
			return nil, err
		}
		return []BookRequest{req}, nil
	default:
		return nil, apperrors.ErrInvalidBody
	}
}

// DecodeBookRequest 解析单个对象请求体(整体替换)
func DecodeBookRequest(body []byte) (BookRequest, error) {
	var raw bookFields
	if err := decodeObject(body, &raw); err != nil {
		return BookRequest{}, err
	}
	return raw.toRequest()
}

// DecodeBookPatchRequest 解析部分更新请求体
func DecodeBookPatchRequest(body []byte) (BookPatchRequest, error) {
	var raw bookFields
	if err := decodeObject(body, &raw); err != nil {
		return BookPatchRequest{}, err
	}

	var req BookPatchRequest
	for key, dst := range map[string]**string{
		"title":         &req.Title,
		"author":        &req.Author,
		"publishedDate": &req.PublishedDate,
		"summary":       &req.Summary,
	} {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		text, err := fieldText(v)
		if err != nil {
			return BookPatchRequest{}, err
		}
		*dst = &text
	}
	return req, nil
}

func decodeObject(body []byte, v interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return apperrors.ErrInvalidBody
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return apperrors.ErrInvalidBody
	}
	return nil
}

// bookFields 请求体对象的原始字段,值可以是任意JSON类型
type bookFields map[string]interface{}

func (f bookFields) toRequest() (BookRequest, error) {
	var req BookRequest
	for key, dst := range map[string]*string{
		"title":         &req.Title,
		"author":        &req.Author,
		"publishedDate": &req.PublishedDate,
		"summary":       &req.Summary,
	} {
		text, err := fieldText(f[key])
		if err != nil {
			return BookRequest{}, err
		}
		*dst = text
	}
	return req, nil
}

// fieldText 将JSON标量转为字符串
// null、false、0转为空串(与缺失字段一样),对象和数组返回ErrInvalidBody
func fieldText(v interface{}) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case bool:
		if !x {
			return "", nil
		}
	case float64:
		if x == 0 {
			return "", nil
		}
	}

	text, err := cast.ToStringE(v)
	if err != nil {
		return "", apperrors.ErrInvalidBody
	}
	return text, nil
}

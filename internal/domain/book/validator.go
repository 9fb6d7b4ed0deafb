package book

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// missingFieldMessages Draft字段名 → 提示信息
var missingFieldMessages = map[string]string{
	"Title":         MsgMissingTitle,
	"Author":        MsgMissingAuthor,
	"PublishedDate": MsgMissingPublishedDate,
	"Summary":       MsgMissingSummary,
}

// VerifyResult 校验结果
type VerifyResult struct {
	Result  bool
	Message string
}

// VerifyFields 校验必填字段
// 业务规则:
// - 按title、author、publishedDate、summary顺序检查,遇到第一个空字段即返回
// - 只检查非空,不检查日期格式和内容
func VerifyFields(d Draft) VerifyResult {
	err := validate.Struct(d)
	if err == nil {
		return VerifyResult{Result: true}
	}

	// ValidationErrors按结构体字段声明顺序排列,第一个即为最先缺失的字段
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := missingFieldMessages[verrs[0].StructField()]; ok {
			return VerifyResult{Message: msg}
		}
	}
	return VerifyResult{Message: err.Error()}
}

// Err 转换为领域错误,校验通过时返回nil
func (r VerifyResult) Err() error {
	if r.Result {
		return nil
	}
	return newMissingFieldError(r.Message)
}

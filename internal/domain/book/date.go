package book

import (
	"strings"

	"github.com/spf13/cast"
)

// DateLayout 出版日期的规范格式
const DateLayout = "2006-01-02"

// NormalizeDate 将出版日期规范化为YYYY-MM-DD
// 支持RFC3339、YYYY-MM-DD、RFC1123、"02 Jan 2006"等常见格式;
// 带时区的时间按其自身时区取日期
func NormalizeDate(raw string) (string, error) {
	t, err := cast.ToTimeE(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidPublishedDate
	}
	return t.Format(DateLayout), nil
}

package book

// Book 图书实体
// 设计说明:
// 1. ID在创建时取存储中的位置序号(当前长度),不是独立于位置的稳定主键
// 2. PublishedDate保存规范化后的日期字符串(YYYY-MM-DD)
type Book struct {
	ID            int
	Title         string
	Author        string
	PublishedDate string
	Summary       string
}

// Draft 待校验的图书数据(创建、整体替换)
// validate tag的声明顺序即校验顺序: title → author → publishedDate → summary
type Draft struct {
	Title         string `validate:"required"`
	Author        string `validate:"required"`
	PublishedDate string `validate:"required"`
	Summary       string `validate:"required"`
}

// Patch 部分更新数据,nil表示不修改该字段
type Patch struct {
	Title         *string
	Author        *string
	PublishedDate *string
	Summary       *string
}

// NewBook 由已校验的Draft创建图书
// publishedDate需由调用方先规范化
func NewBook(id int, d Draft, publishedDate string) *Book {
	return &Book{
		ID:            id,
		Title:         d.Title,
		Author:        d.Author,
		PublishedDate: publishedDate,
		Summary:       d.Summary,
	}
}

// Merge 浅合并: 返回以p中非nil字段覆盖后的副本,不修改b
func (b *Book) Merge(p Patch) *Book {
	merged := *b
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.Author != nil {
		merged.Author = *p.Author
	}
	if p.PublishedDate != nil {
		merged.PublishedDate = *p.PublishedDate
	}
	if p.Summary != nil {
		merged.Summary = *p.Summary
	}
	return &merged
}

// Clone 返回副本,避免调用方修改存储中的数据
func (b *Book) Clone() *Book {
	c := *b
	return &c
}

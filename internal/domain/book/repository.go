package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 存储是一个有序序列,每个位置称为槽位(slot)
// 2. 在末尾之后的位置写入会扩展序列,中间跳过的槽位为空
// 3. 空槽位不出现在List结果中,也不会被FindByID命中,但计入Len
type Repository interface {
	// List 按位置顺序返回所有非空图书
	List(ctx context.Context) ([]*Book, error)

	// Len 返回槽位数(含空槽位)
	Len(ctx context.Context) (int, error)

	// Count 返回非空图书数量
	Count(ctx context.Context) (int, error)

	// Append 追加图书,ID依次取追加时的位置(当前长度+偏移)
	// 返回带ID的副本
	Append(ctx context.Context, books []*Book) ([]*Book, error)

	// FindByID 按ID字段的值查找(不是按位置)
	// 不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id int) (*Book, error)

	// Put 将图书写入指定位置(覆盖或扩展)
	Put(ctx context.Context, position int, book *Book) error

	// RemoveAt 删除指定位置的槽位,后续槽位前移一位
	// 位置超出范围时不做任何操作
	RemoveAt(ctx context.Context, position int) error
}

package memory

import (
	"context"
	"math"
	"slices"
	"sync"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/pkg/metrics"
)

// bookRepository 图书仓储实现(进程内存)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 稀疏存储: books只保存非空槽位(位置 → 图书),未出现的位置即空槽位
// 3. last记录最大位置(空仓储为-1),序列长度为last+1,写入很大的位置不会分配中间槽位
// 4. 读写都返回副本,调用方修改不会影响存储
// 5. 进程重启后数据丢失
type bookRepository struct {
	mu    sync.RWMutex
	books map[int]*book.Book
	last  int
}

// NewBookRepository 创建内存图书仓储
func NewBookRepository() book.Repository {
	return &bookRepository{books: make(map[int]*book.Book), last: -1}
}

// NewBookRepositoryWithBooks 使用初始数据创建仓储,ID按位置重新分配
func NewBookRepositoryWithBooks(books []*book.Book) book.Repository {
	r := &bookRepository{books: make(map[int]*book.Book, len(books)), last: -1}
	for i, b := range books {
		c := b.Clone()
		c.ID = i
		r.books[i] = c
		r.last = i
	}
	r.updateGauge()
	return r
}

// List 按位置顺序返回所有非空图书
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]*book.Book, 0, len(r.books))
	for _, pos := range r.positionsLocked() {
		books = append(books, r.books[pos].Clone())
	}
	return books, nil
}

// Len 槽位数,最大位置为math.MaxInt时截断为math.MaxInt
func (r *bookRepository) Len(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.last == math.MaxInt {
		return math.MaxInt, nil
	}
	return r.last + 1, nil
}

// Count 非空图书数量
func (r *bookRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books), nil
}

// Append 追加图书并分配ID
func (r *bookRepository) Append(ctx context.Context, books []*book.Book) ([]*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 新位置为last+1 ... last+len(books),不能超过math.MaxInt
	if r.last >= 0 && len(books) > math.MaxInt-r.last {
		return nil, book.ErrIDSpaceExhausted
	}

	created := make([]*book.Book, 0, len(books))
	for _, b := range books {
		r.last++
		c := b.Clone()
		c.ID = r.last
		r.books[r.last] = c
		created = append(created, c.Clone())
	}

	r.updateGaugeLocked()
	return created, nil
}

// FindByID 按ID字段的值查找,多个命中时返回位置最靠前的
func (r *bookRepository) FindByID(ctx context.Context, id int) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pos := range r.positionsLocked() {
		if b := r.books[pos]; b.ID == id {
			return b.Clone(), nil
		}
	}
	return nil, book.ErrBookNotFound
}

// Put 写入指定位置,位置超出当前长度时扩展序列
func (r *bookRepository) Put(ctx context.Context, position int, b *book.Book) error {
	if position < 0 {
		return book.ErrInvalidBookID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.books[position] = b.Clone()
	if position > r.last {
		r.last = position
	}

	r.updateGaugeLocked()
	return nil
}

// RemoveAt 删除指定位置的槽位,之后的槽位整体前移一位
func (r *bookRepository) RemoveAt(ctx context.Context, position int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if position < 0 || position > r.last {
		return nil
	}

	shifted := make(map[int]*book.Book, len(r.books))
	for pos, b := range r.books {
		switch {
		case pos < position:
			shifted[pos] = b
		case pos > position:
			shifted[pos-1] = b
		}
	}
	r.books = shifted
	r.last--

	r.updateGaugeLocked()
	return nil
}

// positionsLocked 非空槽位的位置,升序
func (r *bookRepository) positionsLocked() []int {
	positions := make([]int, 0, len(r.books))
	for pos := range r.books {
		positions = append(positions, pos)
	}
	slices.Sort(positions)
	return positions
}

func (r *bookRepository) updateGauge() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.updateGaugeLocked()
}

func (r *bookRepository) updateGaugeLocked() {
	metrics.SetGauge(metrics.BooksStored, float64(len(r.books)))
}

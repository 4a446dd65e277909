package instance

import (
	"fmt"

	"roughset-reduct/utils"
)

// AttributeIterator 属性遍历器。所有的划分算法都只通过它访问属性，
// 这样调用方可以传固定的数组，也可以传一段会被重排的属性区间。
type AttributeIterator interface {
	Reset()            // Reset 回到开头
	Skip(n int) error  // Skip 跳过接下来的n个属性
	HasNext() bool     // HasNext 是否还有属性
	Next() int         // Next 取下一个属性
	Size() int         // Size 属性总数
	CurrentIndex() int // CurrentIndex 下一次Next将返回的位置
}

// ArrayIterator 基于切片的遍历器，reverse为true时从尾往前遍历。
// 只读，不会修改底层切片。
type ArrayIterator struct {
	attrs   []int
	cursor  int
	reverse bool
}

func NewArrayIterator(attrs []int) *ArrayIterator {
	return &ArrayIterator{attrs: attrs}
}

func NewReverseIterator(attrs []int) *ArrayIterator {
	return &ArrayIterator{attrs: attrs, reverse: true}
}

func (it *ArrayIterator) Reset() {
	(*it).cursor = 0
}

func (it *ArrayIterator) Skip(n int) error {
	if n < 0 || (*it).cursor+n > len((*it).attrs) {
		return fmt.Errorf("%w: skip %d with %d attributes left", utils.ErrPrecondition, n, len((*it).attrs)-(*it).cursor)
	}
	(*it).cursor += n
	return nil
}

func (it *ArrayIterator) HasNext() bool {
	return (*it).cursor < len((*it).attrs)
}

func (it *ArrayIterator) Next() int {
	var attr int
	if (*it).reverse {
		attr = (*it).attrs[len((*it).attrs)-1-(*it).cursor]
	} else {
		attr = (*it).attrs[(*it).cursor]
	}
	(*it).cursor++
	return attr
}

func (it *ArrayIterator) Size() int {
	return len((*it).attrs)
}

func (it *ArrayIterator) CurrentIndex() int {
	return (*it).cursor
}

// JoinedIterator 把多段属性串起来遍历，不拷贝，用于"除了正在检查的属性以外的全部属性"这种视图
type JoinedIterator struct {
	parts []AttributeIterator
	part  int
	index int
}

func NewJoinedIterator(parts ...AttributeIterator) *JoinedIterator {
	return &JoinedIterator{parts: parts}
}

func (it *JoinedIterator) Reset() {
	for _, p := range (*it).parts {
		p.Reset()
	}
	(*it).part, (*it).index = 0, 0
}

func (it *JoinedIterator) Skip(n int) error {
	if n < 0 || (*it).index+n > it.Size() {
		return fmt.Errorf("%w: skip %d with %d attributes left", utils.ErrPrecondition, n, it.Size()-(*it).index)
	}
	for i := 0; i < n; i++ {
		it.Next()
	}
	return nil
}

func (it *JoinedIterator) HasNext() bool {
	for (*it).part < len((*it).parts) {
		if (*it).parts[(*it).part].HasNext() {
			return true
		}
		(*it).part++
	}
	return false
}

func (it *JoinedIterator) Next() int {
	// 先调HasNext把part移到有数据的那一段
	it.HasNext()
	(*it).index++
	return (*it).parts[(*it).part].Next()
}

func (it *JoinedIterator) Size() int {
	size := 0
	for _, p := range (*it).parts {
		size += p.Size()
	}
	return size
}

func (it *JoinedIterator) CurrentIndex() int {
	return (*it).index
}

// Collect 把遍历器剩下的属性收集成切片，遍历器会被Reset
func Collect(it AttributeIterator) []int {
	it.Reset()
	attrs := make([]int, 0, it.Size())
	for it.HasNext() {
		attrs = append(attrs, it.Next())
	}
	it.Reset()
	return attrs
}

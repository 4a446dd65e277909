package strategy

import (
	"fmt"

	"roughset-reduct/reduct/instance"
	"roughset-reduct/utils"
)

// lazyState 反向策略的检查组是用到时才拉的
type lazyState int8

const (
	uninitialized lazyState = iota
	ready
)

// ReverseStrategy 从属性数组尾部往前取检查组。
// 只问 Left/HasNext/Total 时不会计算检查组；ExaminingAttr 这类依赖检查组的查询在初始化前直接报错。
type ReverseStrategy struct {
	state processState
	lazy  lazyState
}

func NewReverse(attrs []int, capacityFn CapacityFunc) *ReverseStrategy {
	return &ReverseStrategy{state: newProcessState(attrs, capacityFn, true), lazy: uninitialized}
}

// ensure 需要检查组的地方先初始化
func (r *ReverseStrategy) ensure() {
	if r.lazy == uninitialized {
		r.state.pullBatch()
		r.lazy = ready
	}
}

func (r *ReverseStrategy) initialized() error {
	if r.lazy == uninitialized {
		return fmt.Errorf("%w: examining batch of reverse strategy is not initialized", utils.ErrNotInitialized)
	}
	return nil
}

// Initialized 检查组是否已经拉好
func (r *ReverseStrategy) Initialized() bool {
	return r.lazy == ready
}

func (r *ReverseStrategy) Total() int {
	return r.state.total()
}

func (r *ReverseStrategy) Left() int {
	return r.state.left()
}

func (r *ReverseStrategy) HasNext() bool {
	return r.state.left() > 0
}

func (r *ReverseStrategy) ProcessedCount() int {
	return r.state.processed
}

func (r *ReverseStrategy) ExchangedCount() int {
	return r.state.exchanged
}

func (r *ReverseStrategy) BatchCapacity() int {
	r.ensure()
	return r.state.capacity
}

func (r *ReverseStrategy) ExaminingAttr() (int, error) {
	if err := r.initialized(); err != nil {
		return 0, err
	}
	return r.state.examiningAttr()
}

func (r *ReverseStrategy) ExaminingBatch() instance.AttributeIterator {
	r.ensure()
	p := r.state.processed
	if r.state.capacity == 0 {
		return r.state.view(p, p)
	}
	return r.state.view(p+1, p+r.state.capacity)
}

func (r *ReverseStrategy) ExaminingGroup() instance.AttributeIterator {
	r.ensure()
	p := r.state.processed
	return r.state.view(p, p+r.state.capacity)
}

func (r *ReverseStrategy) HeldAttrs() instance.AttributeIterator {
	r.ensure()
	return r.state.view(r.state.heldStart(), r.state.total())
}

func (r *ReverseStrategy) ProcessedAttrs() instance.AttributeIterator {
	return r.state.view(0, r.state.processed)
}

func (r *ReverseStrategy) HasNextExamAttribute() bool {
	return r.lazy == ready && r.state.hasNextExamAttribute()
}

func (r *ReverseStrategy) UpdateExamAttribute() error {
	if err := r.initialized(); err != nil {
		return err
	}
	return r.state.updateExamAttribute()
}

func (r *ReverseStrategy) SkipExamAttributes(n int) error {
	if err := r.initialized(); err != nil {
		return err
	}
	return r.state.skipExamAttributes(n)
}

func (r *ReverseStrategy) HasNextInLine() bool {
	r.ensure()
	return r.state.hasNextInLine()
}

func (r *ReverseStrategy) UpdateInLineAttrs() error {
	r.ensure()
	return r.state.updateInLineAttrs()
}

func (r *ReverseStrategy) ResetInLine() {
	r.state.resetInLine()
	r.lazy = ready
}

func (r *ReverseStrategy) Promote(attr int) error {
	r.ensure()
	return r.state.promote(attr)
}

// ProcessExamining 处理完当前组后，下一组同样等到用到时再拉
func (r *ReverseStrategy) ProcessExamining() error {
	r.ensure()
	if err := r.state.processExamining(); err != nil {
		return err
	}
	r.lazy = uninitialized
	return nil
}

func (r *ReverseStrategy) Clone() AttributeProcessStrategy {
	return &ReverseStrategy{state: r.state.clone(), lazy: r.lazy}
}

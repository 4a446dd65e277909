package strategy

import (
	"roughset-reduct/reduct/instance"
)

// ForwardStrategy 从属性数组头部开始取检查组，构造时就拉好第一组
type ForwardStrategy struct {
	state processState
}

func NewForward(attrs []int, capacityFn CapacityFunc) *ForwardStrategy {
	s := &ForwardStrategy{state: newProcessState(attrs, capacityFn, false)}
	s.state.pullBatch()
	return s
}

func (f *ForwardStrategy) Total() int {
	return f.state.total()
}

func (f *ForwardStrategy) Left() int {
	return f.state.left()
}

func (f *ForwardStrategy) HasNext() bool {
	return f.state.left() > 0
}

func (f *ForwardStrategy) ProcessedCount() int {
	return f.state.processed
}

func (f *ForwardStrategy) ExchangedCount() int {
	return f.state.exchanged
}

func (f *ForwardStrategy) BatchCapacity() int {
	return f.state.capacity
}

func (f *ForwardStrategy) ExaminingAttr() (int, error) {
	return f.state.examiningAttr()
}

func (f *ForwardStrategy) ExaminingBatch() instance.AttributeIterator {
	p := f.state.processed
	if f.state.capacity == 0 {
		return f.state.view(p, p)
	}
	return f.state.view(p+1, p+f.state.capacity)
}

func (f *ForwardStrategy) ExaminingGroup() instance.AttributeIterator {
	p := f.state.processed
	return f.state.view(p, p+f.state.capacity)
}

func (f *ForwardStrategy) HeldAttrs() instance.AttributeIterator {
	return f.state.view(f.state.heldStart(), f.state.total())
}

func (f *ForwardStrategy) ProcessedAttrs() instance.AttributeIterator {
	return f.state.view(0, f.state.processed)
}

func (f *ForwardStrategy) HasNextExamAttribute() bool {
	return f.state.hasNextExamAttribute()
}

func (f *ForwardStrategy) UpdateExamAttribute() error {
	return f.state.updateExamAttribute()
}

func (f *ForwardStrategy) SkipExamAttributes(n int) error {
	return f.state.skipExamAttributes(n)
}

func (f *ForwardStrategy) HasNextInLine() bool {
	return f.state.hasNextInLine()
}

func (f *ForwardStrategy) UpdateInLineAttrs() error {
	return f.state.updateInLineAttrs()
}

func (f *ForwardStrategy) ResetInLine() {
	f.state.resetInLine()
}

func (f *ForwardStrategy) Promote(attr int) error {
	return f.state.promote(attr)
}

func (f *ForwardStrategy) ProcessExamining() error {
	return f.state.processExamining()
}

func (f *ForwardStrategy) Clone() AttributeProcessStrategy {
	return &ForwardStrategy{state: f.state.clone()}
}

/*
	属性处理策略。把全部属性放在一块自己持有的数组里，逻辑上分成三段：
		[ 已处理 | 正在检查的一组(第一个位置是examiningAttr，其余是examiningBatch) | 挂起(held) ]
	检查组与挂起区之间、组内examiningAttr与其他位置之间的交换都只是数组下标的互换，不重新分配数组。
	正向策略从数组头开始取，反向策略从数组尾开始取，逻辑位置到数组下标的映射由 slot 完成。
	注意：非线程安全，每个独立的搜索候选都要有自己的一份。
*/

package strategy

import (
	"fmt"

	"golang.org/x/exp/slices"
	"roughset-reduct/reduct/instance"
	"roughset-reduct/utils"
)

type AttributeProcessStrategy interface {
	Total() int          // Total 属性总数
	Left() int           // Left 还没处理的属性数，等于检查组加挂起区
	HasNext() bool       // HasNext 还有没有一组可以检查
	ProcessedCount() int // ProcessedCount 已处理的属性数
	ExchangedCount() int // ExchangedCount 组内已经轮换过几次
	BatchCapacity() int  // BatchCapacity 当前检查组的大小，含examiningAttr

	ExaminingAttr() (int, error)                // ExaminingAttr 组内当前轮到的那一个属性
	ExaminingBatch() instance.AttributeIterator // ExaminingBatch 组内除了examiningAttr以外的属性
	ExaminingGroup() instance.AttributeIterator // ExaminingGroup 整个检查组
	HeldAttrs() instance.AttributeIterator      // HeldAttrs 挂起区
	ProcessedAttrs() instance.AttributeIterator // ProcessedAttrs 已处理的属性

	HasNextExamAttribute() bool     // HasNextExamAttribute 组内是否还有属性没轮到
	UpdateExamAttribute() error     // UpdateExamAttribute 轮到组内下一个属性
	SkipExamAttributes(n int) error // SkipExamAttributes 连续轮换n次

	HasNextInLine() bool      // HasNextInLine 本轮挂起区里是否还有没被拉进检查组的属性
	UpdateInLineAttrs() error // UpdateInLineAttrs 检查组换回挂起区，再拉一组新的
	ResetInLine()             // ResetInLine 开始新的一轮
	Promote(attr int) error   // Promote 把挂起区或组内的某个属性换到examiningAttr的位置

	ProcessExamining() error // ProcessExamining 当前检查组全部标记为已处理，取下一组

	Clone() AttributeProcessStrategy
}

// processState 正反两种策略共用的状态，所有的下标都是逻辑位置
type processState struct {
	arena      []int
	reverse    bool
	processed  int
	capacity   int // capacity 当前检查组大小，0表示已经全部处理完或者还没初始化
	exchanged  int
	inLine     int // inLine 挂起区内下一次要拉进检查组的偏移
	capacityFn CapacityFunc
}

func newProcessState(attrs []int, capacityFn CapacityFunc, reverse bool) processState {
	if capacityFn == nil {
		capacityFn = SqrtCapacity
	}
	return processState{
		arena:      slices.Clone(attrs),
		reverse:    reverse,
		capacityFn: capacityFn,
	}
}

func (s *processState) total() int {
	return len((*s).arena)
}

// slot 逻辑位置到数组下标
func (s *processState) slot(pos int) int {
	if (*s).reverse {
		return len((*s).arena) - 1 - pos
	}
	return pos
}

func (s *processState) swap(a, b int) {
	i, j := s.slot(a), s.slot(b)
	(*s).arena[i], (*s).arena[j] = (*s).arena[j], (*s).arena[i]
}

// view 逻辑区间[from, to)的只读视图，遍历顺序就是逻辑顺序
func (s *processState) view(from, to int) instance.AttributeIterator {
	if to < from {
		to = from
	}
	if (*s).reverse {
		n := len((*s).arena)
		return instance.NewReverseIterator((*s).arena[n-to : n-from])
	}
	return instance.NewArrayIterator((*s).arena[from:to])
}

func (s *processState) left() int {
	return len((*s).arena) - (*s).processed
}

func (s *processState) heldStart() int {
	return (*s).processed + (*s).capacity
}

func (s *processState) heldLen() int {
	return len((*s).arena) - s.heldStart()
}

// pullBatch 按剩余属性数重新计算检查组大小
func (s *processState) pullBatch() {
	(*s).capacity = clampCapacity((*s).capacityFn, s.left())
	(*s).exchanged = 0
	(*s).inLine = 0
}

func (s *processState) examiningAttr() (int, error) {
	if (*s).capacity == 0 {
		return 0, fmt.Errorf("%w: no attribute left to examine", utils.ErrPrecondition)
	}
	return (*s).arena[s.slot((*s).processed)], nil
}

func (s *processState) hasNextExamAttribute() bool {
	return (*s).exchanged < (*s).capacity-1
}

// updateExamAttribute examiningAttr的位置依次与组内其余位置交换，
// 交换k次后轮到组内原来的第k个属性，其余属性仍然留在组内
func (s *processState) updateExamAttribute() error {
	if !s.hasNextExamAttribute() {
		return fmt.Errorf("%w: exchanged %d of batch capacity %d", utils.ErrPrecondition, (*s).exchanged, (*s).capacity)
	}
	s.swap((*s).processed, (*s).processed+1+(*s).exchanged)
	(*s).exchanged++
	return nil
}

func (s *processState) skipExamAttributes(n int) error {
	remaining := (*s).capacity - 1 - (*s).exchanged
	if n < 0 || n > remaining {
		return fmt.Errorf("%w: skip %d exceeds remaining batch capacity %d", utils.ErrPrecondition, n, remaining)
	}
	for i := 0; i < n; i++ {
		if err := s.updateExamAttribute(); err != nil {
			return err
		}
	}
	return nil
}

func (s *processState) hasNextInLine() bool {
	return (*s).capacity > 0 && (*s).inLine < s.heldLen()
}

// updateInLineAttrs 检查组与挂起区中inLine处的一段互换，换回去的属性落在游标之前，本轮不会再被拉出来。
// 挂起区最后不足一组时，只换回同样多的属性，检查组随之变小。
func (s *processState) updateInLineAttrs() error {
	if !s.hasNextInLine() {
		return fmt.Errorf("%w: no held attribute left in this round", utils.ErrPrecondition)
	}
	pull := (*s).capacity
	if rest := s.heldLen() - (*s).inLine; rest < pull {
		pull = rest
	}
	from := s.heldStart() + (*s).inLine
	for i := 0; i < pull; i++ {
		s.swap((*s).processed+i, from+i)
	}
	if pull < (*s).capacity {
		(*s).capacity = pull
		(*s).inLine = s.heldLen()
	} else {
		(*s).inLine += pull
	}
	(*s).exchanged = 0
	return nil
}

// resetInLine 新的一轮按剩余属性数重新计算检查组大小
func (s *processState) resetInLine() {
	s.pullBatch()
}

func (s *processState) promote(attr int) error {
	if (*s).capacity == 0 {
		return fmt.Errorf("%w: no attribute left to examine", utils.ErrPrecondition)
	}
	for pos := (*s).processed; pos < len((*s).arena); pos++ {
		if (*s).arena[s.slot(pos)] == attr {
			s.swap((*s).processed, pos)
			(*s).exchanged = 0
			return nil
		}
	}
	return fmt.Errorf("%w: attribute %d is not waiting to be processed", utils.ErrPrecondition, attr)
}

func (s *processState) processExamining() error {
	if (*s).capacity == 0 {
		return fmt.Errorf("%w: no attribute left to process", utils.ErrPrecondition)
	}
	(*s).processed += (*s).capacity
	s.pullBatch()
	return nil
}

func (s *processState) clone() processState {
	c := *s
	c.arena = slices.Clone((*s).arena)
	return c
}

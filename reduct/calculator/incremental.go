package calculator

import (
	"fmt"

	"golang.org/x/exp/slices"
	"roughset-reduct/reduct/equivalence"
	"roughset-reduct/reduct/instance"
	"roughset-reduct/reduct/partition"
	"roughset-reduct/reduct/strategy"
	"roughset-reduct/rock-share/global/enum"
	"roughset-reduct/utils"
)

// IncrementalCalculator 保存已处理属性划分出的边界聚合，计算时只用新加的属性去细分边界。
// 和策略配合使用：策略的已处理区就是这里的partitionAttrs，两者不同步时直接报错。
// 非线程安全，并行评估时每个协程用 Clone 出来的一份。
type IncrementalCalculator struct {
	universeSize   int
	measure        enum.Measure
	boundary       []equivalence.Aggregate
	counted        int // counted 已处理属性下计入依赖度的实例数
	partitionAttrs []int
	value          float64
}

func NewIncremental(aggregates []equivalence.Aggregate, universeSize int, measure enum.Measure) (*IncrementalCalculator, error) {
	c := &IncrementalCalculator{universeSize: universeSize, measure: measure}
	for _, agg := range aggregates {
		if agg.Type().Resolved() {
			(*c).counted += countOf(agg, measure)
		} else {
			(*c).boundary = append((*c).boundary, agg)
		}
	}
	value, err := degree((*c).counted, universeSize)
	if err != nil {
		return nil, err
	}
	(*c).value = value
	return c, nil
}

func (c *IncrementalCalculator) checkSync(s strategy.AttributeProcessStrategy) error {
	if s.ProcessedCount() != len((*c).partitionAttrs) {
		return fmt.Errorf("%w: calculator partitioned by %d attributes but strategy processed %d",
			utils.ErrPrecondition, len((*c).partitionAttrs), s.ProcessedCount())
	}
	return nil
}

// refine 用batch细分边界，返回细分结果和细分后的计数
func (c *IncrementalCalculator) refine(batch instance.AttributeIterator) (*partition.Result, int) {
	result := partition.Incremental((*c).boundary, batch)
	counted := (*c).counted
	for _, agg := range result.Resolved() {
		counted += countOf(agg, (*c).measure)
	}
	return result, counted
}

// Calculate 已处理属性加上策略当前的检查组的依赖度，不改变计算器的状态
func (c *IncrementalCalculator) Calculate(s strategy.AttributeProcessStrategy) (float64, error) {
	if err := c.checkSync(s); err != nil {
		return 0, err
	}
	return c.CalculateBatch(s.ExaminingGroup())
}

// CalculateBatch 已处理属性加上batch的依赖度
func (c *IncrementalCalculator) CalculateBatch(batch instance.AttributeIterator) (float64, error) {
	_, counted := c.refine(batch)
	value, err := degree(counted, (*c).universeSize)
	if err != nil {
		return 0, err
	}
	(*c).value = value
	return value, nil
}

// Commit 检查组并入已处理的划分，同时推进策略
func (c *IncrementalCalculator) Commit(s strategy.AttributeProcessStrategy) error {
	if err := c.checkSync(s); err != nil {
		return err
	}
	group := s.ExaminingGroup()
	attrs := instance.Collect(group)
	result, counted := c.refine(group)
	if err := s.ProcessExamining(); err != nil {
		return err
	}
	(*c).boundary = result.Boundary
	(*c).counted = counted
	(*c).partitionAttrs = append((*c).partitionAttrs, attrs...)
	value, err := degree(counted, (*c).universeSize)
	if err != nil {
		return err
	}
	(*c).value = value
	return nil
}

func (c *IncrementalCalculator) Value() float64 {
	return (*c).value
}

// BoundaryEmpty 已处理属性是否已经把全部实例确定下来
func (c *IncrementalCalculator) BoundaryEmpty() bool {
	return len((*c).boundary) == 0
}

func (c *IncrementalCalculator) Boundary() []equivalence.Aggregate {
	return (*c).boundary
}

func (c *IncrementalCalculator) PartitionAttributes() ([]int, error) {
	return slices.Clone((*c).partitionAttrs), nil
}

func (c *IncrementalCalculator) Clone() *IncrementalCalculator {
	clone := *c
	clone.boundary = equivalence.CloneAll((*c).boundary)
	clone.partitionAttrs = slices.Clone((*c).partitionAttrs)
	return &clone
}

package calculator

import (
	"fmt"

	"roughset-reduct/reduct/equivalence"
	"roughset-reduct/reduct/instance"
	"roughset-reduct/rock-share/global/enum"
	"roughset-reduct/utils"
)

// RealTimeCalculator 每次都按subset把全部成员重新分组，不保留中间结果
type RealTimeCalculator struct {
	universeSize int
	measure      enum.Measure
	value        float64
	groupNum     int
}

func NewRealTime(universeSize int, measure enum.Measure) *RealTimeCalculator {
	return &RealTimeCalculator{universeSize: universeSize, measure: measure}
}

// Calculate positive口径直接把叶子投影到subset上数一致的类，其余按subset重新分组
func (c *RealTimeCalculator) Calculate(aggregates []equivalence.Aggregate, subset instance.AttributeIterator) (float64, error) {
	var count int
	if (*c).measure == enum.MeasurePositive {
		classes := make([]*equivalence.EquivalenceClass, 0, len(aggregates))
		for _, agg := range aggregates {
			classes = append(classes, agg.EquivalenceClasses()...)
		}
		count, (*c).groupNum = positiveRegion(classes, subset)
	} else {
		groups, order := equivalence.Group(aggregates, subset)
		for _, key := range order {
			count += countOf(groups[key], (*c).measure)
		}
		(*c).groupNum = len(order)
	}
	value, err := degree(count, (*c).universeSize)
	if err != nil {
		return 0, err
	}
	(*c).value = value
	return value, nil
}

func (c *RealTimeCalculator) Value() float64 {
	return (*c).value
}

// GroupNum 上一次计算分出来的组数
func (c *RealTimeCalculator) GroupNum() int {
	return (*c).groupNum
}

func (c *RealTimeCalculator) PartitionAttributes() ([]int, error) {
	return nil, fmt.Errorf("%w: real time calculator does not keep partition attributes", utils.ErrUnsupported)
}

/*
	依赖度计算。依赖度 = 已确定(Positive或Negative)聚合里的实例数 / 论域大小，取值[0,1]；
	measure为positive时只算Positive聚合，即经典的正域依赖度。
	所有的搜索都按 Value1IsBetter 比较依赖度，deviation以内认为相等。
*/

package calculator

import (
	"fmt"

	"golang.org/x/exp/slices"
	"roughset-reduct/reduct/equivalence"
	"roughset-reduct/reduct/instance"
	"roughset-reduct/rock-share/global/enum"
	"roughset-reduct/utils"
)

// Calculator 两种计算器共有的能力
type Calculator interface {
	Value() float64
	// PartitionAttributes 计算器当前的划分用到的属性，不跟踪划分的实现返回 utils.ErrUnsupported
	PartitionAttributes() ([]int, error)
}

// Value1IsBetter a比b大出deviation以上才算更好，否则认为相等
func Value1IsBetter(a, b, deviation float64) bool {
	return a-b > deviation
}

// countOf 按口径统计聚合里计入依赖度的实例数
func countOf(agg equivalence.Aggregate, measure enum.Measure) int {
	switch agg.Type() {
	case equivalence.Positive:
		return agg.InstanceSize()
	case equivalence.Negative:
		if measure == enum.MeasureDependency {
			return agg.InstanceSize()
		}
	}
	return 0
}

func degree(count, universeSize int) (float64, error) {
	if universeSize <= 0 {
		return 0, fmt.Errorf("%w: universe size %d", utils.ErrEmptyUniverse, universeSize)
	}
	return float64(count) / float64(universeSize), nil
}

// DependencyDegree 一次性计算aggregates在subset上的依赖度
func DependencyDegree(aggregates []equivalence.Aggregate, subset instance.AttributeIterator, universeSize int) (float64, error) {
	return NewRealTime(universeSize, enum.MeasureDependency).Calculate(aggregates, subset)
}

// PositiveRegion 把叶子等价类投影到attrs上，返回仍然一致的类里的实例数
func PositiveRegion(classes []*equivalence.EquivalenceClass, attrs instance.AttributeIterator) int {
	count, _ := positiveRegion(classes, attrs)
	return count
}

func positiveRegion(classes []*equivalence.EquivalenceClass, attrs instance.AttributeIterator) (int, int) {
	projected, _ := equivalence.Project(classes, attrs)
	count := 0
	for _, ec := range projected {
		if ec.Consistent() {
			count += ec.InstanceCount()
		}
	}
	return count, len(projected)
}

// IsRedundant reduct去掉attr之后依赖度没有下降到deviation以外，attr就是冗余的
func IsRedundant(aggregates []equivalence.Aggregate, reduct []int, attr int, deviation float64) (bool, error) {
	return IsRedundantWith(aggregates, reduct, attr, deviation, enum.MeasureDependency)
}

// IsRedundantWith 按指定口径判断attr是否冗余
func IsRedundantWith(aggregates []equivalence.Aggregate, reduct []int, attr int, deviation float64, measure enum.Measure) (bool, error) {
	index := slices.Index(reduct, attr)
	if index < 0 {
		return false, fmt.Errorf("%w: attribute %d is not in reduct %v", utils.ErrPrecondition, attr, reduct)
	}
	c := NewRealTime(equivalence.AggregateSize(aggregates), measure)
	full, err := c.Calculate(aggregates, instance.NewArrayIterator(reduct))
	if err != nil {
		return false, err
	}
	// 去掉attr之后的属性，两段拼起来不拷贝
	rest := instance.NewJoinedIterator(instance.NewArrayIterator(reduct[:index]), instance.NewArrayIterator(reduct[index+1:]))
	without, err := c.Calculate(aggregates, rest)
	if err != nil {
		return false, err
	}
	return !Value1IsBetter(full, without, deviation), nil
}

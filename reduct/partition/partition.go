/*
	增量划分。只处理Boundary聚合：按新增属性上的取值把它的叶子等价类分到更细的聚合里，
	已经确定(Positive/Negative)的聚合原样保留。代价只和边界成员数、新增属性数有关。
*/

package partition

import (
	"roughset-reduct/reduct/equivalence"
	"roughset-reduct/reduct/instance"
	"roughset-reduct/reduct/strategy"
	"roughset-reduct/rock-share/base/logger"
)

type Result struct {
	Aggregates    []equivalence.Aggregate // Aggregates 划分后的全部聚合，已确定的在前
	Boundary      []equivalence.Aggregate // Boundary 划分后仍是边界的聚合
	PositiveDelta int                     // PositiveDelta 本次新进入已确定聚合的实例数
	BoundaryEmpty bool
}

// Resolved 划分后已经确定的聚合
func (r *Result) Resolved() []equivalence.Aggregate {
	return (*r).Aggregates[:len((*r).Aggregates)-len((*r).Boundary)]
}

// Incremental 用batch里的属性细分aggregates中的边界聚合，不修改输入。
// 细分出的新聚合按第一次出现的顺序排列，所以结果是确定的。
func Incremental(aggregates []equivalence.Aggregate, batch instance.AttributeIterator) *Result {
	return incremental(aggregates, batch, nil)
}

// IncrementalByStrategy 用策略当前的整个检查组细分
func IncrementalByStrategy(aggregates []equivalence.Aggregate, s strategy.AttributeProcessStrategy) *Result {
	return Incremental(aggregates, s.ExaminingGroup())
}

func incremental(aggregates []equivalence.Aggregate, batch instance.AttributeIterator, tracer *Tracer) *Result {
	attrs := instance.Collect(batch)
	resolved := make([]equivalence.Aggregate, 0, len(aggregates))
	boundary := make([]equivalence.Aggregate, 0)
	delta := 0
	for _, agg := range aggregates {
		if agg.Type().Resolved() {
			resolved = append(resolved, agg)
			continue
		}
		if len(attrs) == 0 {
			boundary = append(boundary, agg)
			continue
		}
		children, order := split(agg, attrs, batch)
		for _, key := range order {
			child := children[key]
			if child.Type().Resolved() {
				delta += child.InstanceSize()
				resolved = append(resolved, child)
			} else {
				boundary = append(boundary, child)
			}
			if tracer != nil {
				tracer.record(agg, child, attrs)
			}
		}
	}
	logger.Debugf("[incremental partition] batch %v: +%d resolved instances, %d boundary aggregates", attrs, delta, len(boundary))
	return &Result{
		Aggregates:    append(resolved, boundary...),
		Boundary:      boundary,
		PositiveDelta: delta,
		BoundaryEmpty: len(boundary) == 0,
	}
}

func split(agg equivalence.Aggregate, attrs []int, batch instance.AttributeIterator) (map[string]equivalence.Aggregate, []string) {
	children := make(map[string]equivalence.Aggregate)
	order := make([]string, 0)
	for _, ec := range agg.EquivalenceClasses() {
		key := equivalence.TupleKey(ec.AttrValues(), batch)
		child, ok := children[key]
		if !ok {
			child = agg.Spawn(attrs)
			children[key] = child
			order = append(order, key)
		}
		child.AddItem(ec)
	}
	return children, order
}

// Refine 依次用多个batch细分，返回最后的结果，PositiveDelta是累计值
func Refine(aggregates []equivalence.Aggregate, batches ...instance.AttributeIterator) *Result {
	result := &Result{Aggregates: aggregates}
	_, result.Boundary = equivalence.CountResolved(aggregates)
	result.BoundaryEmpty = len(result.Boundary) == 0
	for _, batch := range batches {
		if result.BoundaryEmpty {
			break
		}
		next := Incremental(result.Aggregates, batch)
		next.PositiveDelta += result.PositiveDelta
		result = next
	}
	return result
}

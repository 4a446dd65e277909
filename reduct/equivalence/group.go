package equivalence

import (
	"roughset-reduct/reduct/instance"
)

// Group 按subset上的取值元组把一组聚合重新分组成嵌套等价类。
// 已经按subset的超集划分过的嵌套等价类整体作为一个成员放入，省去展开叶子的开销；其余的按叶子分组。
func Group(aggregates []Aggregate, subset instance.AttributeIterator) (map[string]*NestedEquivalenceClass, []string) {
	attrs := instance.Collect(subset)
	groups := make(map[string]*NestedEquivalenceClass)
	order := make([]string, 0)
	put := func(key string, m Member) {
		nec, ok := groups[key]
		if !ok {
			nec = NewNestedEquivalenceClass(attrs)
			groups[key] = nec
			order = append(order, key)
		}
		nec.AddMember(m)
	}
	for _, agg := range aggregates {
		if agg.MemberCount() == 0 {
			continue
		}
		if m, ok := agg.Covering(attrs); ok {
			put(TupleKey(m.Representative().attrValues, subset), m)
			continue
		}
		for _, ec := range agg.EquivalenceClasses() {
			put(TupleKey(ec.attrValues, subset), Leaf(ec))
		}
	}
	return groups, order
}

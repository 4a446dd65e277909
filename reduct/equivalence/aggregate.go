package equivalence

// Aggregate 粗糙等价类和嵌套等价类共同的能力，划分算法只依赖这个接口
type Aggregate interface {
	Type() ClassType
	Decision() (int, bool) // Decision 只有Positive才有决策值
	InstanceSize() int
	MemberCount() int
	// EquivalenceClasses 展开成叶子等价类，返回的切片不要修改
	EquivalenceClasses() []*EquivalenceClass
	AddItem(ec *EquivalenceClass)
	// Spawn 生成一个同类型的空聚合，extraAttrs是新聚合在当前基础上多用来划分的属性
	Spawn(extraAttrs []int) Aggregate
	Clone() Aggregate
	// Covering 聚合内所有实例在attrs上取值相同时，把整个聚合作为一个成员返回
	Covering(attrs []int) (Member, bool)
}

// MemberKind Member中具体放的是哪一种
type MemberKind int8

const (
	LeafMember   MemberKind = iota // LeafMember 叶子等价类
	NestedMember                   // NestedMember 嵌套等价类
)

// Member 嵌套等价类的成员，叶子或者嵌套二选一，在边界处一次性区分好，算法里不再做类型判断
type Member struct {
	kind   MemberKind
	leaf   *EquivalenceClass
	nested *NestedEquivalenceClass
}

func Leaf(ec *EquivalenceClass) Member {
	return Member{kind: LeafMember, leaf: ec}
}

func Nested(nec *NestedEquivalenceClass) Member {
	return Member{kind: NestedMember, nested: nec}
}

func (m Member) Kind() MemberKind {
	return m.kind
}

func (m Member) Leaf() *EquivalenceClass {
	return m.leaf
}

func (m Member) Nested() *NestedEquivalenceClass {
	return m.nested
}

// Representative 成员里的第一个叶子，成员内的叶子在所属类的属性上取值都相同
func (m Member) Representative() *EquivalenceClass {
	for m.kind == NestedMember {
		m = m.nested.members[0]
	}
	return m.leaf
}

// classify 成员自身的分类，用于上层聚合的absorb
func (m Member) classify() (ClassType, int) {
	if m.kind == LeafMember {
		return m.leaf.Type(), m.leaf.decision
	}
	return m.nested.Type(), m.nested.decision
}

func (m Member) memberCount() int {
	if m.kind == LeafMember {
		return 1
	}
	return m.nested.MemberCount()
}

func (m Member) instanceSize() int {
	if m.kind == LeafMember {
		return m.leaf.instanceCount
	}
	return m.nested.instanceSize
}

func (m Member) appendLeaves(leaves []*EquivalenceClass) []*EquivalenceClass {
	if m.kind == LeafMember {
		return append(leaves, m.leaf)
	}
	for _, sub := range m.nested.members {
		leaves = sub.appendLeaves(leaves)
	}
	return leaves
}

func (m Member) clone() Member {
	if m.kind == LeafMember {
		return Leaf(m.leaf.Clone())
	}
	return Nested(m.nested.cloneNested())
}

// CountResolved 统计聚合里已经确定(Positive或Negative)的实例数和边界聚合
func CountResolved(aggregates []Aggregate) (resolved int, boundary []Aggregate) {
	for _, agg := range aggregates {
		if agg.Type().Resolved() {
			resolved += agg.InstanceSize()
		} else {
			boundary = append(boundary, agg)
		}
	}
	return resolved, boundary
}

// AggregateSize 一组聚合的实例总数
func AggregateSize(aggregates []Aggregate) int {
	size := 0
	for _, agg := range aggregates {
		size += agg.InstanceSize()
	}
	return size
}

// CloneAll 深拷贝一组聚合，并行评估候选时每个协程要拿自己的一份
func CloneAll(aggregates []Aggregate) []Aggregate {
	result := make([]Aggregate, len(aggregates))
	for i, agg := range aggregates {
		result[i] = agg.Clone()
	}
	return result
}

package equivalence

import (
	"golang.org/x/exp/slices"
)

// NestedEquivalenceClass 嵌套等价类。记录了自己是按哪些属性分出来的，
// 成员可以是叶子等价类，也可以是在更细属性集上分出来的嵌套等价类。
type NestedEquivalenceClass struct {
	attributes []int // attributes 划分出这个类所用的属性，有序
	members    []Member
	leafCount  int
	classification
}

func NewNestedEquivalenceClass(attributes []int) *NestedEquivalenceClass {
	attrs := slices.Clone(attributes)
	slices.Sort(attrs)
	return &NestedEquivalenceClass{attributes: attrs, classification: newClassification()}
}

func (nec *NestedEquivalenceClass) Attributes() []int {
	return (*nec).attributes
}

// Covers 这个类的属性是否包含了attrs中的全部属性。包含时类内所有实例在attrs上取值相同。
func (nec *NestedEquivalenceClass) Covers(attrs []int) bool {
	for _, attr := range attrs {
		if _, found := slices.BinarySearch((*nec).attributes, attr); !found {
			return false
		}
	}
	return true
}

func (nec *NestedEquivalenceClass) Covering(attrs []int) (Member, bool) {
	if len((*nec).members) == 0 || !nec.Covers(attrs) {
		return Member{}, false
	}
	return Nested(nec), true
}

func (nec *NestedEquivalenceClass) AddItem(ec *EquivalenceClass) {
	nec.AddMember(Leaf(ec))
}

func (nec *NestedEquivalenceClass) AddMember(m Member) {
	(*nec).members = append((*nec).members, m)
	(*nec).leafCount += m.memberCount()
	t, decision := m.classify()
	(*nec).absorb(t, decision, m.instanceSize())
}

func (nec *NestedEquivalenceClass) Members() []Member {
	return (*nec).members
}

func (nec *NestedEquivalenceClass) Type() ClassType {
	return (*nec).classType
}

func (nec *NestedEquivalenceClass) Decision() (int, bool) {
	return (*nec).decisionValue()
}

func (nec *NestedEquivalenceClass) InstanceSize() int {
	return (*nec).instanceSize
}

// MemberCount 叶子等价类的数量
func (nec *NestedEquivalenceClass) MemberCount() int {
	return (*nec).leafCount
}

func (nec *NestedEquivalenceClass) EquivalenceClasses() []*EquivalenceClass {
	leaves := make([]*EquivalenceClass, 0, (*nec).leafCount)
	for _, m := range (*nec).members {
		leaves = m.appendLeaves(leaves)
	}
	return leaves
}

func (nec *NestedEquivalenceClass) Spawn(extraAttrs []int) Aggregate {
	attrs := make([]int, 0, len((*nec).attributes)+len(extraAttrs))
	attrs = append(attrs, (*nec).attributes...)
	for _, attr := range extraAttrs {
		if !slices.Contains(attrs, attr) {
			attrs = append(attrs, attr)
		}
	}
	return NewNestedEquivalenceClass(attrs)
}

func (nec *NestedEquivalenceClass) Clone() Aggregate {
	return nec.cloneNested()
}

func (nec *NestedEquivalenceClass) cloneNested() *NestedEquivalenceClass {
	c := &NestedEquivalenceClass{
		attributes:     slices.Clone((*nec).attributes),
		members:        make([]Member, len((*nec).members)),
		leafCount:      (*nec).leafCount,
		classification: (*nec).classification,
	}
	for i, m := range (*nec).members {
		c.members[i] = m.clone()
	}
	return c
}

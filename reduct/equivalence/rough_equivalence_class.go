package equivalence

// RoughEquivalenceClass 粗糙等价类，由在较粗属性集上取值相同的叶子等价类组成
type RoughEquivalenceClass struct {
	members []*EquivalenceClass
	classification
}

func NewRoughEquivalenceClass() *RoughEquivalenceClass {
	return &RoughEquivalenceClass{classification: newClassification()}
}

// NewUniverse 所有叶子等价类放在一个粗糙等价类里，相当于用空属性集划分
func NewUniverse(classes []*EquivalenceClass) *RoughEquivalenceClass {
	rec := NewRoughEquivalenceClass()
	for _, ec := range classes {
		rec.AddItem(ec)
	}
	return rec
}

func (rec *RoughEquivalenceClass) AddItem(ec *EquivalenceClass) {
	(*rec).members = append((*rec).members, ec)
	(*rec).absorb(ec.Type(), (*ec).decision, (*ec).instanceCount)
}

func (rec *RoughEquivalenceClass) Type() ClassType {
	return (*rec).classType
}

func (rec *RoughEquivalenceClass) Decision() (int, bool) {
	return (*rec).decisionValue()
}

func (rec *RoughEquivalenceClass) InstanceSize() int {
	return (*rec).instanceSize
}

func (rec *RoughEquivalenceClass) MemberCount() int {
	return len((*rec).members)
}

func (rec *RoughEquivalenceClass) EquivalenceClasses() []*EquivalenceClass {
	return (*rec).members
}

func (rec *RoughEquivalenceClass) Spawn(_ []int) Aggregate {
	return NewRoughEquivalenceClass()
}

// Covering 粗糙等价类不记录划分属性，只能按叶子展开
func (rec *RoughEquivalenceClass) Covering(_ []int) (Member, bool) {
	return Member{}, false
}

func (rec *RoughEquivalenceClass) Clone() Aggregate {
	c := &RoughEquivalenceClass{
		members:        make([]*EquivalenceClass, len((*rec).members)),
		classification: (*rec).classification,
	}
	for i, ec := range (*rec).members {
		c.members[i] = ec.Clone()
	}
	return c
}

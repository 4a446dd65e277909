package equivalence

// ClassType 聚合(粗糙等价类/嵌套等价类)的三种状态
type ClassType int8

const (
	Positive ClassType = iota // Positive 所有成员都一致且决策值相同
	Negative                  // Negative 所有成员自身都不一致，再怎么细分也不会进正域
	Boundary                  // Boundary 边界，还需要用更多的属性去划分
)

func (t ClassType) String() string {
	switch t {
	case Positive:
		return "POS"
	case Negative:
		return "NEG"
	case Boundary:
		return "BND"
	default:
		return "UNKNOWN"
	}
}

// Resolved 正域和负域都算已经确定了
func (t ClassType) Resolved() bool {
	return t != Boundary
}

// classification 聚合的分类状态，只会往Boundary方向变
type classification struct {
	classType    ClassType
	decision     int
	instanceSize int
	empty        bool
}

func newClassification() classification {
	return classification{empty: true}
}

// absorb 加入一个成员的分类信息。Positive收到决策不同或者不一致的成员变成Boundary，
// Negative收到一致的成员变成Boundary，Boundary不会再变回去。
func (c *classification) absorb(t ClassType, decision int, size int) {
	(*c).instanceSize += size
	if (*c).empty {
		(*c).empty = false
		(*c).classType = t
		(*c).decision = decision
		return
	}
	switch (*c).classType {
	case Boundary:
		return
	case Positive:
		if t != Positive || decision != (*c).decision {
			(*c).toBoundary()
		}
	case Negative:
		if t != Negative {
			(*c).toBoundary()
		}
	}
}

func (c *classification) toBoundary() {
	(*c).classType = Boundary
	(*c).decision = 0
}

func (c *classification) decisionValue() (int, bool) {
	if (*c).empty || (*c).classType != Positive {
		return 0, false
	}
	return (*c).decision, true
}

package equivalence

import (
	"sort"
	"strconv"

	"roughset-reduct/reduct/instance"
)

// EquivalenceClass 在某个属性集合上取值完全相同的一组实例
type EquivalenceClass struct {
	// attrValues 代表实例的完整取值，只有建类时用到的那些属性上的取值是所有实例共有的
	attrValues    []int
	decision      int
	consistent    bool // consistent 为false时类内决策值不唯一
	instanceCount int
	firstID       int // firstID 类里最小的实例行号，用于稳定排序
}

func newEquivalenceClass(ins *instance.Instance) *EquivalenceClass {
	return &EquivalenceClass{
		attrValues:    ins.Values(),
		decision:      ins.Decision(),
		consistent:    true,
		instanceCount: 1,
		firstID:       ins.ID(),
	}
}

// NewEquivalenceClass 直接用取值构造，values下标0为决策值
func NewEquivalenceClass(values []int, consistent bool, instanceCount int) *EquivalenceClass {
	return &EquivalenceClass{
		attrValues:    values,
		decision:      values[instance.DecisionIndex],
		consistent:    consistent,
		instanceCount: instanceCount,
	}
}

func (ec *EquivalenceClass) Value(attr int) int {
	return (*ec).attrValues[attr]
}

func (ec *EquivalenceClass) AttrValues() []int {
	return (*ec).attrValues
}

// Decision 类内决策值唯一时返回(值, true)，否则返回(0, false)
func (ec *EquivalenceClass) Decision() (int, bool) {
	if !(*ec).consistent {
		return 0, false
	}
	return (*ec).decision, true
}

func (ec *EquivalenceClass) Consistent() bool {
	return (*ec).consistent
}

func (ec *EquivalenceClass) InstanceCount() int {
	return (*ec).instanceCount
}

func (ec *EquivalenceClass) FirstID() int {
	return (*ec).firstID
}

// Type 叶子等价类对应的聚合状态：一致就是Positive，否则是Negative
func (ec *EquivalenceClass) Type() ClassType {
	if (*ec).consistent {
		return Positive
	}
	return Negative
}

func (ec *EquivalenceClass) addInstance(ins *instance.Instance) {
	(*ec).instanceCount++
	if (*ec).consistent && ins.Decision() != (*ec).decision {
		(*ec).consistent = false
	}
	if ins.ID() < (*ec).firstID {
		(*ec).firstID = ins.ID()
	}
}

// MergeAndTypeChanged 把在当前属性子集上取值相同的另一个类并进来。
// 合并只可能让类从一致变成不一致，返回值为true表示发生了这个变化，调用方需要据此更新计数。
func (ec *EquivalenceClass) MergeAndTypeChanged(other *EquivalenceClass) bool {
	wasConsistent := (*ec).consistent
	(*ec).instanceCount += (*other).instanceCount
	if (*ec).consistent && (!(*other).consistent || (*other).decision != (*ec).decision) {
		(*ec).consistent = false
	}
	if (*other).firstID < (*ec).firstID {
		(*ec).firstID = (*other).firstID
	}
	return wasConsistent && !(*ec).consistent
}

func (ec *EquivalenceClass) Clone() *EquivalenceClass {
	c := *ec
	return &c
}

// TupleKey 取值元组在attrs上的key
func TupleKey(values []int, attrs instance.AttributeIterator) string {
	attrs.Reset()
	buf := make([]byte, 0, attrs.Size()*4)
	for attrs.HasNext() {
		buf = strconv.AppendInt(buf, int64(values[attrs.Next()]), 10)
		buf = append(buf, '|')
	}
	attrs.Reset()
	return string(buf)
}

// Build 按attrs上的取值元组把实例分组，key为 TupleKey。
// 缺失值按普通取值参与分组，要不要把它当成"不关心"交给调用方。
func Build(instances []*instance.Instance, attrs instance.AttributeIterator) map[string]*EquivalenceClass {
	classes := make(map[string]*EquivalenceClass)
	for _, ins := range instances {
		key := TupleKey(ins.Values(), attrs)
		if ec, ok := classes[key]; ok {
			ec.addInstance(ins)
		} else {
			classes[key] = newEquivalenceClass(ins)
		}
	}
	return classes
}

// Project 把已有的等价类投影到更小的属性子集上，取值相同的类合并。
// 不修改输入的类，返回合并后的类和合并时从一致变成不一致的次数。
func Project(classes []*EquivalenceClass, attrs instance.AttributeIterator) (map[string]*EquivalenceClass, int) {
	projected := make(map[string]*EquivalenceClass, len(classes))
	changed := 0
	for _, ec := range classes {
		key := TupleKey((*ec).attrValues, attrs)
		if exist, ok := projected[key]; ok {
			if exist.MergeAndTypeChanged(ec) {
				changed++
			}
		} else {
			projected[key] = ec.Clone()
		}
	}
	return projected, changed
}

// Sorted 按FirstID排序后的等价类，保证后续算法的遍历顺序是确定的
func Sorted(classes map[string]*EquivalenceClass) []*EquivalenceClass {
	result := make([]*EquivalenceClass, 0, len(classes))
	for _, ec := range classes {
		result = append(result, ec)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].firstID < result[j].firstID
	})
	return result
}

// UniverseSize 所有等价类的实例总数
func UniverseSize(classes []*EquivalenceClass) int {
	size := 0
	for _, ec := range classes {
		size += (*ec).instanceCount
	}
	return size
}

/*
	决策表中的一行。属性取值统一编码成int，下标0固定放决策属性，条件属性从1开始编号。
	缺失值用 reduct_config.NilIndex 表示，是否把缺失值当成"不关心"由调用方决定，这里只提供判断。
*/

package instance

import (
	"roughset-reduct/reduct_config"
)

// DecisionIndex 决策属性所在的下标
const DecisionIndex = 0

type Instance struct {
	id     int   // id 行号，从0起
	values []int // values 下标0为决策值，其余为条件属性取值
}

func New(id int, values []int) *Instance {
	return &Instance{id: id, values: values}
}

func (ins *Instance) ID() int {
	return (*ins).id
}

// Value 取某个属性的值，attr为0时就是决策值
func (ins *Instance) Value(attr int) int {
	return (*ins).values[attr]
}

func (ins *Instance) Decision() int {
	return (*ins).values[DecisionIndex]
}

func (ins *Instance) IsMissing(attr int) bool {
	return (*ins).values[attr] == reduct_config.NilIndex
}

// AttributeNum 条件属性的数量，不含决策属性
func (ins *Instance) AttributeNum() int {
	return len((*ins).values) - 1
}

// Values 返回内部切片，调用方不要修改
func (ins *Instance) Values() []int {
	return (*ins).values
}

// ConditionAttributes 生成1..n的全部条件属性
func ConditionAttributes(attributeNum int) []int {
	attrs := make([]int, attributeNum)
	for i := range attrs {
		attrs[i] = i + 1
	}
	return attrs
}

// FromRows 把已经编码好的行转成Instance，每一行都是 决策值 + 条件属性取值
func FromRows(rows [][]int) []*Instance {
	instances := make([]*Instance, len(rows))
	for i, row := range rows {
		instances[i] = New(i, row)
	}
	return instances
}

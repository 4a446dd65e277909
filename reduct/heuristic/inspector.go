package heuristic

import (
	mapset "github.com/deckarep/golang-set"
	"golang.org/x/exp/slices"
	"roughset-reduct/reduct/calculator"
	"roughset-reduct/reduct/equivalence"
	"roughset-reduct/rock-share/base/logger"
)

type Inspection struct {
	Reduct  []int // Reduct 去掉冗余属性后的约简，升序
	Removed []int // Removed 按检查顺序
}

// Inspect 从最后加入的属性开始，逐个去掉reduct中冗余的非核属性。
// 每去掉一个属性，后面的检查都在去掉之后的约简上进行。
func Inspect(aggregates []equivalence.Aggregate, reduct []int, core mapset.Set, opts Options) (*Inspection, error) {
	current := slices.Clone(reduct)
	inspection := &Inspection{}
	for i := len(reduct) - 1; i >= 0; i-- {
		attr := reduct[i]
		if core != nil && core.Contains(attr) {
			continue
		}
		redundant, err := calculator.IsRedundantWith(aggregates, current, attr, opts.Deviation, opts.Measure)
		if err != nil {
			return nil, err
		}
		if !redundant {
			continue
		}
		logger.Debugf("[inspect] attribute %d is redundant in %v", attr, current)
		index := slices.Index(current, attr)
		current = append(current[:index], current[index+1:]...)
		(*inspection).Removed = append((*inspection).Removed, attr)
	}
	slices.Sort(current)
	(*inspection).Reduct = current
	return inspection, nil
}

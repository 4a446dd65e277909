/*
	求核属性。策略把未处理的属性分成检查组和挂起区，每一轮：
		1. 用 已处理 + 挂起区 的属性划分边界聚合，剩下的边界让依赖度下降不超过deviation时，检查组里的属性都不是核，整组过滤；
		2. 否则组内逐个轮换：用 组内其余属性 继续细分上一步剩下的边界，去掉这个属性后依赖度下降超过deviation，它就是核；
		3. 检查组并入已处理，base用检查组细分，进入下一轮。
	被过滤的属性仍然算已处理，后面的轮次照样用它们划分，结果和在全体属性上逐个删除的判断一致。
*/

package core

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"
	"golang.org/x/exp/slices"
	"roughset-reduct/reduct/calculator"
	"roughset-reduct/reduct/equivalence"
	"roughset-reduct/reduct/instance"
	"roughset-reduct/reduct/partition"
	"roughset-reduct/reduct/strategy"
	"roughset-reduct/rock-share/base/logger"
	"roughset-reduct/rock-share/global/enum"
	"roughset-reduct/utils"
)

type Result struct {
	Core     []int // Core 核属性，升序
	Filtered []int // Filtered 整组判定不是核的属性
	NonCore  []int // NonCore 逐个检查后不是核的属性
	Rounds   int   // Rounds 检查了多少组
}

func (r *Result) CoreSet() mapset.Set {
	set := mapset.NewSet()
	for _, attr := range (*r).Core {
		set.Add(attr)
	}
	return set
}

// IsCore attr是否是核属性
func (r *Result) IsCore(attr int) bool {
	_, found := slices.BinarySearch((*r).Core, attr)
	return found
}

type Options struct {
	Deviation float64 // Deviation 去掉属性后依赖度的下降不超过它时不算核
	Measure   enum.Measure
}

func DefaultOptions() Options {
	return Options{Measure: enum.MeasureDependency}
}

// Compute 正向策略求核
func Compute(aggregates []equivalence.Aggregate, attrs []int, capacityFn strategy.CapacityFunc) (*Result, error) {
	return ComputeWithStrategy(aggregates, strategy.NewForward(attrs, capacityFn))
}

// ComputeWithStrategy deviation为0时的求核
func ComputeWithStrategy(aggregates []equivalence.Aggregate, s strategy.AttributeProcessStrategy) (*Result, error) {
	return ComputeWithOptions(aggregates, s, DefaultOptions())
}

// round 一轮检查需要的全部状态，轮与轮之间只通过base传递
type round struct {
	base []equivalence.Aggregate // base 已处理属性划分出的边界聚合
}

// judge 全体属性下边界为空，去掉属性后仍留在边界里的实例就是依赖度的损失
type judge struct {
	opts         Options
	universeSize int
}

// lost 边界聚合里按口径本来能计入依赖度的实例数
func (j judge) lost(boundary []equivalence.Aggregate) int {
	count := 0
	for _, agg := range boundary {
		if j.opts.Measure != enum.MeasurePositive {
			count += agg.InstanceSize()
			continue
		}
		for _, ec := range agg.EquivalenceClasses() {
			if ec.Consistent() {
				count += ec.InstanceCount()
			}
		}
	}
	return count
}

// significant 留下boundary时依赖度的下降是否超过deviation
func (j judge) significant(boundary []equivalence.Aggregate) bool {
	if len(boundary) == 0 {
		return false
	}
	loss := float64(j.lost(boundary)) / float64(j.universeSize)
	return calculator.Value1IsBetter(loss, 0, j.opts.Deviation)
}

// ComputeWithOptions 用给定的策略求核，s会被推进到全部处理完
func ComputeWithOptions(aggregates []equivalence.Aggregate, s strategy.AttributeProcessStrategy, opts Options) (*Result, error) {
	if s.ProcessedCount() != 0 {
		return nil, fmt.Errorf("%w: strategy already processed %d attributes", utils.ErrPrecondition, s.ProcessedCount())
	}
	_, boundary := equivalence.CountResolved(aggregates)
	j := judge{opts: opts, universeSize: equivalence.AggregateSize(aggregates)}
	if j.universeSize == 0 {
		return nil, fmt.Errorf("%w: no instance in aggregates", utils.ErrEmptyUniverse)
	}
	work := round{base: boundary}
	result := &Result{}
	for s.HasNext() {
		held := s.HeldAttrs()
		group := instance.Collect(s.ExaminingGroup())
		(*result).Rounds++

		byHeld := partition.Incremental(work.base, held)
		if !j.significant(byHeld.Boundary) {
			logger.Debugf("[core] round %d: group %v filtered", (*result).Rounds, group)
			(*result).Filtered = append((*result).Filtered, group...)
		} else {
			cores, nonCores, err := examineGroup(byHeld.Boundary, s, j)
			if err != nil {
				return nil, err
			}
			logger.Debugf("[core] round %d: group %v core %v", (*result).Rounds, group, cores)
			(*result).Core = append((*result).Core, cores...)
			(*result).NonCore = append((*result).NonCore, nonCores...)
		}

		work = round{base: partition.IncrementalByStrategy(work.base, s).Boundary}
		if err := s.ProcessExamining(); err != nil {
			return nil, err
		}
	}
	slices.Sort((*result).Core)
	return result, nil
}

// examineGroup 组内每个属性轮流作为examiningAttr，用组内其余属性细分boundary
func examineGroup(boundary []equivalence.Aggregate, s strategy.AttributeProcessStrategy, j judge) ([]int, []int, error) {
	var cores, nonCores []int
	for {
		attr, err := s.ExaminingAttr()
		if err != nil {
			return nil, nil, err
		}
		if !j.significant(partition.Incremental(boundary, s.ExaminingBatch()).Boundary) {
			nonCores = append(nonCores, attr)
		} else {
			cores = append(cores, attr)
		}
		if !s.HasNextExamAttribute() {
			return cores, nonCores, nil
		}
		if err = s.UpdateExamAttribute(); err != nil {
			return nil, nil, err
		}
	}
}

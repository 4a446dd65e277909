/*
	贪心求约简。从核开始，每轮把剩下的属性逐个放进检查组试算依赖度，选最好的一个加入约简，
	直到依赖度达到全体属性的依赖度(deviation以内)或者边界类已经为空。
	检查组固定为1个属性，候选的轮换靠策略的UpdateInLineAttrs完成，不重新分配属性数组。
*/

package heuristic

import (
	"fmt"

	"github.com/yourbasic/bit"
	"golang.org/x/exp/slices"
	"roughset-reduct/reduct/calculator"
	"roughset-reduct/reduct/equivalence"
	"roughset-reduct/reduct/instance"
	"roughset-reduct/reduct/strategy"
	"roughset-reduct/reduct_config"
	"roughset-reduct/rock-share/base/logger"
	"roughset-reduct/rock-share/global/enum"
	"roughset-reduct/utils"
)

type Options struct {
	Deviation             float64
	Direction             enum.Direction
	Measure               enum.Measure
	WorkerNum             int // WorkerNum 并行评估的协程数，小于等于1时串行
	MaxParallelCandidates int // MaxParallelCandidates 候选数超过它才并行
	// Cache 属性子集的依赖度缓存，为空时每次搜索新建一个。同一份数据上的多次搜索和检查可以共用
	Cache *calculator.Cache
}

func DefaultOptions() Options {
	return Options{
		Deviation:             reduct_config.Deviation,
		Direction:             reduct_config.Direction,
		Measure:               reduct_config.Measure,
		WorkerNum:             reduct_config.WorkerNum,
		MaxParallelCandidates: reduct_config.MaxParallelCandidates,
	}
}

type Result struct {
	Reduct         []int // Reduct 按加入顺序，核在前
	Dependency     float64
	FullDependency float64 // FullDependency 全体属性的依赖度
	Evaluations    int     // Evaluations 实际计算(未命中缓存)的候选数
	CacheHits      int
}

// candidate 一个候选属性的评估结果
type candidate struct {
	attr  int
	value float64
}

type searcher struct {
	opts     Options
	calc     *calculator.IncrementalCalculator
	s        strategy.AttributeProcessStrategy
	cache    *calculator.Cache
	selected *bit.Set
	tokenCh  chan struct{}
	result   *Result
}

// Search 在aggregates上求一个约简，core中的属性必须都在attrs里
func Search(aggregates []equivalence.Aggregate, attrs []int, core []int, opts Options) (*Result, error) {
	universeSize := equivalence.AggregateSize(aggregates)
	for _, attr := range core {
		if !slices.Contains(attrs, attr) {
			return nil, fmt.Errorf("%w: core attribute %d is not a condition attribute", utils.ErrPrecondition, attr)
		}
	}
	full, err := calculator.NewRealTime(universeSize, opts.Measure).Calculate(aggregates, instance.NewArrayIterator(attrs))
	if err != nil {
		return nil, err
	}
	calc, err := calculator.NewIncremental(aggregates, universeSize, opts.Measure)
	if err != nil {
		return nil, err
	}

	cache := opts.Cache
	if cache == nil {
		cache = calculator.NewCache()
	}
	sr := &searcher{
		opts:     opts,
		calc:     calc,
		s:        strategy.New(opts.Direction, arrange(attrs, core, opts.Direction), strategy.FixedCapacity(1)),
		cache:    cache,
		selected: new(bit.Set),
		tokenCh:  utils.GenTokenChanWithSize(opts.WorkerNum),
		result:   &Result{FullDependency: full},
	}
	for range core {
		if err = sr.commit(); err != nil {
			return nil, err
		}
	}
	logger.Debugf("[heuristic] start from core %v, dependency %v of %v", core, calc.Value(), full)

	for sr.s.HasNext() && !sr.reached() {
		best, err := sr.bestCandidate()
		if err != nil {
			return nil, err
		}
		if err = sr.s.Promote(best.attr); err != nil {
			return nil, err
		}
		if err = sr.commit(); err != nil {
			return nil, err
		}
		logger.Debugf("[heuristic] add attribute %d, dependency %v", best.attr, sr.calc.Value())
	}
	(*sr.result).Dependency = sr.calc.Value()
	return sr.result, nil
}

// arrange 核放在最先处理的位置，反向策略从数组尾部取，所以整体倒过来
func arrange(attrs []int, core []int, direction enum.Direction) []int {
	ordered := make([]int, 0, len(attrs))
	ordered = append(ordered, core...)
	for _, attr := range attrs {
		if !slices.Contains(core, attr) {
			ordered = append(ordered, attr)
		}
	}
	if direction == enum.Reverse {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}
	return ordered
}

func (sr *searcher) reached() bool {
	if sr.calc.BoundaryEmpty() {
		return true
	}
	return !calculator.Value1IsBetter((*sr.result).FullDependency, sr.calc.Value(), sr.opts.Deviation)
}

// commit 检查组(只有一个属性)加入约简
func (sr *searcher) commit() error {
	group := instance.Collect(sr.s.ExaminingGroup())
	if err := sr.calc.Commit(sr.s); err != nil {
		return err
	}
	for _, attr := range group {
		sr.selected.Add(attr)
	}
	sr.cache.Set(sr.opts.Measure, new(bit.Set).Set(sr.selected), sr.calc.Value())
	(*sr.result).Reduct = append((*sr.result).Reduct, group...)
	return nil
}

// candidates 本轮所有候选属性，按策略轮换的顺序
func (sr *searcher) candidates() ([]int, error) {
	sr.s.ResetInLine()
	attrs := make([]int, 0, sr.s.Left())
	for {
		attr, err := sr.s.ExaminingAttr()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
		if !sr.s.HasNextInLine() {
			return attrs, nil
		}
		if err = sr.s.UpdateInLineAttrs(); err != nil {
			return nil, err
		}
	}
}

func (sr *searcher) bestCandidate() (candidate, error) {
	attrs, err := sr.candidates()
	if err != nil {
		return candidate{}, err
	}
	var evaluated []candidate
	if sr.opts.WorkerNum > 1 && len(attrs) > sr.opts.MaxParallelCandidates {
		evaluated, err = sr.evaluateParallel(attrs)
	} else {
		evaluated, err = sr.evaluateSerial(attrs)
	}
	if err != nil {
		return candidate{}, err
	}
	best := evaluated[0]
	for _, c := range evaluated[1:] {
		if calculator.Value1IsBetter(c.value, best.value, sr.opts.Deviation) {
			best = c
		} else if !calculator.Value1IsBetter(best.value, c.value, sr.opts.Deviation) && c.attr < best.attr {
			// deviation以内认为相等，取编号小的
			best = c
		}
	}
	return best, nil
}

// key 已选属性加上attr
func (sr *searcher) key(attr int) *bit.Set {
	return new(bit.Set).Set(sr.selected).Add(attr)
}

// evaluateSerial 直接在当前策略上逐个Promote候选属性试算
func (sr *searcher) evaluateSerial(attrs []int) ([]candidate, error) {
	evaluated := make([]candidate, 0, len(attrs))
	for _, attr := range attrs {
		value, err := sr.cachedValue(attr, func() (float64, error) {
			if err := sr.s.Promote(attr); err != nil {
				return 0, err
			}
			return sr.calc.Calculate(sr.s)
		})
		if err != nil {
			return nil, err
		}
		evaluated = append(evaluated, candidate{attr: attr, value: value})
	}
	return evaluated, nil
}

func (sr *searcher) cachedValue(attr int, calculate func() (float64, error)) (float64, error) {
	v, hit, err := sr.cache.GetOrCalculate(sr.opts.Measure, sr.key(attr), calculate)
	if err != nil {
		return 0, err
	}
	if hit {
		(*sr.result).CacheHits++
	} else {
		(*sr.result).Evaluations++
	}
	return v, nil
}

package heuristic

import (
	"sync"

	"roughset-reduct/reduct/calculator"
	"roughset-reduct/reduct/strategy"
	"roughset-reduct/utils"
)

// evaluateParallel 候选分成WorkerNum段，每段一个协程，各自拿一份计算器和策略的拷贝。
// 协程数受tokenCh限制；结果按下标写回，和串行的顺序一致。
func (sr *searcher) evaluateParallel(attrs []int) ([]candidate, error) {
	evaluated := make([]candidate, len(attrs))
	workerNum := utils.Min(sr.opts.WorkerNum, len(attrs))
	chunk := (len(attrs) + workerNum - 1) / workerNum

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	evaluations, hits := 0, 0
	for start := 0; start < len(attrs); start += chunk {
		end := utils.Min(start+chunk, len(attrs))
		calc := sr.calc.Clone()
		s := sr.s.Clone()
		<-sr.tokenCh
		wg.Add(1)
		go func(start, end int, calc *calculator.IncrementalCalculator, s strategy.AttributeProcessStrategy) {
			defer func() {
				wg.Done()
				sr.tokenCh <- struct{}{}
			}()
			localEvaluations, localHits := 0, 0
			for i := start; i < end; i++ {
				attr := attrs[i]
				v, hit, err := sr.cache.GetOrCalculate(sr.opts.Measure, sr.key(attr), func() (float64, error) {
					if err := s.Promote(attr); err != nil {
						return 0, err
					}
					return calc.Calculate(s)
				})
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				evaluated[i] = candidate{attr: attr, value: v}
				if hit {
					localHits++
				} else {
					localEvaluations++
				}
			}
			mu.Lock()
			evaluations += localEvaluations
			hits += localHits
			mu.Unlock()
		}(start, end, calc, s)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	(*sr.result).Evaluations += evaluations
	(*sr.result).CacheHits += hits
	return evaluated, nil
}

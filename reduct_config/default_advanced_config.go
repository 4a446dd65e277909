package reduct_config

import "roughset-reduct/rock-share/global/enum"

const (
	Deviation          = float64(0.0)
	CapacityExpression = "sqrt(n)"
	Direction          = enum.Forward
	Measure            = enum.MeasureDependency
	WorkerNum          = 4
	ResultDir          = "result"
	EnableGraph        = false

	// MaxParallelCandidates 单轮贪心里超过这个候选数才开协程并行评估
	MaxParallelCandidates = 8
)

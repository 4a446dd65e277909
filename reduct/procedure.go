/*
	一次完整的约简：
		决策表 -> 等价类 -> 全域 -> 核 -> 贪心约简 -> 去冗余 -> (可选)划分树
	Run只处理已经编码好的Instance，RunTable负责读csv和编码。
*/

package reduct

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/LinkinStars/golang-util/gu"
	"roughset-reduct/reduct/calculator"
	"roughset-reduct/reduct/core"
	"roughset-reduct/reduct/equivalence"
	"roughset-reduct/reduct/heuristic"
	"roughset-reduct/reduct/instance"
	"roughset-reduct/reduct/partition"
	"roughset-reduct/reduct/strategy"
	"roughset-reduct/reduct_config"
	"roughset-reduct/rock-share/base/config"
	"roughset-reduct/rock-share/base/logger"
	"roughset-reduct/rock-share/global/enum"
	model "roughset-reduct/rock-share/global/model/reduct"
	"roughset-reduct/utils"
	"roughset-reduct/utils/storage_utils"
)

type Config struct {
	Deviation             float64
	CapacityExpression    string // CapacityExpression 求核时检查组的大小，n为剩余属性数
	Direction             enum.Direction
	Measure               enum.Measure
	WorkerNum             int
	MaxParallelCandidates int
	ResultDir             string
	ResultFormat          string // ResultFormat yaml/csv
	EnableGraph           bool
}

func DefaultConfig() Config {
	return Config{
		Deviation:             reduct_config.Deviation,
		CapacityExpression:    reduct_config.CapacityExpression,
		Direction:             reduct_config.Direction,
		Measure:               reduct_config.Measure,
		WorkerNum:             reduct_config.WorkerNum,
		MaxParallelCandidates: reduct_config.MaxParallelCandidates,
		ResultDir:             reduct_config.ResultDir,
		ResultFormat:          reduct_config.ResultYaml,
		EnableGraph:           reduct_config.EnableGraph,
	}
}

// ConfigFrom 配置文件里的约简参数，没有配置的方向和口径取默认值
func ConfigFrom(c config.ReductConfig) (Config, error) {
	conf := Config{
		Deviation:             c.Deviation,
		CapacityExpression:    c.Capacity,
		Direction:             reduct_config.Direction,
		Measure:               reduct_config.Measure,
		WorkerNum:             c.WorkerNum,
		MaxParallelCandidates: c.MaxParallelCandidates,
		ResultDir:             c.ResultDir,
		ResultFormat:          c.ResultFormat,
		EnableGraph:           c.Graph,
	}
	var err error
	if c.Direction != "" {
		if conf.Direction, err = enum.ParseDirection(c.Direction); err != nil {
			return conf, err
		}
	}
	if c.Measure != "" {
		if conf.Measure, err = enum.ParseMeasure(c.Measure); err != nil {
			return conf, err
		}
	}
	return conf, nil
}

func (c Config) searchOptions(cache *calculator.Cache) heuristic.Options {
	return heuristic.Options{
		Deviation:             c.Deviation,
		Direction:             c.Direction,
		Measure:               c.Measure,
		WorkerNum:             c.WorkerNum,
		MaxParallelCandidates: c.MaxParallelCandidates,
		Cache:                 cache,
	}
}

type Output struct {
	InstanceNum  int
	AttributeNum int
	ClassNum     int
	Core         *core.Result
	Search       *heuristic.Result
	Inspection   *heuristic.Inspection
	CoreTime     time.Duration
	ReductTime   time.Duration
	Universe     []equivalence.Aggregate
}

// Run 在编码好的实例上求核和约简
func Run(instances []*instance.Instance, conf Config) (*Output, error) {
	if len(instances) == 0 {
		return nil, utils.ErrEmptyUniverse
	}
	capacityFn, err := strategy.ExpressionCapacity(conf.CapacityExpression)
	if err != nil {
		return nil, err
	}
	attrs := instance.ConditionAttributes(instances[0].AttributeNum())
	classes := equivalence.Sorted(equivalence.Build(instances, instance.NewArrayIterator(attrs)))
	universe := []equivalence.Aggregate{equivalence.NewUniverse(classes)}
	output := &Output{
		InstanceNum:  len(instances),
		AttributeNum: len(attrs),
		ClassNum:     len(classes),
		Universe:     universe,
	}
	logger.Infof("[reduct] %d instances, %d attributes, %d equivalence classes", len(instances), len(attrs), len(classes))

	t := time.Now()
	s := strategy.New(conf.Direction, attrs, capacityFn)
	(*output).Core, err = core.ComputeWithOptions(universe, s, core.Options{Deviation: conf.Deviation, Measure: conf.Measure})
	if err != nil {
		return nil, err
	}
	(*output).CoreTime = time.Since(t)
	logger.Infof("[reduct] core %v, %d rounds, spent %vms", (*output).Core.Core, (*output).Core.Rounds, (*output).CoreTime.Milliseconds())

	t = time.Now()
	cache := calculator.NewCache()
	(*output).Search, err = heuristic.Search(universe, attrs, (*output).Core.Core, conf.searchOptions(cache))
	if err != nil {
		return nil, err
	}
	(*output).Inspection, err = heuristic.Inspect(universe, (*output).Search.Reduct, (*output).Core.CoreSet(), conf.searchOptions(cache))
	if err != nil {
		return nil, err
	}
	(*output).ReductTime = time.Since(t)
	logger.Infof("[reduct] reduct %v, dependency %v of %v, %d evaluations, %d cache hits, spent %vms",
		(*output).Inspection.Reduct, (*output).Search.Dependency, (*output).Search.FullDependency,
		(*output).Search.Evaluations, (*output).Search.CacheHits, (*output).ReductTime.Milliseconds())
	return output, nil
}

// WriteGraph 按约简里的属性依次细分全域，把这棵划分树写成dot
func (o *Output) WriteGraph(outPath string) error {
	tracer := partition.NewTracer()
	aggregates := (*o).Universe
	for _, attr := range (*o).Inspection.Reduct {
		r := tracer.Incremental(aggregates, instance.NewArrayIterator([]int{attr}))
		aggregates = (*r).Aggregates
		if (*r).BoundaryEmpty {
			break
		}
	}
	logger.Debugf("[reduct] graph with %d nodes, %d edges", tracer.NodeNum(), tracer.EdgeNum())
	return tracer.ToSimpleGraph(outPath)
}

// RunTable 读csv，按decision列编码后求约简
func RunTable(ctx context.Context, tablePath, decision string, conf Config) (*model.ReductResult, *Output, error) {
	startTime := time.Now()
	taskId := startTime.UnixMilli()
	logger.Infof("taskId:%v, 约简开始, table:%s, decision:%s", taskId, tablePath, decision)

	header, records, err := utils.ReadTable(ctx, tablePath)
	if err != nil {
		return nil, nil, err
	}
	table, err := storage_utils.EncodeTable(header, records, decision)
	if err != nil {
		return nil, nil, err
	}
	output, err := Run(instance.FromRows((*table).Rows), conf)
	if err != nil {
		logger.Errorf("taskId:%v, 约简失败:%v", taskId, err)
		return nil, nil, err
	}

	result := &model.ReductResult{
		TaskId:         taskId,
		Table:          tablePath,
		Decision:       decision,
		InstanceNum:    (*output).InstanceNum,
		AttributeNum:   (*output).AttributeNum,
		ClassNum:       (*output).ClassNum,
		Direction:      string(conf.Direction),
		Measure:        string(conf.Measure),
		Deviation:      conf.Deviation,
		CoreAttrs:      (*output).Core.Core,
		Core:           model.Names((*output).Core.Core, table.ColumnName),
		ReductAttrs:    (*output).Inspection.Reduct,
		Reduct:         model.Names((*output).Inspection.Reduct, table.ColumnName),
		Removed:        model.Names((*output).Inspection.Removed, table.ColumnName),
		Dependency:     (*output).Search.Dependency,
		FullDependency: (*output).Search.FullDependency,
		Evaluations:    (*output).Search.Evaluations,
		CacheHits:      (*output).Search.CacheHits,
		CoreTime:       (*output).CoreTime.Milliseconds(),
		ReductTime:     (*output).ReductTime.Milliseconds(),
	}
	if conf.EnableGraph {
		graphPath := path.Join(conf.ResultDir, strconv.FormatInt(taskId, 10)+".dot")
		if err = gu.CreateDirIfNotExist(conf.ResultDir); err == nil {
			err = output.WriteGraph(graphPath)
		}
		// 划分树写失败只记日志
		if err != nil {
			logger.Warnf("taskId:%v, write graph %s failed:%v", taskId, graphPath, err)
		} else {
			(*result).GraphPath = graphPath
		}
	}
	(*result).SpentTime = time.Since(startTime).Milliseconds()
	logger.Infof("taskId:%v, 约简已完成, 耗时%dms, 核:%v, 约简:%v", taskId, (*result).SpentTime, (*result).Core, (*result).Reduct)
	return result, output, nil
}

// Describe 一行文字描述，用于命令行和日志
func Describe(result *model.ReductResult) string {
	return fmt.Sprintf("core %v, reduct %v, dependency %v/%v", (*result).Core, (*result).Reduct, (*result).Dependency, (*result).FullDependency)
}

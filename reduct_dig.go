package main

import (
	"context"

	"roughset-reduct/reduct"
	"roughset-reduct/reduct/report"
	"roughset-reduct/rock-share/base/config"
	"roughset-reduct/rock-share/global/enum"
	model "roughset-reduct/rock-share/global/model/reduct"
)

// DigReduct 配置文件的参数被请求里的参数覆盖后求约简，结果写到result_dir
func DigReduct(ctx context.Context, request *ReductRequest) (*model.ReductResult, error) {
	conf, err := requestConfig(request)
	if err != nil {
		return nil, err
	}
	result, _, err := reduct.RunTable(ctx, request.Table.Path, request.Table.Decision, conf)
	if err != nil {
		return nil, err
	}
	if _, err = report.Write(conf.ResultDir, conf.ResultFormat, result); err != nil {
		return nil, err
	}
	return result, nil
}

// requestConfig 默认值 < 配置文件 < 请求参数
func requestConfig(request *ReductRequest) (reduct.Config, error) {
	conf := reduct.DefaultConfig()
	if all := config.Get(); all != nil {
		fromFile, err := reduct.ConfigFrom(all.Reduct)
		if err != nil {
			return conf, err
		}
		conf = fromFile
	}
	var err error
	if request.Deviation != nil {
		conf.Deviation = *request.Deviation
	}
	if request.Direction != "" {
		if conf.Direction, err = enum.ParseDirection(request.Direction); err != nil {
			return conf, err
		}
	}
	if request.Measure != "" {
		if conf.Measure, err = enum.ParseMeasure(request.Measure); err != nil {
			return conf, err
		}
	}
	if request.Capacity != "" {
		conf.CapacityExpression = request.Capacity
	}
	if request.Graph != nil {
		conf.EnableGraph = *request.Graph
	}
	return conf, nil
}

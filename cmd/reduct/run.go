package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"roughset-reduct/reduct"
	"roughset-reduct/reduct/report"
	"roughset-reduct/rock-share/base/config"
	"roughset-reduct/rock-share/base/logger"
	"roughset-reduct/rock-share/global/enum"
)

type RunOpts struct {
	table     string
	decision  string
	configDir string
	deviation float64
	capacity  string
	direction string
	measure   string
	workers   int
	output    string
	format    string
	graph     bool
	quiet     bool
}

var runopts = &RunOpts{}

func NewRunCmd() *cobra.Command {

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Compute core and reduct of a csv table",
		Long:  `Compute core and reduct of a csv table; flags that are set override the config file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := runConfig(cmd)
			if err != nil {
				return err
			}
			result, _, err := reduct.RunTable(cmd.Context(), runopts.table, runopts.decision, conf)
			if err != nil {
				return err
			}
			p, err := report.Write(conf.ResultDir, conf.ResultFormat, result)
			if err != nil {
				return err
			}
			if !runopts.quiet {
				report.PrintTable(result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	runCmd.Flags().StringVarP(&runopts.table, "table", "t", "", "csv decision table, first line is the header")
	runCmd.Flags().StringVarP(&runopts.decision, "decision", "d", "", "name of the decision column")
	runCmd.Flags().StringVarP(&runopts.configDir, "config", "c", "", "directory containing config.yml")
	runCmd.Flags().Float64Var(&runopts.deviation, "deviation", 0, "dependency difference treated as equal")
	runCmd.Flags().StringVar(&runopts.capacity, "capacity", "", "group capacity expression of n, e.g. sqrt(n)")
	runCmd.Flags().StringVar(&runopts.direction, "direction", "", "forward or reverse")
	runCmd.Flags().StringVar(&runopts.measure, "measure", "", "dependency or positive")
	runCmd.Flags().IntVarP(&runopts.workers, "workers", "w", 0, "goroutines evaluating candidates")
	runCmd.Flags().StringVarP(&runopts.output, "output", "o", "", "result directory")
	runCmd.Flags().StringVar(&runopts.format, "format", "", "result format, yaml or csv")
	runCmd.Flags().BoolVar(&runopts.graph, "graph", false, "write the partition tree as a dot file")
	runCmd.Flags().BoolVarP(&runopts.quiet, "quiet", "q", false, "do not print the result table")
	_ = runCmd.MarkFlagRequired("table")
	_ = runCmd.MarkFlagRequired("decision")
	return runCmd
}

// runConfig 默认值 < 配置文件 < 命令行参数
func runConfig(cmd *cobra.Command) (reduct.Config, error) {
	conf := reduct.DefaultConfig()
	if runopts.configDir != "" {
		all, err := config.LoadConfig(runopts.configDir)
		if err != nil {
			return conf, err
		}
		if err = logger.InitLogger(all.LoggerOptions()); err != nil {
			return conf, err
		}
		if conf, err = reduct.ConfigFrom(all.Reduct); err != nil {
			return conf, err
		}
	}
	var err error
	flags := cmd.Flags()
	if flags.Changed("deviation") {
		conf.Deviation = runopts.deviation
	}
	if flags.Changed("capacity") {
		conf.CapacityExpression = runopts.capacity
	}
	if flags.Changed("direction") {
		if conf.Direction, err = enum.ParseDirection(runopts.direction); err != nil {
			return conf, err
		}
	}
	if flags.Changed("measure") {
		if conf.Measure, err = enum.ParseMeasure(runopts.measure); err != nil {
			return conf, err
		}
	}
	if flags.Changed("workers") {
		conf.WorkerNum = runopts.workers
	}
	if flags.Changed("output") {
		conf.ResultDir = runopts.output
	}
	if flags.Changed("format") {
		conf.ResultFormat = runopts.format
	}
	if flags.Changed("graph") {
		conf.EnableGraph = runopts.graph
	}
	return conf, nil
}

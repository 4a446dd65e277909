package report

import (
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/LinkinStars/golang-util/gu"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
	"roughset-reduct/reduct_config"
	"roughset-reduct/rock-share/base/logger"
	model "roughset-reduct/rock-share/global/model/reduct"
	"roughset-reduct/utils"
)

// PrintTable 结果表打印到stderr
func PrintTable(result *model.ReductResult) {
	RenderTable(os.Stderr, result)
}

func RenderTable(w io.Writer, result *model.ReductResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Item", Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMin: 16},
		{Name: "Value", AlignHeader: text.AlignCenter, WidthMax: 70},
	})
	t.SetTitle("REDUCT RESULT")
	t.AppendHeader(table.Row{"Item", "Value"})
	t.AppendRow(table.Row{"table", (*result).Table})
	t.AppendRow(table.Row{"decision", (*result).Decision})
	t.AppendRow(table.Row{"instances", (*result).InstanceNum})
	t.AppendRow(table.Row{"attributes", (*result).AttributeNum})
	t.AppendRow(table.Row{"classes", (*result).ClassNum})
	t.AppendSeparator()
	t.AppendRow(table.Row{"direction", (*result).Direction})
	t.AppendRow(table.Row{"measure", (*result).Measure})
	t.AppendRow(table.Row{"deviation", utils.GetInterfaceToString((*result).Deviation)})
	t.AppendSeparator()
	t.AppendRow(table.Row{"core", strings.Join((*result).Core, ", ")})
	t.AppendRow(table.Row{"reduct", strings.Join((*result).Reduct, ", ")})
	if len((*result).Removed) > 0 {
		t.AppendRow(table.Row{"removed", strings.Join((*result).Removed, ", ")})
	}
	t.AppendRow(table.Row{"dependency", fmt.Sprintf("%.6f / %.6f", (*result).Dependency, (*result).FullDependency)})
	t.AppendRow(table.Row{"evaluations", fmt.Sprintf("%d (cache hits %d)", (*result).Evaluations, (*result).CacheHits)})
	t.AppendSeparator()
	t.AppendRow(table.Row{"core time", fmt.Sprintf("%dms", (*result).CoreTime)})
	t.AppendRow(table.Row{"reduct time", fmt.Sprintf("%dms", (*result).ReductTime)})
	t.AppendRow(table.Row{"spent time", fmt.Sprintf("%dms", (*result).SpentTime)})
	if (*result).GraphPath != "" {
		t.AppendRow(table.Row{"graph", (*result).GraphPath})
	}
	t.Render()
}

// Write 按format把结果写到dir下，文件名是taskId，返回文件路径
func Write(dir, format string, result *model.ReductResult) (string, error) {
	if err := gu.CreateDirIfNotExist(dir); err != nil {
		logger.Errorf("create result dir %s failed, err: %v", dir, err)
		return "", err
	}
	name := strconv.FormatInt((*result).TaskId, 10)
	switch format {
	case reduct_config.ResultCsv:
		p := path.Join(dir, name+".csv")
		(*result).ResultPath = p
		return p, utils.CreateCsv(p, csvRows(result))
	case reduct_config.ResultYaml, "":
		p := path.Join(dir, name+".yml")
		(*result).ResultPath = p
		return p, WriteYaml(p, result)
	default:
		return "", fmt.Errorf("%w: result format %s", utils.ErrParameter, format)
	}
}

func WriteYaml(p string, result *model.ReductResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	if err = os.WriteFile(p, data, 0644); err != nil {
		logger.Errorf("write result %s failed, err: %v", p, err)
		return err
	}
	return nil
}

func ReadYaml(p string) (*model.ReductResult, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	result := &model.ReductResult{}
	if err = yaml.Unmarshal(data, result); err != nil {
		return nil, err
	}
	return result, nil
}

// csvRows 一个属性一行
func csvRows(result *model.ReductResult) [][]string {
	data := [][]string{{"attribute", "name", "core", "reduct"}}
	core := make(map[int]bool, len((*result).CoreAttrs))
	for _, attr := range (*result).CoreAttrs {
		core[attr] = true
	}
	for i, attr := range (*result).ReductAttrs {
		data = append(data, []string{
			strconv.Itoa(attr),
			(*result).Reduct[i],
			strconv.FormatBool(core[attr]),
			"true",
		})
	}
	return data
}

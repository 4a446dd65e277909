package storage_utils

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"roughset-reduct/reduct_config"
	"roughset-reduct/rock-share/base/logger"
	"roughset-reduct/utils"
)

// EncodedTable 编码后的决策表，Columns[0]是决策列，Rows的每一行和Columns对齐
type EncodedTable struct {
	Columns     []string
	Rows        [][]int
	Index2Value []map[int]string // Index2Value 每一列 索引值->原始值
}

// ColumnName 属性编号对应的列名，0是决策列
func (t *EncodedTable) ColumnName(attr int) string {
	return (*t).Columns[attr]
}

// AttributeNum 条件属性的个数
func (t *EncodedTable) AttributeNum() int {
	return len((*t).Columns) - 1
}

// EncodeTable 把字符串表编码成int。decision列挪到下标0，其余列保持原来的先后次序。
// 全部非空值都是数字的列按数值排序后的次序编码，其余的列按第一次出现的次序编码。
// 空字符串认为是缺失值，索引值是NilIndex。
func EncodeTable(header []string, records [][]string, decision string) (*EncodedTable, error) {
	decisionIndex := -1
	for i, name := range header {
		if name == decision {
			decisionIndex = i
			break
		}
	}
	if decisionIndex < 0 {
		return nil, fmt.Errorf("%w: %s", utils.ErrDecisionNotFound, decision)
	}
	order := make([]int, 0, len(header))
	order = append(order, decisionIndex)
	for i := range header {
		if i != decisionIndex {
			order = append(order, i)
		}
	}

	table := &EncodedTable{
		Columns:     make([]string, len(order)),
		Rows:        make([][]int, len(records)),
		Index2Value: make([]map[int]string, len(order)),
	}
	for i := range (*table).Rows {
		if len(records[i]) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d", utils.ErrParameter, i+1, len(records[i]), len(header))
		}
		(*table).Rows[i] = make([]int, len(order))
	}
	for col, srcIndex := range order {
		values := make([]string, len(records))
		for i, record := range records {
			values[i] = strings.TrimSpace(record[srcIndex])
		}
		indexes, index2Value := GetColumnValueIndexes(values)
		for i, index := range indexes {
			(*table).Rows[i][col] = index
		}
		(*table).Columns[col] = header[srcIndex]
		(*table).Index2Value[col] = index2Value
	}
	logger.Debugf("[encode] %d rows, %d condition attributes, decision %s", len(records), len(order)-1, decision)
	return table, nil
}

// GetColumnValueIndexes 计算一列的索引值，以及索引值->值的映射
func GetColumnValueIndexes(values []string) ([]int, map[int]string) {
	index2Value := map[int]string{reduct_config.NilIndex: ""}
	value2Index := map[string]int{"": reduct_config.NilIndex}

	distinct := UniqueArrayFilterEmpty(values)
	if numbers, ok := parseNumbers(distinct); ok {
		sort.SliceStable(distinct, func(i, j int) bool {
			return numbers[distinct[i]] < numbers[distinct[j]]
		})
	}
	for orderIndex, value := range distinct {
		value2Index[value] = orderIndex
		index2Value[orderIndex] = value
	}

	indexes := make([]int, len(values))
	for i, value := range values {
		indexes[i] = value2Index[value]
	}
	return indexes, index2Value
}

// parseNumbers 全部能转成数字时返回 值->数字
func parseNumbers(values []string) (map[string]float64, bool) {
	numbers := make(map[string]float64, len(values))
	for _, value := range values {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, false
		}
		numbers[value] = f
	}
	return numbers, true
}

// UniqueArrayFilterEmpty 去重并去掉空字符串，保留第一次出现的顺序
func UniqueArrayFilterEmpty(arr []string) []string {
	distinct := utils.Distinct(arr)
	result := distinct[:0]
	for _, value := range distinct {
		if value != "" {
			result = append(result, value)
		}
	}
	return result
}

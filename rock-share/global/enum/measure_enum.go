package enum

import (
	"fmt"
	"strings"

	"roughset-reduct/utils"
)

// Measure 依赖度的计算口径
type Measure string

const (
	// MeasureDependency 正域加负域，边界类为空时为1
	MeasureDependency Measure = "dependency"
	// MeasurePositive 只算一致的正域
	MeasurePositive Measure = "positive"
)

func ParseMeasure(p string) (Measure, error) {
	switch m := Measure(strings.ToLower(strings.TrimSpace(p))); m {
	case MeasureDependency, MeasurePositive:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown measure %q", utils.ErrParameter, p)
	}
}

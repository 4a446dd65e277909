package enum

import (
	"fmt"
	"strings"

	"roughset-reduct/utils"
)

// Direction 属性处理策略取检查组的方向
type Direction string

const (
	// Forward 从属性数组头部开始
	Forward Direction = "forward"
	// Reverse 从属性数组尾部开始
	Reverse Direction = "reverse"
)

// ParseDirection 不区分大小写，不认识的方向返回 utils.ErrParameter
func ParseDirection(p string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(p))); d {
	case Forward, Reverse:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unknown direction %q", utils.ErrParameter, p)
	}
}

package strategy

import (
	"roughset-reduct/rock-share/global/enum"
)

// New 按方向构造策略
func New(direction enum.Direction, attrs []int, capacityFn CapacityFunc) AttributeProcessStrategy {
	if direction == enum.Reverse {
		return NewReverse(attrs, capacityFn)
	}
	return NewForward(attrs, capacityFn)
}

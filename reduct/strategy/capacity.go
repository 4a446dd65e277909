package strategy

import (
	"errors"
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
	"roughset-reduct/reduct_config"
	"roughset-reduct/utils"
)

// CapacityFunc 根据剩余未处理的属性数给出下一组要检查的属性数
type CapacityFunc func(remaining int) int

// SqrtCapacity 取剩余属性数的平方根，向上取整
func SqrtCapacity(remaining int) int {
	return int(math.Ceil(math.Sqrt(float64(remaining))))
}

// FixedCapacity 每组固定size个属性
func FixedCapacity(size int) CapacityFunc {
	return func(int) int {
		return size
	}
}

// capacityFunctions capacity表达式里可以用的函数，参数都是float64
var capacityFunctions = map[string]govaluate.ExpressionFunction{
	"sqrt":  unaryFunc(math.Sqrt),
	"log2":  unaryFunc(math.Log2),
	"ceil":  unaryFunc(math.Ceil),
	"floor": unaryFunc(math.Floor),
	"min": func(args ...interface{}) (interface{}, error) {
		a, b, err := binaryArgs(args)
		if err != nil {
			return nil, err
		}
		return math.Min(a, b), nil
	},
	"max": func(args ...interface{}) (interface{}, error) {
		a, b, err := binaryArgs(args)
		if err != nil {
			return nil, err
		}
		return math.Max(a, b), nil
	},
}

func unaryFunc(f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, but got %d", len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("expected number argument, but got '%v'", args[0])
		}
		return f(v), nil
	}
}

func binaryArgs(args []interface{}) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected 2 arguments, but got %d", len(args))
	}
	a, ok1 := args[0].(float64)
	b, ok2 := args[1].(float64)
	if !ok1 || !ok2 {
		return 0, 0, errors.New("expected number arguments")
	}
	return a, b, nil
}

// ExpressionCapacity 用表达式定义capacity，变量n是剩余属性数，例如"sqrt(n)"、"max(1, n/4)"。
// 构造时会用几个n试算一遍，表达式有问题直接返回错误；试算通过后运行时再出错属于编程错误，直接panic。
func ExpressionCapacity(expression string) (CapacityFunc, error) {
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(expression, capacityFunctions)
	if err != nil {
		return nil, fmt.Errorf("%w: capacity expression '%s': %v", utils.ErrParameter, expression, err)
	}
	eval := func(remaining int) (int, error) {
		result, err := expr.Evaluate(map[string]interface{}{reduct_config.CapacityVariable: float64(remaining)})
		if err != nil {
			return 0, err
		}
		v, ok := result.(float64)
		if !ok {
			return 0, fmt.Errorf("expected number result, but got '%v'", result)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("expected finite result, but got '%v'", v)
		}
		return int(math.Ceil(v)), nil
	}
	for _, n := range []int{1, 2, 16} {
		if _, err := eval(n); err != nil {
			return nil, fmt.Errorf("%w: capacity expression '%s' with n=%d: %v", utils.ErrParameter, expression, n, err)
		}
	}
	return func(remaining int) int {
		v, err := eval(remaining)
		if err != nil {
			panic(fmt.Sprintf("capacity expression '%s' failed with n=%d: %v", expression, remaining, err))
		}
		return v
	}, nil
}

// clampCapacity capacity只截断到[1, remaining]，remaining为0时返回0
func clampCapacity(fn CapacityFunc, remaining int) int {
	if remaining <= 0 {
		return 0
	}
	c := fn(remaining)
	if c < 1 {
		c = 1
	}
	if c > remaining {
		c = remaining
	}
	return c
}

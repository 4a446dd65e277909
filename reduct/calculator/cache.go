package calculator

import (
	"github.com/orcaman/concurrent-map"
	"github.com/yourbasic/bit"
	"roughset-reduct/rock-share/global/enum"
)

// Cache 属性子集到依赖度的缓存，可以在多个协程之间共享。
// 不同口径算出的值分开存放，同一个缓存可以给不同measure的搜索共用。
type Cache struct {
	values cmap.ConcurrentMap
}

func NewCache() *Cache {
	return &Cache{values: cmap.New()}
}

// Key 口径加属性子集的缓存key，和属性的顺序无关
func Key(measure enum.Measure, attrs *bit.Set) string {
	return string(measure) + ":" + attrs.String()
}

func (c *Cache) Get(measure enum.Measure, attrs *bit.Set) (float64, bool) {
	v, ok := (*c).values.Get(Key(measure, attrs))
	if !ok {
		return 0, false
	}
	return v.(float64), true
}

func (c *Cache) Set(measure enum.Measure, attrs *bit.Set, value float64) {
	(*c).values.Set(Key(measure, attrs), value)
}

func (c *Cache) Count() int {
	return (*c).values.Count()
}

// GetOrCalculate 缓存里没有时调用calculate，并把结果放进缓存，hit表示是否命中。
// 并发时calculate可能被调用多次，结果相同。
func (c *Cache) GetOrCalculate(measure enum.Measure, attrs *bit.Set, calculate func() (float64, error)) (value float64, hit bool, err error) {
	if v, ok := c.Get(measure, attrs); ok {
		return v, true, nil
	}
	value, err = calculate()
	if err != nil {
		return 0, false, err
	}
	c.Set(measure, attrs, value)
	return value, false, nil
}

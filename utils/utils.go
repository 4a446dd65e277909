package utils

import (
	"encoding/json"
	"strconv"
)

type Number interface {
	int | int64 | int32 | uint32 | uint64 | float64
}

func Max[N Number](a, b N) N {
	if a > b {
		return a
	} else {
		return b
	}
}

func Min[N Number](a, b N) N {
	if a < b {
		return a
	} else {
		return b
	}
}

// Distinct 去重，保留第一次出现的顺序
func Distinct[T comparable](s []T) []T {
	var r = make([]T, 0, len(s))
	set := map[T]struct{}{}
	for i := range s {
		if _, ok := set[s[i]]; !ok {
			r = append(r, s[i])
			set[s[i]] = struct{}{}
		}
	}
	return r
}

func GetInterfaceToString(value interface{}) string {
	// interface 转 string
	var key string
	if value == nil {
		return key
	}

	switch v := value.(type) {
	case float64:
		key = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		key = strconv.FormatFloat(float64(v), 'f', -1, 64)
	case int:
		key = strconv.Itoa(v)
	case int32:
		key = strconv.Itoa(int(v))
	case int64:
		key = strconv.FormatInt(v, 10)
	case uint64:
		key = strconv.FormatUint(v, 10)
	case bool:
		key = strconv.FormatBool(v)
	case string:
		key = v
	case []byte:
		key = string(v)
	default:
		newValue, _ := json.Marshal(value)
		key = string(newValue)
	}

	return key
}

package reduct

// ReductResult 一次约简的结果。属性同时给出编号和列名，编号从1开始，0是决策列
type ReductResult struct {
	TaskId         int64    `json:"task_id" yaml:"task_id"`
	Table          string   `json:"table" yaml:"table"`
	Decision       string   `json:"decision" yaml:"decision"`
	InstanceNum    int      `json:"instance_num" yaml:"instance_num"`
	AttributeNum   int      `json:"attribute_num" yaml:"attribute_num"`
	ClassNum       int      `json:"class_num" yaml:"class_num"`
	Direction      string   `json:"direction" yaml:"direction"`
	Measure        string   `json:"measure" yaml:"measure"`
	Deviation      float64  `json:"deviation" yaml:"deviation"`
	CoreAttrs      []int    `json:"core_attrs" yaml:"core_attrs"`
	Core           []string `json:"core" yaml:"core"`
	ReductAttrs    []int    `json:"reduct_attrs" yaml:"reduct_attrs"`
	Reduct         []string `json:"reduct" yaml:"reduct"`
	Removed        []string `json:"removed,omitempty" yaml:"removed,omitempty"`
	Dependency     float64  `json:"dependency" yaml:"dependency"`
	FullDependency float64  `json:"full_dependency" yaml:"full_dependency"`
	Evaluations    int      `json:"evaluations" yaml:"evaluations"`
	CacheHits      int      `json:"cache_hits" yaml:"cache_hits"`
	CoreTime       int64    `json:"core_time_ms" yaml:"core_time_ms"`
	ReductTime     int64    `json:"reduct_time_ms" yaml:"reduct_time_ms"`
	SpentTime      int64    `json:"spent_time_ms" yaml:"spent_time_ms"`
	GraphPath      string   `json:"graph_path,omitempty" yaml:"graph_path,omitempty"`
	ResultPath     string   `json:"result_path,omitempty" yaml:"result_path,omitempty"`
}

// Names 把属性编号换成列名
func Names(attrs []int, columnName func(int) string) []string {
	names := make([]string, len(attrs))
	for i, attr := range attrs {
		names[i] = columnName(attr)
	}
	return names
}

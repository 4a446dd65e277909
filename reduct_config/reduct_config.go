package reduct_config

const GinPort = "19123"

const ProjectName = "roughset-reduct"

// NilIndex nil 值索引，编码后取这个值的属性认为是缺失值
const NilIndex = -1

// capacity表达式中可以使用的变量名，代表剩余未处理的属性数
const CapacityVariable = "n"

// 结果输出的格式
const (
	ResultYaml = "yaml"
	ResultCsv  = "csv"
)

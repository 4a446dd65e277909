package main

type ReductRequest struct {
	Table Table `json:"table" binding:"required"`
	// 以下为空时取配置文件里的值
	Deviation *float64 `json:"deviation"`
	Direction string   `json:"direction"`
	Measure   string   `json:"measure"`
	Capacity  string   `json:"capacity"`
	Graph     *bool    `json:"graph"`
}

type Table struct {
	Path     string `json:"path" binding:"required"`
	Decision string `json:"decision" binding:"required"`
}

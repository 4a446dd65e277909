package utils

import (
	"fmt"
)

type ServiceError struct {
	Code uint32
	Msg  string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ServiceError: code=%d, msg=%s", e.Code, e.Msg)
}

var (
	// business error code: [500000, 600000)
	ErrOpenCsv          = &ServiceError{500001, "open csv error"}
	ErrReadCsv          = &ServiceError{500002, "read csv error"}
	ErrParameter        = &ServiceError{500005, "invalid parameter"}
	ErrColumnNotExist   = &ServiceError{500006, "column not exist"}
	ErrEmptyUniverse    = &ServiceError{500007, "universe is empty"}
	ErrDecisionNotFound = &ServiceError{500008, "decision column not found"}

	// 算法内部的前置条件错误，属于调用方的编程错误，直接返回不做截断
	ErrPrecondition   = &ServiceError{500100, "precondition violated"}
	ErrNotInitialized = &ServiceError{500101, "state not initialized"}
	ErrUnsupported    = &ServiceError{500102, "unsupported operation"}
)

package utils

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/bovinae/common/util"
	"roughset-reduct/rock-share/base/logger"
)

// ReadTable 读取csv，第一行当表头
func ReadTable(ctx context.Context, path string) ([]string, [][]string, error) {
	if _, err := os.Stat(path); err != nil {
		logger.Errorf("open csv %s failed, err: %v", path, err)
		return nil, nil, fmt.Errorf("%w: %s", ErrOpenCsv, path)
	}
	data, err := util.NewCsvClient().ReadCsvFile(ctx, path)
	if err != nil {
		logger.Errorf("read csv %s failed, err: %v", path, err)
		return nil, nil, fmt.Errorf("%w: %s", ErrReadCsv, path)
	}
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: %s has no header", ErrReadCsv, path)
	}
	return data[0], data[1:], nil
}

func CreateCsv(path string, data [][]string) error {
	csvFile, err := os.Create(path)
	if err != nil {
		logger.Errorf("create csv %s failed, err: %v", path, err)
		return err
	}
	defer csvFile.Close()
	csvWriter := csv.NewWriter(csvFile)
	err = csvWriter.WriteAll(data)
	if err != nil {
		logger.Errorf("write csv %s failed, err: %v", path, err)
		return err
	}
	return nil
}

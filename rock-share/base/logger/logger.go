/*
	全局日志。InitLogger之前用的是zap默认的nop logger，算法包和测试可以直接调用而不会有输出。
*/

package logger

import (
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger 初始化全局logger，dsn不为空时额外挂一个sentry core
func InitLogger(opts Options) error {
	core, err := buildCore(opts)
	if err != nil {
		return err
	}
	if opts.SentryDsn != "" {
		client, err := sentry.NewClient(sentry.ClientOptions{Dsn: opts.SentryDsn})
		if err != nil {
			return err
		}
		core = zapcore.NewTee(core, newSentryCore(client))
	}
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	zap.ReplaceGlobals(l)
	// 标准库log也写到zap里
	if _, err := zap.RedirectStdLogAt(l, zapcore.ErrorLevel); err != nil {
		return err
	}
	return nil
}

func Debugf(template string, args ...interface{}) {
	zap.S().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	zap.S().Infof(template, args...)
}

func Info(args ...interface{}) {
	zap.S().Info(args...)
}

func Warnf(template string, args ...interface{}) {
	zap.S().Warnf(template, args...)
}

func Warn(args ...interface{}) {
	zap.S().Warn(args...)
}

func Errorf(template string, args ...interface{}) {
	zap.S().Errorf(template, args...)
}

func Error(args ...interface{}) {
	zap.S().Error(args...)
}

func Sync() {
	_ = zap.L().Sync()
}

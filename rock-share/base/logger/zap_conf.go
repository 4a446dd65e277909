package logger

import (
	"os"
	"path"
	"strings"
	"time"

	"github.com/LinkinStars/golang-util/gu"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// projectName 用于日志文件命名和截短caller路径
var projectName = "roughset-reduct"

// Options InitLogger的参数
type Options struct {
	Level        string        // Level debug/info/warn/error
	ProjectName  string        // ProjectName 日志文件前缀
	Path         string        // Path 日志目录
	MaxAge       time.Duration // MaxAge 单位：天
	RotationTime time.Duration // RotationTime 单位：小时
	RotationSize uint32        // RotationSize 单位：MB
	SentryDsn    string        // SentryDsn 为空时不上报
	Console      bool          // Console 是否同时输出到stderr
}

func newRotateWriter(base, kind string, maxAge, rotationTime time.Duration, rotationSize int64) (*rotatelogs.RotateLogs, error) {
	return rotatelogs.New(
		base+"_"+kind+"_%Y-%m-%d.log",
		rotatelogs.WithLinkName(base+"_"+kind+"_last.log"), // 软链,指向最新日志文件
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(rotationTime),
		rotatelogs.WithRotationSize(rotationSize),
	)
}

// buildCore 文件输出分info和err两份，err只收warn以上
func buildCore(opts Options) (zapcore.Core, error) {
	if len(opts.ProjectName) != 0 {
		projectName = opts.ProjectName
	}
	level := parseLevel(opts.Level)

	maxAge := opts.MaxAge * 24 * time.Hour
	if maxAge == 0 {
		maxAge = 7 * 24 * time.Hour
	}
	rotationTime := opts.RotationTime * time.Hour
	if rotationTime == 0 {
		rotationTime = 24 * time.Hour
	}
	rotationSize := opts.RotationSize
	if rotationSize == 0 {
		rotationSize = 1024 //1G
	}
	rotationBytes := int64(rotationSize) * 1024 * 1024

	if err := gu.CreateDirIfNotExist(opts.Path); err != nil {
		return nil, err
	}
	base := path.Join(opts.Path, projectName)
	errWriter, err := newRotateWriter(base, "err", maxAge, rotationTime, rotationBytes)
	if err != nil {
		return nil, err
	}
	infoWriter, err := newRotateWriter(base, "info", maxAge, rotationTime, rotationBytes)
	if err != nil {
		return nil, err
	}

	errLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl > zapcore.InfoLevel && lvl >= level
	})
	infoLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level
	})

	fileEncodeConfig := zap.NewProductionEncoderConfig()
	fileEncodeConfig.EncodeTime = timeEncoder
	fileEncodeConfig.EncodeCaller = customCallerEncoder
	fileEncoder := zapcore.NewJSONEncoder(fileEncodeConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(fileEncoder, zapcore.AddSync(errWriter), errLevel),
		zapcore.NewCore(fileEncoder, zapcore.AddSync(infoWriter), infoLevel),
	}
	if opts.Console {
		consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
		consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoderConfig.EncodeTime = timeEncoder
		consoleEncoderConfig.EncodeCaller = customCallerEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig), zapcore.Lock(os.Stderr), level))
	}
	return zapcore.NewTee(cores...), nil
}

func parseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// customCallerEncoder 从项目名之后开始打印caller路径
func customCallerEncoder(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	str := caller.String()
	index := strings.Index(str, projectName)
	if index == -1 {
		enc.AppendString(caller.FullPath())
		return
	}
	enc.AppendString(str[index+len(projectName)+1:])
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

package config

import (
	"fmt"
	"os"
	"path"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"roughset-reduct/reduct_config"
	"roughset-reduct/rock-share/base/logger"
)

// all 全部配置索引，配置文件变化时在监控协程里整体替换，读写都要经过 Get / Set
var (
	all   *AllConfig
	allMu sync.RWMutex
)

// Get 当前生效的配置，没有初始化时为nil。返回的配置不要修改
func Get() *AllConfig {
	allMu.RLock()
	defer allMu.RUnlock()
	return all
}

// Set 替换当前生效的配置
func Set(conf *AllConfig) {
	allMu.Lock()
	defer allMu.Unlock()
	all = conf
}

var DefaultPath = "./config"
var DebugPath = "./base/config"

const configType = "yml"

// InitConfig 初始化读取配置文件，读不到直接panic，并监控配置文件的变化
func InitConfig() {
	v, loaded, err := load(DefaultPath)
	if err != nil {
		panic(err)
	}
	Set(loaded)

	// 监控配置文件变化并热加载程序
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		logger.Infof("Config file changed: %s", e.Name)
		reloaded := &AllConfig{}
		if err := v.Unmarshal(reloaded); err != nil {
			logger.Errorf("reload config %s failed, err: %v", e.Name, err)
			return
		}
		Set(reloaded)
	})

	// 这里可以做检查，如果配置文件相关配置项异常亦可以不启动
	fmt.Printf("config file content:\n%+v\n", *loaded)
}

// LoadConfig 读取dir下的config.yml，没有配置的项取reduct_config里的默认值
func LoadConfig(dir string) (*AllConfig, error) {
	_, loaded, err := load(dir)
	return loaded, err
}

func load(dir string) (*viper.Viper, *AllConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType(configType)

	// 读取配置
	if err := v.ReadInConfig(); err != nil {
		return nil, nil, err
	}

	//增量配置
	if os.Getenv("DEBUG") == "true" {
		if err := mergeDebug(v); err != nil {
			return nil, nil, err
		}
	}

	// 配置映射到结构体
	loaded := &AllConfig{}
	if err := v.Unmarshal(loaded); err != nil {
		return nil, nil, err
	}
	return v, loaded, nil
}

// mergeDebug DEBUG=true时用DebugPath下的debug.yml覆盖
func mergeDebug(v *viper.Viper) error {
	debugConfig := path.Join(DebugPath, "debug."+configType)
	exists, err := isExists(debugConfig)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Printf("%s not exists\n", debugConfig)
		return nil
	}
	fmt.Printf("%s exists\n", debugConfig)
	v.SetConfigFile(debugConfig)
	return v.MergeInConfig()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_config.http_port", reduct_config.GinPort)
	v.SetDefault("logger_config.level", "info")
	v.SetDefault("logger_config.path", "./logs")
	v.SetDefault("logger_config.max_age", 7)
	v.SetDefault("logger_config.rotation_time", 24)
	v.SetDefault("logger_config.rotation_size", 1024)
	v.SetDefault("reduct_config.deviation", reduct_config.Deviation)
	v.SetDefault("reduct_config.capacity", reduct_config.CapacityExpression)
	v.SetDefault("reduct_config.direction", string(reduct_config.Direction))
	v.SetDefault("reduct_config.measure", string(reduct_config.Measure))
	v.SetDefault("reduct_config.worker_num", reduct_config.WorkerNum)
	v.SetDefault("reduct_config.max_parallel_candidates", reduct_config.MaxParallelCandidates)
	v.SetDefault("reduct_config.result_dir", reduct_config.ResultDir)
	v.SetDefault("reduct_config.result_format", reduct_config.ResultYaml)
	v.SetDefault("reduct_config.graph", reduct_config.EnableGraph)
}

// AllConfig 全部配置文件
type AllConfig struct {
	Server ServerConfig `mapstructure:"server_config"`
	Logger LoggerConfig `mapstructure:"logger_config"`
	Reduct ReductConfig `mapstructure:"reduct_config"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	HttpPort  string `mapstructure:"http_port"`
	SentryDsn string `mapstructure:"sentry_dsn"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string        `mapstructure:"level"`
	Path         string        `mapstructure:"path"`
	MaxAge       time.Duration `mapstructure:"max_age"`
	RotationTime time.Duration `mapstructure:"rotation_time"`
	RotationSize uint32        `mapstructure:"rotation_size"`
	Console      bool          `mapstructure:"console"`
}

// ReductConfig 约简参数
type ReductConfig struct {
	Deviation             float64 `mapstructure:"deviation"`
	Capacity              string  `mapstructure:"capacity"`
	Direction             string  `mapstructure:"direction"`
	Measure               string  `mapstructure:"measure"`
	WorkerNum             int     `mapstructure:"worker_num"`
	MaxParallelCandidates int     `mapstructure:"max_parallel_candidates"`
	ResultDir             string  `mapstructure:"result_dir"`
	ResultFormat          string  `mapstructure:"result_format"`
	Graph                 bool    `mapstructure:"graph"`
}

// LoggerOptions 由配置生成logger的参数
func (all *AllConfig) LoggerOptions() logger.Options {
	return logger.Options{
		Level:        (*all).Logger.Level,
		ProjectName:  reduct_config.ProjectName,
		Path:         (*all).Logger.Path,
		MaxAge:       (*all).Logger.MaxAge,
		RotationTime: (*all).Logger.RotationTime,
		RotationSize: (*all).Logger.RotationSize,
		SentryDsn:    (*all).Server.SentryDsn,
		Console:      (*all).Logger.Console,
	}
}

// 判断所给文件/文件夹是否存在
func isExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

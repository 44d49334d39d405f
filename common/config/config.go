package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/wooyang2018/corekv/common/utils"
	"github.com/wooyang2018/corekv/storage"
	"github.com/wooyang2018/corekv/storage/leveldb"
)

// DBConf is the config of a database opened by the store
type DBConf struct {
	// Program running root directory
	RootPath string `yaml:"rootPath,omitempty"`
	// database directory, relative to RootPath unless absolute
	Path string `yaml:"path,omitempty"`
	// storage engine name
	Engine string `yaml:"engine,omitempty"`
	// create the database if missing
	CreateIfMissing bool `yaml:"createIfMissing,omitempty"`
	// fail if the database already exists
	ErrorIfExists bool `yaml:"errorIfExists,omitempty"`
	// report corruption as soon as it is detected
	ParanoidChecks bool `yaml:"paranoidChecks,omitempty"`
	// sizes accept "4MiB" style strings
	WriteBuffer int `yaml:"writeBuffer,omitempty"`
	BlockCache  int `yaml:"blockCache,omitempty"`
	BlockSize   int `yaml:"blockSize,omitempty"`
	// keys between restart points for delta encoding
	BlockRestartInterval int `yaml:"blockRestartInterval,omitempty"`
	// capacity of the open files cache
	MaxOpenFiles int `yaml:"maxOpenFiles,omitempty"`
	// snappy or none
	Compression string `yaml:"compression,omitempty"`
	// bits per key of the bloom filter, 0 disables it
	BloomBits int `yaml:"bloomBits,omitempty"`
	// log config file name, relative to the db config file
	LogConf string `yaml:"logConf,omitempty"`
	// log file directory
	LogDir string `yaml:"logDir,omitempty"`
	// metric switch
	MetricSwitch bool `yaml:"metricSwitch,omitempty"`

	confDir string
}

func LoadDBConf(cfgFile string) (*DBConf, error) {
	cfg := GetDefDBConf()
	err := cfg.loadConf(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load db config failed.err:%s", err)
	}

	// 修改根目录。优先级：1:KV_ROOT_PATH 2:配置文件设置 3:当前bin文件上级目录
	rtPath := os.Getenv("KV_ROOT_PATH")
	if rtPath != "" && utils.FileIsExist(rtPath) {
		cfg.RootPath = rtPath
	}

	return cfg, nil
}

func GetDefDBConf() *DBConf {
	return &DBConf{
		// 默认设置为当前执行目录
		RootPath:        utils.GetCurRootDir(),
		Path:            "data/kv",
		Engine:          leveldb.EngineName,
		CreateIfMissing: true,
		Compression:     storage.CompressionSnappy,
		BloomBits:       10,
		LogConf:         "log.yaml",
		LogDir:          "logs",
		MetricSwitch:    false,
	}
}

// Options converts the config to engine options.
func (t *DBConf) Options() *storage.Options {
	return &storage.Options{
		CreateIfMissing:      t.CreateIfMissing,
		ErrorIfExists:        t.ErrorIfExists,
		ParanoidChecks:       t.ParanoidChecks,
		WriteBuffer:          t.WriteBuffer,
		MaxOpenFiles:         t.MaxOpenFiles,
		BlockSize:            t.BlockSize,
		BlockRestartInterval: t.BlockRestartInterval,
		Compression:          t.Compression,
		BlockCache:           t.BlockCache,
		BloomBits:            t.BloomBits,
	}
}

func (t *DBConf) GenDirAbsPath(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(t.RootPath, dir)
}

// DBPath returns the absolute database directory.
func (t *DBConf) DBPath() string {
	return t.GenDirAbsPath(t.Path)
}

// LogDirPath returns the absolute log directory.
func (t *DBConf) LogDirPath() string {
	return t.GenDirAbsPath(t.LogDir)
}

// LogConfPath returns the log config file, or "" when none is set.
func (t *DBConf) LogConfPath() string {
	if t.LogConf == "" || filepath.IsAbs(t.LogConf) {
		return t.LogConf
	}
	return filepath.Join(t.confDir, t.LogConf)
}

func (t *DBConf) loadConf(cfgFile string) error {
	if cfgFile == "" || !utils.FileIsExist(cfgFile) {
		return fmt.Errorf("config file set error.path:%s", cfgFile)
	}

	viperObj := viper.New()
	viperObj.SetConfigFile(cfgFile)
	err := viperObj.ReadInConfig()
	if err != nil {
		return fmt.Errorf("read config failed.path:%s,err:%v", cfgFile, err)
	}

	if err = viperObj.Unmarshal(t, func(config *mapstructure.DecoderConfig) {
		config.TagName = "yaml"
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook, leveldb.SizeHookFunc())
	}); err != nil {
		return fmt.Errorf("unmatshal config failed.path:%s,err:%v", cfgFile, err)
	}
	t.confDir = filepath.Dir(cfgFile)

	return nil
}

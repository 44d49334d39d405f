package config

import (
	"path/filepath"

	xconf "github.com/wooyang2018/corekv/common/config"
	"github.com/wooyang2018/corekv/common/utils"
	"github.com/wooyang2018/corekv/logger"
)

var dir = utils.GetCurFileDir()

// GetMockDBConf loads conf/db.yaml with RootPath set to this directory.
func GetMockDBConf(paths ...string) (*xconf.DBConf, error) {
	path := "conf/db.yaml"
	if len(paths) > 0 {
		path = paths[0]
	}

	dconf, err := xconf.LoadDBConf(filepath.Join(dir, path))
	if err != nil {
		return nil, err
	}
	dconf.RootPath = dir

	return dconf, nil
}

func GetDBConfFilePath() string {
	return filepath.Join(dir, "conf/db.yaml")
}

func GetLogConfFilePath() string {
	return filepath.Join(dir, "conf/log.yaml")
}

func InitFakeLogger() {
	confFile := filepath.Join(dir, "conf/log.yaml")
	logDir := filepath.Join(dir, "data/logger")
	logger.InitMLog(confFile, logDir)
}

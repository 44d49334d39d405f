package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wooyang2018/corekv/storage"
)

func writeConf(t *testing.T, data string) string {
	t.Helper()
	cfgFile := filepath.Join(t.TempDir(), "db.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(data), 0644))
	return cfgFile
}

func TestLoadDBConf(t *testing.T) {
	cfgFile := writeConf(t, `
rootPath: /var/lib/corekv
path: chain
paranoidChecks: true
writeBuffer: 4MiB
blockCache: 8MiB
blockSize: 4096
maxOpenFiles: 64
compression: none
metricSwitch: true
`)
	t.Setenv("KV_ROOT_PATH", "")

	cfg, err := LoadDBConf(cfgFile)
	require.NoError(t, err)
	require.Equal(t, "/var/lib/corekv/chain", cfg.DBPath())
	require.Equal(t, "/var/lib/corekv/logs", cfg.LogDirPath())
	require.Equal(t, filepath.Join(filepath.Dir(cfgFile), "log.yaml"), cfg.LogConfPath())
	require.True(t, cfg.MetricSwitch)

	opts := cfg.Options()
	require.Equal(t, &storage.Options{
		CreateIfMissing: true,
		ParanoidChecks:  true,
		WriteBuffer:     4 << 20,
		MaxOpenFiles:    64,
		BlockSize:       4096,
		Compression:     storage.CompressionNone,
		BlockCache:      8 << 20,
		BloomBits:       10,
	}, opts)
}

func TestLoadDBConfRootFromEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv("KV_ROOT_PATH", root)

	cfg, err := LoadDBConf(writeConf(t, "path: /abs/kv\n"))
	require.NoError(t, err)
	require.Equal(t, root, cfg.RootPath)
	require.Equal(t, "/abs/kv", cfg.DBPath())
}

func TestLoadDBConfErrors(t *testing.T) {
	_, err := LoadDBConf("")
	require.Error(t, err)

	_, err = LoadDBConf(writeConf(t, "blockCache: lots\n"))
	require.Error(t, err)
}

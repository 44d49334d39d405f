package logger

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLvlFromString(t *testing.T) {
	cases := map[string]Lvl{
		"fatal": LvlFatal,
		"error": LvlError,
		"warn":  LvlWarn,
		"info":  LvlInfo,
		"debug": LvlDebug,
		"trace": LvlDebug,
		"xx":    LvlDebug,
	}
	for name, lvl := range cases {
		require.Equal(t, lvl, LvlFromString(name), name)
	}
}

func TestLoadLogConf(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "log.yaml")
	data := "module: kvtest\nfilename: kvtest\nfmt: json\nlevel: debug\nconsole: false\n"
	require.NoError(t, os.WriteFile(cfgFile, []byte(data), 0644))

	cfg, err := LoadLogConf(cfgFile)
	require.NoError(t, err)
	require.Equal(t, "kvtest", cfg.Module)
	require.Equal(t, "json", cfg.Fmt)
	require.Equal(t, "debug", cfg.Level)
	require.False(t, cfg.Console)
	// unset keys keep the defaults
	require.True(t, cfg.File)
	require.Equal(t, 256*1024, cfg.BufSize)

	_, err = LoadLogConf(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestOpenMLogBadFmt(t *testing.T) {
	cfg := GetDefLogConf()
	cfg.Fmt = "xml"
	_, err := OpenMLog(cfg, t.TempDir())
	require.Error(t, err)
}

func TestOpenMLogFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := GetDefLogConf()
	cfg.Console = false
	cfg.Async = true
	cfg.Level = "debug"

	drv, err := OpenMLog(cfg, dir)
	require.NoError(t, err)
	drv.Info("opened", "path", dir)
	drv.Warn("slow compaction", "seconds", 3)
	require.NoError(t, drv.(*zapDriver).Sync())

	info, err := os.ReadFile(filepath.Join(dir, "corekv.log"))
	require.NoError(t, err)
	require.Contains(t, string(info), "opened")
	require.Contains(t, string(info), "slow compaction")
	require.Contains(t, string(info), `"module"`)
	require.Contains(t, string(info), cfg.Module)

	wf, err := os.ReadFile(filepath.Join(dir, "corekv.log.wf"))
	require.NoError(t, err)
	require.NotContains(t, string(wf), "opened")
	require.Contains(t, string(wf), "slow compaction")
}

func TestZeroLoggerIsNoop(t *testing.T) {
	var lg LoggerImpl
	lg.SetCommField("k", "v")
	lg.SetInfoField("k", "v")
	lg.Info("dropped")
	lg.Fatal("dropped")
	require.Empty(t, lg.GetLogId())
}

type recordDriver struct {
	mu   sync.Mutex
	recs [][]interface{}
}

func (d *recordDriver) record(ctx []interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recs = append(d.recs, ctx)
}

func (d *recordDriver) Fatal(msg string, ctx ...interface{}) { d.record(ctx) }
func (d *recordDriver) Error(msg string, ctx ...interface{}) { d.record(ctx) }
func (d *recordDriver) Warn(msg string, ctx ...interface{})  { d.record(ctx) }
func (d *recordDriver) Info(msg string, ctx ...interface{})  { d.record(ctx) }
func (d *recordDriver) Debug(msg string, ctx ...interface{}) { d.record(ctx) }

func newTestLogger(drv LogDriver, lvl Lvl) *LoggerImpl {
	return &LoggerImpl{
		logger:       drv,
		logId:        "abc",
		pid:          os.Getpid(),
		commFields:   make([]interface{}, 0),
		commFieldLck: &sync.RWMutex{},
		infoFields:   make([]interface{}, 0),
		infoFieldLck: &sync.RWMutex{},
		callDepth:    DefaultCallDepth,
		minLvl:       lvl,
		subMod:       "iterator",
	}
}

func TestLoggerFields(t *testing.T) {
	drv := &recordDriver{}
	lg := newTestLogger(drv, LvlInfo)

	lg.SetCommField("db", "/tmp/kv")
	lg.SetInfoField("cost", 3)
	lg.Info("first", "k", 1)
	lg.Info("second", "odd")
	lg.Debug("filtered")
	lg.Warn("override", CommFieldLogId, "xyz")

	require.Len(t, drv.recs, 3)
	first := drv.recs[0]
	require.Equal(t, []interface{}{CommFieldLogId, "abc", CommFieldSubMod, "iterator"}, first[:4])
	require.Equal(t, []interface{}{"db", "/tmp/kv", "cost", 3, "k", 1}, first[8:])

	// info fields are written once
	second := drv.recs[1]
	require.Equal(t, []interface{}{"db", "/tmp/kv", "unknow", "odd"}, second[8:])

	third := drv.recs[2]
	require.Equal(t, "xyz", third[1])
}

func TestLoggerConcurrent(t *testing.T) {
	drv := &recordDriver{}
	lg := newTestLogger(drv, LvlDebug)

	wg := &sync.WaitGroup{}
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(num int) {
			defer wg.Done()
			lg.SetInfoField("test key"+strconv.Itoa(num), num)
			lg.Info("test info", "a", true, "b", 1, "num", num)
			lg.Debug("test debug", "a", 1, "b", 2, "c", 3, "num", num)
			lg.Warn("test warn", 1, 2)
		}(i)
	}
	wg.Wait()
	require.Len(t, drv.recs, 9)
}

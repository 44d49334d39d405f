package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapDriver adapts a sugared zap logger to LogDriver.
type zapDriver struct {
	sugar *zap.SugaredLogger
	stops []func() error
}

// Fatal records never terminate the process: they are written at DPanic
// level, which only panics in development loggers.
func (d *zapDriver) Fatal(msg string, ctx ...interface{}) { d.sugar.DPanicw(msg, ctx...) }
func (d *zapDriver) Error(msg string, ctx ...interface{}) { d.sugar.Errorw(msg, ctx...) }
func (d *zapDriver) Warn(msg string, ctx ...interface{})  { d.sugar.Warnw(msg, ctx...) }
func (d *zapDriver) Info(msg string, ctx ...interface{})  { d.sugar.Infow(msg, ctx...) }
func (d *zapDriver) Debug(msg string, ctx ...interface{}) { d.sugar.Debugw(msg, ctx...) }

// Sync flushes buffered records and stops the flush goroutines.
func (d *zapDriver) Sync() error {
	err := d.sugar.Sync()
	for _, stop := range d.stops {
		if e := stop(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

func zapLevel(lvl Lvl) zapcore.Level {
	switch lvl {
	case LvlFatal:
		return zapcore.DPanicLevel
	case LvlError:
		return zapcore.ErrorLevel
	case LvlWarn:
		return zapcore.WarnLevel
	case LvlInfo:
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// OpenMLog create and open log stream using LogConf
func OpenMLog(lc *LogConf, logDir string) (LogDriver, error) {
	var enc zapcore.Encoder
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	switch lc.Fmt {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "logfmt", "":
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("log fmt error.fmt:%s", lc.Fmt)
	}

	minLvl := zapLevel(LvlFromString(lc.Level))
	// prints log level between `minLvl` to Info to base log
	normal := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= minLvl })
	// prints log level greater or equal to Warn to wf log
	warn := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= minLvl && l >= zapcore.WarnLevel })

	d := &zapDriver{}
	var cores []zapcore.Core
	if lc.File {
		if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("create log dir failed.dir:%s,err:%v", logDir, err)
		}
		nmSyncer, err := d.fileSyncer(filepath.Join(logDir, lc.Filename+".log"), lc)
		if err != nil {
			return nil, err
		}
		wfSyncer, err := d.fileSyncer(filepath.Join(logDir, lc.Filename+".log.wf"), lc)
		if err != nil {
			return nil, err
		}
		cores = append(cores,
			zapcore.NewCore(enc, nmSyncer, normal),
			zapcore.NewCore(enc.Clone(), wfSyncer, warn))
	}
	if lc.Console {
		cores = append(cores, zapcore.NewCore(enc.Clone(), zapcore.Lock(os.Stderr), normal))
	}

	d.sugar = zap.New(zapcore.NewTee(cores...)).With(zap.String("module", lc.Module)).Sugar()
	return d, nil
}

func (d *zapDriver) fileSyncer(path string, lc *LogConf) (zapcore.WriteSyncer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file failed.path:%s,err:%v", path, err)
	}
	if !lc.Async {
		return zapcore.Lock(f), nil
	}

	ws := &zapcore.BufferedWriteSyncer{
		WS:            f,
		Size:          lc.BufSize,
		FlushInterval: time.Duration(lc.FlushInterval) * time.Millisecond,
	}
	d.stops = append(d.stops, ws.Stop)
	return ws, nil
}

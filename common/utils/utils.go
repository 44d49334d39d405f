package utils

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

var seq uint32

func init() {
	rand.Seed(time.Now().UnixNano())
	seq = rand.Uint32()
}

// FileIsExist 判断文件或目录是否存在
func FileIsExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

// PathExists reports whether path exists, returning the stat error only when
// it is not a missing file.
func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// GetFuncCall 获取调用者的文件位置和函数名
func GetFuncCall(callDepth int) (string, string) {
	pc, file, line, ok := runtime.Caller(callDepth)
	if !ok {
		return "???:0", "???"
	}

	fn := runtime.FuncForPC(pc)
	fnName := "???"
	if fn != nil {
		fnName = fn.Name()
		if i := strings.LastIndex(fnName, "/"); i >= 0 {
			fnName = fnName[i+1:]
		}
	}

	return fmt.Sprintf("%s:%d", filepath.Base(file), line), fnName
}

// GenLogId 生成日志ID，时间戳+进程号+自增序列，保证进程内唯一
func GenLogId() string {
	n := atomic.AddUint32(&seq, 1)
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf, uint64(time.Now().UnixNano()))
	binary.BigEndian.PutUint32(buf[8:], uint32(os.Getpid()))
	binary.BigEndian.PutUint32(buf[12:], n)

	sum := md5.Sum(buf)
	return fmt.Sprintf("%s%08x", hex.EncodeToString(sum[:8]), n)
}

// GenPseudoUniqId 生成伪唯一ID
func GenPseudoUniqId() uint64 {
	return uint64(time.Now().UnixNano())<<16 | uint64(atomic.AddUint32(&seq, 1)&0xffff)
}

// GetCurFileDir 获取调用者源文件所在目录
func GetCurFileDir() string {
	_, file, _, _ := runtime.Caller(1)
	return filepath.Dir(file)
}

// GetCurExecDir 获取可执行文件所在目录
func GetCurExecDir() string {
	file, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(file)
}

// GetCurRootDir 获取可执行文件的上级目录
func GetCurRootDir() string {
	return filepath.Dir(GetCurExecDir())
}

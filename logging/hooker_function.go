package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	maxCallerDepth = 25
	multiFrames    = 3
)

// loggingDir is the source directory of this package.
var loggingDir = func() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}()

type functionHooker struct{}

// callers returns up to n frames starting at the first one outside logrus
// and this package.
func callers(n int) []runtime.Frame {
	pcs := make([]uintptr, maxCallerDepth)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(2, pcs)])

	var out []runtime.Frame
	for len(out) < n {
		f, more := frames.Next()
		if len(out) > 0 || !isLoggingFrame(f) {
			out = append(out, f)
		}
		if !more {
			break
		}
	}
	return out
}

func isLoggingFrame(f runtime.Frame) bool {
	if strings.Contains(f.Function, "github.com/sirupsen/logrus") {
		return true
	}
	return filepath.Dir(f.File) == loggingDir && !strings.HasSuffix(f.File, "_test.go")
}

func shortFuncName(fname string) string {
	if index := strings.LastIndex(fname, "/"); index >= 0 {
		return fname[index+1:]
	}
	return fname
}

func (h *functionHooker) fire(entry *logrus.Entry) {
	frames := callers(1)
	if len(frames) == 0 {
		return
	}
	f := frames[0]
	entry.Data["func"] = shortFuncName(f.Function)
	entry.Data["line"] = f.Line
	entry.Data["file"] = filepath.Base(f.File)
}

func (h *functionHooker) fires(entry *logrus.Entry) {
	for i, f := range callers(multiFrames) {
		entry.Data["f"+strconv.Itoa(i)] = fmt.Sprintf("{%s,%s,%d}", filepath.Base(f.File), shortFuncName(f.Function), f.Line)
	}
}

func (h *functionHooker) Fire(entry *logrus.Entry) error {
	relation, ok := entry.Data[callRelationKey]
	if !ok {
		return nil
	}
	delete(entry.Data, callRelationKey)

	switch relation {
	case MsgFormatMulti:
		h.fires(entry)
	case MsgFormatSingle:
		h.fire(entry)
	}
	return nil
}

func (h *functionHooker) Levels() []logrus.Level {
	return logrus.AllLevels
}

// LoadFunctionHooker loads a function hooker to the logger
func LoadFunctionHooker(logger *Logger) {
	logger.Hooks.Add(&functionHooker{})
}

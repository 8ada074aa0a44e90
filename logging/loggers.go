package logging

import (
	"bytes"
	"io/ioutil"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level names accepted by Init.
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
	TraceLevel = "trace"
)

// Levels accepted by CPrint and VPrint.
const (
	PANIC uint32 = iota
	FATAL
	ERROR
	WARN
	INFO
	DEBUG
	TRACE
)

const (
	//MsgFormatSingle attaches the immediate caller
	MsgFormatSingle uint32 = iota
	//MsgFormatMulti attaches several frames of the call stack
	MsgFormatMulti
)

// callRelationKey carries the MsgFormat of an entry to the function hooker,
// which strips it before the entry is written.
const callRelationKey = "_call_relation"

// LogFormat holds the structured fields of one entry.
type LogFormat = map[string]interface{}

type Logger struct {
	*logrus.Logger
}

func NewLogger() *Logger {
	return &Logger{
		Logger: logrus.New(),
	}
}

var (
	initMu sync.Mutex
	// clog prints to stdout and file, vlog to file only.
	clog *Logger
	vlog *Logger
)

var levelNames = map[string]logrus.Level{
	PanicLevel: logrus.PanicLevel,
	FatalLevel: logrus.FatalLevel,
	ErrorLevel: logrus.ErrorLevel,
	WarnLevel:  logrus.WarnLevel,
	InfoLevel:  logrus.InfoLevel,
	DebugLevel: logrus.DebugLevel,
	TraceLevel: logrus.TraceLevel,
}

// ValidLevel reports whether level is a known level name.
func ValidLevel(level string) bool {
	_, ok := levelNames[level]
	return ok
}

func convertLevel(level string) logrus.Level {
	if l, ok := levelNames[level]; ok {
		return l
	}
	return logrus.InfoLevel
}

// Init loggers. Log files older than age years are removed; age 0 keeps
// them forever. With disableCPrint, CPrint writes to the file only.
func Init(path, filename string, level string, age uint32, disableCPrint bool) {
	initMu.Lock()
	defer initMu.Unlock()

	fileHooker := NewFileRotateHooker(path, filename, age, nil)

	vlog = newFileLogger(fileHooker, level)
	vlog.Out = ioutil.Discard

	if !disableCPrint {
		clog = newFileLogger(fileHooker, level)
		clog.Out = os.Stdout
	} else {
		clog = vlog
	}

	vlog.WithFields(logrus.Fields{
		"path":  path,
		"level": level,
	}).Info("Logger Configuration.")
}

func newFileLogger(fileHooker logrus.Hook, level string) *Logger {
	l := NewLogger()
	LoadFunctionHooker(l)
	l.Hooks.Add(fileHooker)
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = convertLevel(level)
	return l
}

func ensureInit() {
	initMu.Lock()
	ready := clog != nil && vlog != nil
	initMu.Unlock()
	if !ready {
		Init(os.TempDir(), "tmp-sha256", InfoLevel, 0, false)
	}
}

// GetGID return gid
func GetGID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// CPrint into stdout + log
func CPrint(level uint32, msg string, formats ...LogFormat) {
	ensureInit()
	write(clog, level, msg, formats)
}

// VPrint into log
func VPrint(level uint32, msg string, formats ...LogFormat) {
	ensureInit()
	write(vlog, level, msg, formats)
}

func write(l *Logger, level uint32, msg string, formats []LogFormat) {
	data := mergeLogFormats(formats...)
	// Errors and above carry the call chain.
	if level <= ERROR || level > TRACE {
		data[callRelationKey] = MsgFormatMulti
	} else {
		data[callRelationKey] = MsgFormatSingle
	}
	entry := l.WithFields(data)

	switch level {
	case PANIC:
		entry.Panic(msg)
	case FATAL:
		entry.Fatal(msg)
	case WARN:
		entry.Warn(msg)
	case INFO:
		entry.Info(msg)
	case DEBUG:
		entry.Debug(msg)
	case TRACE:
		entry.Trace(msg)
	default:
		entry.Error(msg)
	}
}

// mergeLogFormats merges LogFormats.
// Same key would be covered by later-presented values.
func mergeLogFormats(formats ...LogFormat) LogFormat {
	format := LogFormat{}
	for _, data := range formats {
		for k, v := range data {
			format[k] = v
		}
	}
	format["tid"] = GetGID()
	return format
}

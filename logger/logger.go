package logger

import (
	"log"
	"os"
	"path"
	"regexp"
	"runtime"

	"github.com/fatih/color"
)

const knownFrames = 2

var modulePathRegex = regexp.MustCompile("enumfield.*$")

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func NewLogLevel(val string) LogLevel {
	switch val {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelUnk
	}
}

func (ll LogLevel) String() string {
	return map[LogLevel]string{
		LogLevelDebug: "[DEBUG]",
		LogLevelInfo:  "[INFO]",
		LogLevelWarn:  "[WARN]",
		LogLevelError: "[ERROR]",
		LogLevelUnk:   "[UNK]",
	}[ll]
}

// FieldLogger implements Logger using log.
type FieldLogger struct {
	l  *log.Logger
	ll LogLevel
}

// New constructs a FieldLogger.
//
// Logs are printed to os.Stdout by default, using the std lib log pkg.
// The default log level is read from LOG_LEVEL, falling back to WARN.
func New(opts ...LoggerOptFn) Logger {
	ll := NewLogLevel(os.Getenv("LOG_LEVEL"))
	if ll == LogLevelUnk {
		ll = LogLevelWarn
	}

	l := &FieldLogger{
		l:  log.New(os.Stdout, "", log.LstdFlags),
		ll: ll,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Debug writes a debug log.
func (l *FieldLogger) Debug(msg string, ctx *LogContext) {
	if l.ll > LogLevelDebug {
		return
	}

	l.log(color.WhiteString, LogLevelDebug, msg, ctx)
}

// Error writes an error log.
func (l *FieldLogger) Error(msg string, ctx *LogContext) {
	if l.ll > LogLevelError {
		return
	}

	l.log(color.RedString, LogLevelError, msg, ctx)
}

// Info writes an info log.
func (l *FieldLogger) Info(msg string, ctx *LogContext) {
	if l.ll > LogLevelInfo {
		return
	}

	l.log(color.BlueString, LogLevelInfo, msg, ctx)
}

// Warn writes a warning log.
func (l *FieldLogger) Warn(msg string, ctx *LogContext) {
	if l.ll > LogLevelWarn {
		return
	}

	l.log(color.YellowString, LogLevelWarn, msg, ctx)
}

// LogLevel returns the LogLevel set for the FieldLogger.
func (l *FieldLogger) LogLevel() LogLevel { return l.ll }

// log executes printing the log message,
// including any context if available.
func (l *FieldLogger) log(colorizer func(string, ...any) string, level LogLevel, msg string, ctx *LogContext) {
	// NOTE: skip the frames of FieldLogger itself
	_, file, line, _ := runtime.Caller(knownFrames)

	msg = colorizer("%s %s:%d '%s'", level, callSite(file), line, msg)
	if ctx == nil {
		l.l.Println(msg)
		return
	}

	l.l.Println(msg, "log_context:", ctx)
}

// callSite trims file down to the module-relative path,
// or to the file and the directory it is in.
//
// e.g.,:
// /home/dev/my-project/main.go => my-project/main.go
// /home/dev/my-project/internal/internal.go => internal/internal.go
func callSite(file string) string {
	if match := modulePathRegex.Find([]byte(file)); match != nil {
		return string(match)
	}

	fullPath, file := path.Split(file)
	return path.Base(fullPath) + string(os.PathSeparator) + file
}

package log

import (
	"io"
	"log"
	"os"
)

var gLogger Logger = &StdLogger{}
var gLogLevel LogLevel = LevelInfo

// filename为空时输出到stderr
func Init(filename string, level LogLevel) {
	if filename != "" {
		file, err := os.OpenFile(filename, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			log.Fatalf("log Init err: %v", err)
		}
		gLogger = NewWriterLogger(file)
	} else {
		gLogger = &StdLogger{}
	}
	gLogLevel = level
}

// 主要用于测试中捕获日志输出
func InitWithWriter(w io.Writer, level LogLevel) {
	gLogger = NewWriterLogger(w)
	gLogLevel = level
}

func Close() {
	gLogger.Close()
	gLogger = &StdLogger{}
}

func SetLogLevel(level LogLevel) {
	gLogLevel = level
}

func GetLogLevel() LogLevel {
	return gLogLevel
}

// Enabled reports whether messages at lv pass the current level.
func Enabled(lv LogLevel) bool {
	return lv >= gLogLevel
}

func output(lv LogLevel, args []interface{}) {
	if !Enabled(lv) {
		return
	}
	gLogger.Log(lv, args...)
}

func outputf(lv LogLevel, format string, args []interface{}) {
	if !Enabled(lv) {
		return
	}
	gLogger.Logf(lv, format, args...)
}

func Debug(args ...interface{})                 { output(LevelDebug, args) }
func Debugf(format string, args ...interface{}) { outputf(LevelDebug, format, args) }

func Info(args ...interface{})                 { output(LevelInfo, args) }
func Infof(format string, args ...interface{}) { outputf(LevelInfo, format, args) }

func Warning(args ...interface{})                 { output(LevelWarning, args) }
func Warningf(format string, args ...interface{}) { outputf(LevelWarning, format, args) }

func Error(args ...interface{})                 { output(LevelError, args) }
func Errorf(format string, args ...interface{}) { outputf(LevelError, format, args) }

// Fatal级别不受日志等级过滤, 写完即退出
func Fatal(args ...interface{}) {
	gLogger.Log(LevelFatal, args...)
	gLogger.Close()
	os.Exit(1)
}

func Fatalf(format string, args ...interface{}) {
	gLogger.Logf(LevelFatal, format, args...)
	gLogger.Close()
	os.Exit(1)
}

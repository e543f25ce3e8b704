package log

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Logger interface {
	Log(lv LogLevel, args ...interface{})
	Logf(lv LogLevel, format string, args ...interface{})
	Close()
}

// 输出到标准库默认logger(stderr)
type StdLogger struct {
}

func (l *StdLogger) Log(lv LogLevel, args ...interface{}) {
	_ = log.Output(4, fmt.Sprintf("[%s]", lv)+fmt.Sprint(args...)+"\n")
}

func (l *StdLogger) Logf(lv LogLevel, format string, args ...interface{}) {
	_ = log.Output(4, fmt.Sprintf("[%s]", lv)+fmt.Sprintf(format, args...)+"\n")
}

func (l *StdLogger) Close() {
}

// 输出到任意io.Writer, 持有*os.File时Close会关闭文件
type WriterLogger struct {
	logger *log.Logger
	closer io.Closer
}

func NewWriterLogger(w io.Writer) *WriterLogger {
	l := &WriterLogger{
		logger: log.New(w, "", log.Ldate|log.Ltime),
	}
	if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		l.closer = f
	}
	return l
}

func (l *WriterLogger) Log(lv LogLevel, args ...interface{}) {
	_ = l.logger.Output(4, fmt.Sprintf("[%s]", lv)+fmt.Sprint(args...)+"\n")
}

func (l *WriterLogger) Logf(lv LogLevel, format string, args ...interface{}) {
	_ = l.logger.Output(4, fmt.Sprintf("[%s]", lv)+fmt.Sprintf(format, args...)+"\n")
}

func (l *WriterLogger) Close() {
	if l.closer != nil {
		_ = l.closer.Close()
	}
}

package pqheap

import (
	"io"
	"log/slog"
	"os"
)

var logger = NewLogger(os.Stderr, false)

// NewLogger 创建一个文本格式的 logger，debug 为 true 时输出 Debug 级别日志。
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, getLoggerOptions(debug)))
}

// SetLogger 替换流水线各阶段使用的 logger，传入 nil 时不做任何修改。
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

func getLoggerOptions(debug bool) *slog.HandlerOptions {
	logOpts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	if debug {
		logOpts.Level = slog.LevelDebug
	}

	return logOpts
}

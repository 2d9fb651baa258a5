package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/covalenthq/lumberjack"
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

var (
	// 定义不同级别的日志记录器，未初始化时输出到标准错误
	DebugLogger   = log.New(io.Discard, "DEBUG: ", flags)
	InfoLogger    = log.New(os.Stderr, "INFO: ", flags)
	WarningLogger = log.New(os.Stderr, "WARNING: ", flags)
	ErrorLogger   = log.New(os.Stderr, "ERROR: ", flags)

	// Output is where the level loggers write after SetupLogger.
	Output io.Writer = os.Stderr
)

// SetupLogger 初始化日志配置: 同时输出到控制台和按大小轮转的日志文件
func SetupLogger(logDir, level string) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("创建日志目录失败: %w", err)
	}

	rotating := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "server.log"),
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}
	Output = io.MultiWriter(os.Stdout, rotating)

	var debugOut, infoOut io.Writer = io.Discard, Output
	switch strings.ToLower(level) {
	case "debug":
		debugOut = Output
	case "warn", "warning", "error":
		infoOut = io.Discard
	}

	DebugLogger = log.New(debugOut, "DEBUG: ", flags)
	InfoLogger = log.New(infoOut, "INFO: ", flags)
	WarningLogger = log.New(Output, "WARNING: ", flags)
	ErrorLogger = log.New(Output, "ERROR: ", flags)
	log.SetOutput(Output)

	return nil
}

// Debug 记录调试级别的日志
func Debug(format string, v ...interface{}) {
	_ = DebugLogger.Output(2, fmt.Sprintf(format, v...))
}

// Info 记录信息级别的日志
func Info(format string, v ...interface{}) {
	_ = InfoLogger.Output(2, fmt.Sprintf(format, v...))
}

// Warning 记录警告级别的日志
func Warning(format string, v ...interface{}) {
	_ = WarningLogger.Output(2, fmt.Sprintf(format, v...))
}

// Error 记录错误级别的日志
func Error(format string, v ...interface{}) {
	_ = ErrorLogger.Output(2, fmt.Sprintf(format, v...))
}

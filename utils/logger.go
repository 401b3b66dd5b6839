package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

var (
	ErrorLogger *log.Logger
	PanicLogger *log.Logger
)

// InitLogger opens the append-only log files under ./logs.
func InitLogger() error {
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	var err error
	if ErrorLogger, err = openLogger(filepath.Join(logsDir, "errors.log")); err != nil {
		return err
	}
	if PanicLogger, err = openLogger(filepath.Join(logsDir, "panics.log")); err != nil {
		return err
	}
	return nil
}

func openLogger(path string) (*log.Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %v", path, err)
	}
	return log.New(f, "", 0), nil
}

// LogError records an error with its call site in errors.log.
func LogError(err error, context string) {
	if ErrorLogger == nil {
		return
	}
	ErrorLogger.Printf("[%s] ERROR in %s - %s: %v", timestamp(), callSite(2), context, err)
}

// LogPanic records a recovered panic in panics.log.
func LogPanic(recovered interface{}, context string) {
	if PanicLogger == nil {
		return
	}
	PanicLogger.Printf("[%s] PANIC in %s - %s: %v", timestamp(), callSite(3), context, recovered)
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

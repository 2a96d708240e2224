package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger writing human-readable output to stdout at the given
// level. When logDir is not empty, entries at info level and above are also
// written as JSON to logDir/YYYY/MM/YYYY-MM-DD.log.
func New(level, logDir string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), lvl),
	}

	if logDir != "" {
		file, err := openLogFile(logDir, time.Now())
		if err != nil {
			return nil, err
		}

		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "time"
		encoderConfig.MessageKey = "msg"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

		fileLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.InfoLevel && l >= lvl
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), fileLevel))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func openLogFile(logDir string, day time.Time) (*os.File, error) {
	dir := filepath.Join(logDir, day.Format("2006"), day.Format("01"))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	name := filepath.Join(dir, day.Format("2006-01-02")+".log")
	file, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", name, err)
	}
	return file, nil
}

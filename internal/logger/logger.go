// internal/logger/logger.go
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log — общий SugaredLogger. До вызова InitLogger ничего не пишет.
var Log = zap.NewNop().Sugar()

// InitLogger направляет журнал в файл с ротацией.
// Пустой путь означает вывод в stderr.
func InitLogger(filePath string) error {
	var ws zapcore.WriteSyncer
	if filePath == "" {
		ws = zapcore.Lock(os.Stderr)
	} else {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // дней
		})
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, zapcore.DebugLevel)
	Log = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}

// SyncLogger сбрасывает буферы журнала
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}

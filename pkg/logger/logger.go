package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger — минимальный интерфейс логирования, используемый всеми слоями приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
	With(args ...any) Logger
}

// ZapLogger реализует Logger поверх zap.SugaredLogger.
type ZapLogger struct {
	l *zap.SugaredLogger
}

// NewZapLogger создаёт JSON-логгер в stdout. Уровень задаётся переменной LOG_LEVEL.
func NewZapLogger() *ZapLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		parseLevel(os.Getenv("LOG_LEVEL")),
	)

	return NewFromCore(core)
}

// NewFromCore оборачивает произвольное ядро zap (например, observer в тестах).
func NewFromCore(core zapcore.Core) *ZapLogger {
	return &ZapLogger{l: zap.New(core).Sugar()}
}

func (z *ZapLogger) Debugf(format string, args ...any) {
	z.l.Debugf(format, args...)
}

func (z *ZapLogger) Infof(format string, args ...any) {
	z.l.Infof(format, args...)
}

func (z *ZapLogger) Warnf(format string, args ...any) {
	z.l.Warnf(format, args...)
}

func (z *ZapLogger) Errorf(err error, format string, args ...any) {
	if err == nil {
		z.l.Errorf(format, args...)
		return
	}
	z.l.Errorw(fmt.Sprintf(format, args...), "error", err.Error())
}

// With возвращает логгер с дополнительными полями (ключ, значение, ...).
func (z *ZapLogger) With(args ...any) Logger {
	return &ZapLogger{l: z.l.With(args...)}
}

// Sync сбрасывает буферы ядра перед завершением процесса.
func (z *ZapLogger) Sync() error {
	return z.l.Sync()
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Nop возвращает логгер, который ничего не пишет. Используется в тестах.
func Nop() Logger {
	return &ZapLogger{l: zap.NewNop().Sugar()}
}

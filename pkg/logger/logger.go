package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	mu    sync.RWMutex
	sugar = zap.NewNop().Sugar()
)

// Init builds the global logger. Production environments log JSON at info
// level; everything else gets the development console encoder at debug.
func Init(environment string) {
	var cfg zap.Config
	switch strings.ToLower(environment) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		zapLogger = zap.NewExample()
	}

	Set(zapLogger)
}

// Set replaces the global logger, mostly for tests.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	sugar = l.Sugar()
}

func Sync() {
	_ = current().Sync()
}

func Debug(msg string, args ...interface{}) {
	current().Debugw(msg, keysAndValues(args)...)
}

func Info(msg string, args ...interface{}) {
	current().Infow(msg, keysAndValues(args)...)
}

func Warn(msg string, args ...interface{}) {
	current().Warnw(msg, keysAndValues(args)...)
}

func Error(msg string, args ...interface{}) {
	current().Errorw(msg, keysAndValues(args)...)
}

func Fatal(msg string, args ...interface{}) {
	current().Fatalw(msg, keysAndValues(args)...)
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// keysAndValues lets callers pass a bare error or value, as in
// logger.Error("failed", err): an odd leading argument is keyed "error".
func keysAndValues(args []interface{}) []interface{} {
	if len(args)%2 == 0 {
		return args
	}
	out := make([]interface{}, 0, len(args)+1)
	out = append(out, "error", args[0])
	return append(out, args[1:]...)
}

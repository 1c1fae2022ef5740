package log

import (
	"encoding/json"
	//nolint:depguard
	"log"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Fatal is for startup failures before a Logger exists.
func Fatal(v ...any) {
	log.Fatal(v...)
}

// Logger is a zap logger that can spawn named module loggers whose level is
// resolved from LOG_LEVEL__<MODULE> environment variables.
type Logger struct {
	*zap.Logger
	names      []string
	moduleFunc func(names []string) *zap.Logger
}

func (l *Logger) Module(name string) *Logger {
	names := make([]string, len(l.names), len(l.names)+1)
	copy(names, l.names)
	names = append(names, name)

	return &Logger{
		names:      names,
		Logger:     l.moduleFunc(names),
		moduleFunc: l.moduleFunc,
	}
}

// NewLogger builds the default console logger, or a zap JSON config when configFile is set.
func NewLogger(configFile string) (*Logger, error) {
	if configFile == "" {
		return newConsoleLogger(), nil
	}
	return loadLoggerFromFile(configFile)
}

func loadLoggerFromFile(configFile string) (*Logger, error) {
	bs, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if err := json.Unmarshal(bs, &cfg); err != nil {
		return nil, err
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: zapLogger.Named("main"),
		moduleFunc: func(names []string) *zap.Logger {
			return zapLogger.Named(strings.Join(names, "."))
		},
	}, nil
}

func newConsoleLogger() *Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName: func(name string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + name + "]")
		},
	})
	writer := zapcore.Lock(os.Stdout)

	build := func(lv zapcore.Level) *zap.Logger {
		core := zapcore.NewCore(encoder, writer, zap.NewAtomicLevelAt(lv))
		return zap.New(core, zap.AddStacktrace(zapcore.FatalLevel))
	}

	rootLevel := zapcore.InfoLevel
	if lv, ok := parseLevelFromEnv(levelEnvKey); ok {
		rootLevel = lv
	}

	return &Logger{
		Logger: build(rootLevel).Named("main"),
		moduleFunc: func(names []string) *zap.Logger {
			lv := moduleLevel(names)
			logger := build(lv).Named(strings.Join(names, "."))
			logger.Debug("module logger created", zap.Stringer("level", lv))
			return logger
		},
	}
}

func NewTest(t *testing.T) *Logger {
	logger := zaptest.NewLogger(t)
	return &Logger{
		Logger: logger,
		moduleFunc: func(names []string) *zap.Logger {
			return logger.Named(strings.Join(names, "."))
		},
	}
}

func NewNop() *Logger {
	logger := zap.NewNop()
	return &Logger{
		Logger: logger,
		moduleFunc: func(_ []string) *zap.Logger {
			return logger
		},
	}
}

package log

import (
	"os"
	"path/filepath"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = &ZapLogger{}

// ZapLogger is a Logger implementation backed by Uber's zap logger.
type ZapLogger struct {
	lg *zap.SugaredLogger
}

// Config configures the ZapLogger. All fields can be set through
// environment variables and fall back to sensible defaults.
type Config struct {
	Format string `env:"LOG_FORMAT" env-default:"console"` // console, logfmt or json
	Level  Level  `env:"LOG_LEVEL" env-default:"info"`     // debug, info, warn, error, fatal
	Output string `env:"LOG_OUTPUT" env-default:"stderr"`  // stderr, stdout or file path
}

// NewZapLogger creates a new ZapLogger with the given configuration.
// It supports console, logfmt and json output formats written to stderr,
// stdout or a file path.
func NewZapLogger(conf Config) Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}

	var encoder zapcore.Encoder
	switch conf.Format {
	case "logfmt":
		encoder = zaplogfmt.NewEncoder(encCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	var ws zapcore.WriteSyncer
	switch conf.Output {
	case "", "stderr":
		ws = zapcore.Lock(os.Stderr)
	case "stdout":
		ws = zapcore.Lock(os.Stdout)
	default:
		err1 := os.MkdirAll(filepath.Dir(conf.Output), 0755)
		file, err2 := os.OpenFile(conf.Output, os.O_RDWR|os.O_CREATE, 0666)
		if err1 != nil || err2 != nil {
			// Fall back to stderr if the file cannot be opened.
			ws = zapcore.Lock(os.Stderr)
		} else {
			ws = zapcore.AddSync(file)
		}
	}

	core := zapcore.NewCore(encoder, ws, toZapLogLevel(conf.Level))
	// AddCallerSkip(2) skips the wrapper methods in the call stack.
	zl := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).Sugar()

	return &ZapLogger{lg: zl}
}

func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.log(LevelDebug, msg, keysAndValues...)
}

func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.log(LevelInfo, msg, keysAndValues...)
}

func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.log(LevelWarn, msg, keysAndValues...)
}

func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.log(LevelFatal, msg, keysAndValues...)
}

func (l *ZapLogger) log(level Level, msg string, keysAndValues ...any) {
	l.lg.Logw(toZapLogLevel(level), msg, keysAndValues...)
}

// WithKV returns a new ZapLogger with the key-value pair added to all future log messages.
func (l *ZapLogger) WithKV(key string, value any) Logger {
	return &ZapLogger{lg: l.lg.With(key, value)}
}

// WithName returns a new ZapLogger with the given name.
// Names are joined with dots as the logger hierarchy deepens.
func (l *ZapLogger) WithName(name string) Logger {
	return &ZapLogger{lg: l.lg.Named(name)}
}

// Name returns the current name of the logger.
func (l *ZapLogger) Name() string {
	return l.lg.Desugar().Name()
}

func toZapLogLevel(logLevel Level) zapcore.Level {
	switch logLevel {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

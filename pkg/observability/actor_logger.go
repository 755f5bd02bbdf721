package observability

import (
	"io"
	golog "log"

	goaktlog "github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ActorLogger lets the actor system log through the program's zap logger, so
// actor messages share its level, sinks and fields.
type ActorLogger struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

var _ goaktlog.Logger = (*ActorLogger)(nil)

// NewActorLogger wraps logger for actor.WithLogger.
func NewActorLogger(logger *zap.Logger) *ActorLogger {
	logger = logger.WithOptions(zap.AddCallerSkip(1))
	return &ActorLogger{logger: logger, sugar: logger.Sugar()}
}

func (l *ActorLogger) Info(v ...any) { l.sugar.Info(v...) }
func (l *ActorLogger) Infof(format string, v ...any) { l.sugar.Infof(format, v...) }
func (l *ActorLogger) Warn(v ...any) { l.sugar.Warn(v...) }
func (l *ActorLogger) Warnf(format string, v ...any) { l.sugar.Warnf(format, v...) }
func (l *ActorLogger) Error(v ...any) { l.sugar.Error(v...) }
func (l *ActorLogger) Errorf(format string, v ...any) { l.sugar.Errorf(format, v...) }
func (l *ActorLogger) Fatal(v ...any) { l.sugar.Fatal(v...) }
func (l *ActorLogger) Fatalf(format string, v ...any) { l.sugar.Fatalf(format, v...) }
func (l *ActorLogger) Panic(v ...any) { l.sugar.Panic(v...) }
func (l *ActorLogger) Panicf(format string, v ...any) { l.sugar.Panicf(format, v...) }
func (l *ActorLogger) Debug(v ...any) { l.sugar.Debug(v...) }
func (l *ActorLogger) Debugf(format string, v ...any) { l.sugar.Debugf(format, v...) }

// LogLevel reports the lowest level the underlying core lets through.
func (l *ActorLogger) LogLevel() goaktlog.Level {
	switch zapcore.LevelOf(l.logger.Core()) {
	case zapcore.DebugLevel:
		return goaktlog.DebugLevel
	case zapcore.InfoLevel:
		return goaktlog.InfoLevel
	case zapcore.WarnLevel:
		return goaktlog.WarningLevel
	case zapcore.ErrorLevel:
		return goaktlog.ErrorLevel
	case zapcore.DPanicLevel, zapcore.PanicLevel:
		return goaktlog.PanicLevel
	case zapcore.FatalLevel:
		return goaktlog.FatalLevel
	default:
		return goaktlog.InvalidLevel
	}
}

// LogOutput returns nil: outputs are owned by the zap cores.
func (l *ActorLogger) LogOutput() []io.Writer { return nil }

func (l *ActorLogger) StdLogger() *golog.Logger { return zap.NewStdLog(l.logger) }

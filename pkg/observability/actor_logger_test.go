package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	goaktlog "github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestActorLogger_Level(t *testing.T) {
	tests := []struct {
		level zapcore.Level
		want  goaktlog.Level
	}{
		{zapcore.DebugLevel, goaktlog.DebugLevel},
		{zapcore.InfoLevel, goaktlog.InfoLevel},
		{zapcore.WarnLevel, goaktlog.WarningLevel},
		{zapcore.ErrorLevel, goaktlog.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			core, _ := observer.New(tt.level)
			assert.Equal(t, tt.want, NewActorLogger(zap.New(core)).LogLevel())
		})
	}
}

func TestActorLogger_KeepsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewActorLogger(zap.New(core).With(zap.String("run", "r-1")))

	logger.Debugf("tick %d", 1)
	logger.Infof("tick %d", 2)
	logger.Warn("slow")

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "tick 2", entries[0].Message)
		assert.Equal(t, "slow", entries[1].Message)
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, "r-1", entries[0].ContextMap()["run"])
	}
}

func TestActorLogger_NopCore(t *testing.T) {
	assert.Equal(t, goaktlog.InvalidLevel, NewActorLogger(zap.NewNop()).LogLevel())
}

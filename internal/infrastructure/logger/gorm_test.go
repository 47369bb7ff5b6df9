package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level), recorded
}

func selectQuery() (string, int64) {
	return "SELECT * FROM purchase_orders WHERE status = 'ORDERED'", 3
}

func TestGormLogger_LogMode(t *testing.T) {
	gormLog, _ := newObservedGormLogger(gormlogger.Info)

	clone := gormLog.LogMode(gormlogger.Warn)

	// the original keeps its level, the copy gets the new one
	assert.Equal(t, gormlogger.Info, gormLog.logLevel)
	cloned, ok := clone.(*GormLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Warn, cloned.logLevel)
}

func TestGormLogger_Levels(t *testing.T) {
	t.Run("messages log at their level", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Info)
		ctx := context.Background()

		gormLog.Info(ctx, "migrating %s", "settings")
		gormLog.Warn(ctx, "retrying")
		gormLog.Error(ctx, "connection lost")

		logs := recorded.All()
		require.Len(t, logs, 3)
		assert.Equal(t, "migrating settings", logs[0].Message)
		assert.Equal(t, zapcore.WarnLevel, logs[1].Level)
		assert.Equal(t, zapcore.ErrorLevel, logs[2].Level)
	})

	t.Run("silent level suppresses everything", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Silent)

		gormLog.Info(context.Background(), "hidden")
		gormLog.Trace(context.Background(), time.Now(), selectQuery, nil)

		assert.Empty(t, recorded.All())
	})
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("failed query logs the error and sql", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Error)

		gormLog.Trace(ctx, time.Now(), selectQuery, errors.New("relation does not exist"))

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "query failed", logs[0].Message)
		assert.Equal(t, zapcore.ErrorLevel, logs[0].Level)
		assert.Contains(t, logs[0].ContextMap()["sql"], "purchase_orders")
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Error)

		gormLog.Trace(ctx, time.Now(), selectQuery, gormlogger.ErrRecordNotFound)

		for _, entry := range recorded.All() {
			assert.NotEqual(t, zapcore.ErrorLevel, entry.Level)
		}
	})

	t.Run("slow query warns with the threshold", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Warn)

		begin := time.Now().Add(-time.Second)
		gormLog.Trace(ctx, begin, selectQuery, nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "slow query", logs[0].Message)
		assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
	})

	t.Run("normal query logs at debug under info mode", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Info)

		gormLog.Trace(ctx, time.Now(), selectQuery, nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "query", logs[0].Message)
		assert.Equal(t, zapcore.DebugLevel, logs[0].Level)
		assert.Equal(t, int64(3), logs[0].ContextMap()["rows"])
	})

	t.Run("request ID from context is carried", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Info)

		ctx := context.WithValue(context.Background(), RequestIDKey, "req-7")
		gormLog.Trace(ctx, time.Now(), selectQuery, nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "req-7", logs[0].ContextMap()["request_id"])
	})
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"unknown", gormlogger.Warn},
		{"", gormlogger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapGormLogLevel(tt.level))
		})
	}
}

func TestGormLoggerImplementsInterface(t *testing.T) {
	gormLog, _ := newObservedGormLogger(gormlogger.Info)

	var _ gormlogger.Interface = gormLog
}

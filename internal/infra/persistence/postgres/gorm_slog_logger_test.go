package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"userlookup/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlAndRows() (string, int64) {
	return "SELECT id, name FROM users", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.SlowQueryThreshold = 10 * time.Millisecond

	t.Run("record not found is not logged", func(t *testing.T) {
		var buf bytes.Buffer
		gormLogger := newGormSlogLogger(newBufferLogger(&buf), cfg)

		gormLogger.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("query error is logged", func(t *testing.T) {
		var buf bytes.Buffer
		gormLogger := newGormSlogLogger(newBufferLogger(&buf), cfg)

		gormLogger.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("connection reset"))

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "GORM query failed")
	})

	t.Run("cancelled query is logged at debug", func(t *testing.T) {
		var buf bytes.Buffer
		gormLogger := newGormSlogLogger(newBufferLogger(&buf), cfg)

		gormLogger.Trace(context.Background(), time.Now(), sqlAndRows, context.Canceled)

		assert.Contains(t, buf.String(), "level=DEBUG")
	})

	t.Run("slow query uses configured threshold", func(t *testing.T) {
		var buf bytes.Buffer
		gormLogger := newGormSlogLogger(newBufferLogger(&buf), cfg)

		gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
		assert.Contains(t, buf.String(), "slowThreshold=10ms")
	})
}

func TestLogPoolWait(t *testing.T) {
	t.Run("no new waits", func(t *testing.T) {
		var buf bytes.Buffer
		stats := sql.DBStats{WaitCount: 3, WaitDuration: time.Second}

		logPoolWait(context.Background(), newBufferLogger(&buf), stats, stats)

		assert.Empty(t, buf.String())
	})

	t.Run("long waits warn", func(t *testing.T) {
		var buf bytes.Buffer
		prev := sql.DBStats{WaitCount: 1, WaitDuration: 10 * time.Millisecond}
		cur := sql.DBStats{WaitCount: 3, WaitDuration: 210 * time.Millisecond, InUse: 2, MaxOpenConnections: 2}

		logPoolWait(context.Background(), newBufferLogger(&buf), prev, cur)

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "waitCountDelta=2")
		assert.Contains(t, buf.String(), "avgWait=100ms")
	})
}

package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"mealtrack/config"
	deliverycontext "mealtrack/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "users"`, 1
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_QueryOnlyInDebug(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	l.Trace(context.Background(), time.Now(), sqlAndRows, nil)
	assert.Empty(t, buf.String())

	l, buf = newBufferedGormLogger(true)
	l.Trace(context.Background(), time.Now(), sqlAndRows, nil)
	assert.Contains(t, buf.String(), "GORM query")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	l, buf := newBufferedGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, base := newBufferedGormLogger(false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlAndRows, errors.New("boom"))
	assert.Empty(t, base.String())
	assert.Contains(t, reqBuf.String(), "request_id=req-1")
}

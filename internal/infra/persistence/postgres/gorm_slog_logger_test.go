package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"bizhub/config"
	deliverycontext "bizhub/internal/delivery/context"
	"bizhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) *gormSlogLogger {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger)
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, false)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GORM query failed", entry["msg"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "gorm", entry["component"])
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_InfoOnlyInDebug(t *testing.T) {
	var quiet, verbose bytes.Buffer

	newTestGormLogger(&quiet, false).Trace(context.Background(), time.Now(), sqlFn, nil)
	newTestGormLogger(&verbose, true).Trace(context.Background(), time.Now(), sqlFn, nil)

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "SELECT 1")
}

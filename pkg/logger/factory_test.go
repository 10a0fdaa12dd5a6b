package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/pkg/logger"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew_DefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("hello")

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
	)

	log.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_InvalidFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestNew_StaticAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "searchkit")),
	)

	log.Info("ping")

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "searchkit", rec["service"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelWarn),
	)

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

type ctxKey struct{}

func TestNew_ContextValueExtraction(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", ctxKey{}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-123")
	log.InfoContext(ctx, "lookup")

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "req-123", rec["request_id"])
}

func TestNew_ContextValueAbsent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", ctxKey{}),
	)

	log.InfoContext(context.Background(), "lookup")

	rec := decodeRecord(t, &buf)
	_, ok := rec["request_id"]
	assert.False(t, ok, "absent context value must not produce an attribute")
}

func TestWithDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithDevelopment("searchkit"),
	)

	log.Debug("verbose")

	out := buf.String()
	assert.Contains(t, out, "verbose", "debug level must be enabled in development")
	assert.Contains(t, out, "env=development")
}

func TestAttrHelpers(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("indexed",
		logger.Index("hotels"),
		logger.Operation("upload"),
		logger.DocumentCount(7),
		logger.BatchSize(7),
		logger.Duration(125*time.Millisecond),
	)

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "hotels", rec["index"])
	assert.Equal(t, "upload", rec["operation"])
	assert.Equal(t, float64(7), rec["document_count"])
	assert.Equal(t, float64(7), rec["batch_size"])
}

func TestErrorAttr_Nil(t *testing.T) {
	attr := logger.Error(nil)
	assert.True(t, attr.Equal(slog.Attr{}))
}

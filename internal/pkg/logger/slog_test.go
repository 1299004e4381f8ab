//go:build unit

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	logRecord := func(ctx context.Context, level slog.Level, wantRequestID string, wantStack bool) func(t *testing.T) {
		return func(t *testing.T) {
			var buf bytes.Buffer
			log := NewStructuredLogger(&buf, slog.LevelInfo)

			log.Log(ctx, level, "planning flights", slog.String("origin", "BOM"))

			var got map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

			assert.Equal(t, "planning flights", got["msg"])
			assert.Equal(t, "BOM", got["origin"])
			assert.Equal(t, "travel-planner-ai", got["service"])

			if wantRequestID == "" {
				assert.NotContains(t, got, "request_id")
			} else {
				assert.Equal(t, wantRequestID, got["request_id"])
			}

			_, hasStack := got["stack_trace"]
			assert.Equal(t, wantStack, hasStack)
		}
	}

	t.Run("info_without_request_id", logRecord(context.Background(), slog.LevelInfo, "", false))
	t.Run("info_with_request_id", logRecord(WithRequestID(context.Background(), "req-1"),
		slog.LevelInfo, "req-1", false))
	t.Run("error_adds_stack_trace", logRecord(WithRequestID(context.Background(), "req-2"),
		slog.LevelError, "req-2", true))
}

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		shouldShow bool
	}{
		{"info is short", slog.LevelInfo, false},
		{"debug is short", slog.LevelDebug, false},
		{"warn carries source", slog.LevelWarn, true},
		{"error carries source", slog.LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			l := slog.New(newSourceHandler(base, slog.LevelWarn, slog.LevelError))

			l.Log(context.Background(), tt.level, "membership paused", "member_id", 7)

			out := buf.String()
			assert.Contains(t, out, "membership paused")
			assert.Equal(t, tt.shouldShow, bytes.Contains(buf.Bytes(), []byte("source=")), out)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.With("a", 1).Named("x").Infow("ignored", "k", "v")
		l.Errorw("ignored")
	})
}

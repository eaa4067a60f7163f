package logs

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"pricemap/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRotator(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newRotator(config.Log{}))

	file := filepath.Join(t.TempDir(), "pricemap.log")
	rotator := newRotator(config.Log{File: file, MaxBackups: 3})
	require.NotNil(t, rotator)
	assert.Equal(t, file, rotator.Filename)
	assert.Equal(t, defaultMaxSizeMB, rotator.MaxSize)
	assert.Equal(t, 3, rotator.MaxBackups)
	assert.Equal(t, defaultMaxAgeDays, rotator.MaxAge)
}

func TestNewLogger_Format(t *testing.T) {
	t.Parallel()

	var jsonBuf, textBuf bytes.Buffer
	newLogger(&jsonBuf, slog.LevelInfo, false).Info("hello", slog.String("k", "v"))
	newLogger(&textBuf, slog.LevelInfo, true).Info("hello", slog.String("k", "v"))
	newLogger(&textBuf, slog.LevelWarn, true).Info("dropped")

	assert.Contains(t, jsonBuf.String(), `"msg":"hello"`)
	assert.Contains(t, textBuf.String(), "msg=hello k=v")
	assert.NotContains(t, textBuf.String(), "dropped")
}

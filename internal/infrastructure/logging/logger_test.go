package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		message string
		err     error
	}{
		{
			name:    "エラーなしのログ",
			level:   LevelInfo,
			message: "ビルドを開始します",
			err:     nil,
		},
		{
			name:    "エラーありのログ",
			level:   LevelError,
			message: "ビルドに失敗しました",
			err:     errors.New("テストエラー"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			logger := NewJSONLogger(&buf)

			logger.Log(tt.level, tt.message, tt.err)

			var logEntry LogEntry
			require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry))

			assert.Equal(t, tt.message, logEntry.Message)
			assert.Equal(t, tt.level, logEntry.Level)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), logEntry.Error)
			} else {
				assert.Empty(t, logEntry.Error)
			}

			// タイムスタンプが現在時刻に近いことを確認
			logTime, err := time.Parse(time.RFC3339, logEntry.Timestamp)
			require.NoError(t, err)
			assert.Less(t, time.Since(logTime), time.Minute)
		})
	}
}

type recordingLogger struct {
	levels []string
}

func (r *recordingLogger) Log(level, message string, err error) {
	r.levels = append(r.levels, level)
}

func TestLevelFilter(t *testing.T) {
	tests := []struct {
		name string
		min  string
		want []string
	}{
		{name: "DEBUG以上", min: LevelDebug, want: []string{LevelDebug, LevelInfo, LevelWarn, LevelError}},
		{name: "WARN以上", min: LevelWarn, want: []string{LevelWarn, LevelError}},
		{name: "ERRORのみ", min: "error", want: []string{LevelError}},
		{name: "未知の閾値はINFO扱い", min: "verbose", want: []string{LevelInfo, LevelWarn, LevelError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingLogger{}
			f := NewLevelFilter(rec, tt.min)
			for _, level := range []string{LevelDebug, LevelInfo, LevelWarn, LevelError} {
				f.Log(level, "msg", nil)
			}
			assert.Equal(t, tt.want, rec.levels)
		})
	}
}

func TestLevelFilter_UnknownLevelPasses(t *testing.T) {
	rec := &recordingLogger{}
	NewLevelFilter(rec, LevelError).Log("TRACE", "msg", nil)
	assert.Equal(t, []string{"TRACE"}, rec.levels)
}

func TestJSONLogger_PathError(t *testing.T) {
	var buf strings.Builder
	cause := &fs.PathError{Op: "open", Path: "/site/index.html", Err: fs.ErrNotExist}
	NewJSONLogger(&buf).Log(LevelError, "ビルドに失敗しました", fmt.Errorf("コピー元ファイルを開けません: %w", cause))

	var logEntry LogEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry))
	assert.Equal(t, "open", logEntry.Op)
	assert.Equal(t, "/site/index.html", logEntry.Path)
	assert.Equal(t, "コピー元ファイルを開けません: open /site/index.html: file does not exist", logEntry.Error)
}

func TestJSONLogger_PlainErrorHasNoPath(t *testing.T) {
	var buf strings.Builder
	NewJSONLogger(&buf).Log(LevelError, "失敗", errors.New("設定が不正です"))

	out := buf.String()
	assert.NotContains(t, out, "\"path\"")
	assert.NotContains(t, out, "\"op\"")
}

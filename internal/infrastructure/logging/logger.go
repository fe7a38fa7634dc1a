// Package logging はロギング機能を提供します
package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
)

// ログレベル
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// LogEntry はログエントリを表す構造体です
type LogEntry struct {
	// Timestamp はログが記録された時刻をRFC3339形式で表します
	Timestamp string `json:"timestamp"`
	// Level はログレベル（DEBUG, INFO, WARN, ERROR）を表します
	Level string `json:"level"`
	// Message はログメッセージの内容を表します
	Message string `json:"message"`
	// Error はエラーが発生した場合のエラーメッセージを表します
	Error string `json:"error,omitempty"`
	// Op は失敗したファイルシステム操作（open, mkdir 等）を表します
	Op string `json:"op,omitempty"`
	// Path は失敗したファイルシステム操作の対象パスを表します
	Path string `json:"path,omitempty"`
}

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// JSONLogger はJSONフォーマットでログを出力するロガーです
type JSONLogger struct {
	writer io.Writer
}

// NewJSONLogger は新しいJSONLoggerインスタンスを作成します
func NewJSONLogger(writer io.Writer) *JSONLogger {
	if writer == nil {
		writer = os.Stderr
	}
	return &JSONLogger{writer: writer}
}

// Log はメッセージをJSONフォーマットでログ出力します。
// err の連鎖に *fs.PathError が含まれる場合は、その操作と対象パスも出力します。
func (l *JSONLogger) Log(level, message string, err error) {
	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Message:   message,
	}

	if err != nil {
		entry.Error = err.Error()
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			entry.Op = pathErr.Op
			entry.Path = pathErr.Path
		}
	}

	jsonData, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ログのJSONエンコードに失敗: %v\n", err)
		return
	}

	fmt.Fprintln(l.writer, string(jsonData))
}

// LevelFilter は指定レベル未満のログを破棄するロガーです
type LevelFilter struct {
	next Logger
	min  int
}

// NewLevelFilter は min 以上のレベルだけを next に渡す LevelFilter を作成します。
// 未知のレベル名は常に通過します。
func NewLevelFilter(next Logger, min string) *LevelFilter {
	rank, ok := levelRank[strings.ToUpper(min)]
	if !ok {
		rank = levelRank[LevelInfo]
	}
	return &LevelFilter{next: next, min: rank}
}

// Log はレベルが閾値以上の場合のみ出力します
func (f *LevelFilter) Log(level, message string, err error) {
	if rank, ok := levelRank[strings.ToUpper(level)]; ok && rank < f.min {
		return
	}
	f.next.Log(level, message, err)
}

// Nop は何も出力しないロガーです
type Nop struct{}

// Log は何もしません
func (Nop) Log(string, string, error) {}

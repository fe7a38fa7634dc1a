package model

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		mode fs.FileMode
		want EntryKind
	}{
		{name: "ディレクトリ", mode: fs.ModeDir | 0o755, want: KindDir},
		{name: "通常ファイル", mode: 0o644, want: KindFile},
		{name: "シンボリックリンク", mode: fs.ModeSymlink | 0o777, want: KindOther},
		{name: "ソケット", mode: fs.ModeSocket, want: KindOther},
		{name: "名前付きパイプ", mode: fs.ModeNamedPipe, want: KindOther},
		{name: "デバイス", mode: fs.ModeDevice | fs.ModeCharDevice, want: KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.mode))
		})
	}
}

func TestEntryKind_String(t *testing.T) {
	assert.Equal(t, "dir", KindDir.String())
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "other", KindOther.String())
}

func TestMirroredEntry_IsDir(t *testing.T) {
	tests := []struct {
		name  string
		entry MirroredEntry
		want  bool
	}{
		{
			name:  "ディレクトリエントリ",
			entry: MirroredEntry{Path: "/dist/assets/img", RelPath: "assets/img", Kind: KindDir, Depth: 1},
			want:  true,
		},
		{
			name:  "ファイルエントリ",
			entry: MirroredEntry{Path: "/dist/index.html", RelPath: "index.html", Kind: KindFile, Size: 12},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.IsDir())
		})
	}
}

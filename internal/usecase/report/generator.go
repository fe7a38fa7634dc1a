// Package report はビルド結果の一覧出力を提供します
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"SiteBuild/internal/domain/model"
)

// Generator はレポート生成機能を提供します
type Generator struct{}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator() *Generator {
	return &Generator{}
}

// WriteTree はエントリの深さに応じたインデントを付与し,
// フォルダ（[DIR]）とファイル（[FILE]）を一覧で出力します。ファイルにはサイズを付けます。
func (g *Generator) WriteTree(writer io.Writer, root string, entries []model.MirroredEntry) {
	fmt.Fprintf(writer, "%s\n", root)

	for _, entry := range entries {
		indent := strings.Repeat("  ", entry.Depth+1)
		if entry.IsDir() {
			fmt.Fprintf(writer, "%s[DIR]  %s\n", indent, entry.RelPath)
			continue
		}
		fmt.Fprintf(writer, "%s[FILE] %s (%s)\n", indent, entry.RelPath, humanize.IBytes(uint64(entry.Size)))
	}
}

// WriteSummary は件数と合計サイズを1行で出力します
func (g *Generator) WriteSummary(writer io.Writer, files, dirs int, bytes int64) {
	fmt.Fprintf(writer, "ファイル %s 件、ディレクトリ %s 件、合計 %s\n",
		humanize.Comma(int64(files)), humanize.Comma(int64(dirs)), humanize.IBytes(uint64(bytes)))
}

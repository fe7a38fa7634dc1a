// package model はドメインモデルを定義します
package model

import "io/fs"

// EntryKind はディレクトリエントリの種別を表します
type EntryKind int

const (
	// KindOther はディレクトリでも通常ファイルでもない要素（シンボリックリンク、ソケット、デバイス等）です
	KindOther EntryKind = iota
	// KindDir はディレクトリです
	KindDir
	// KindFile は通常ファイルです
	KindFile
)

// String はログ出力用の種別名を返します
func (k EntryKind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	default:
		return "other"
	}
}

// KindOf はファイルモードから種別を判定します。
// シンボリックリンクはリンク先に関係なく KindOther になります。
func KindOf(mode fs.FileMode) EntryKind {
	switch {
	case mode.IsDir():
		return KindDir
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// MirroredEntry はミラーリングによって出力先に作成された要素を表します
type MirroredEntry struct {
	// Path は出力先での絶対パスを表します
	Path string
	// RelPath は出力ルートからの相対パスを表します
	RelPath string
	// Kind は要素の種別を表します（KindDir または KindFile）
	Kind EntryKind
	// Depth は出力ルートからの深さを表します
	Depth int
	// Size はコピーしたバイト数を表します。ディレクトリは 0 です
	Size int64
}

// IsDir はディレクトリであるかどうかを返します
func (e MirroredEntry) IsDir() bool {
	return e.Kind == KindDir
}

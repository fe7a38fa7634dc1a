// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"SiteBuild/internal/domain/model"
	"SiteBuild/internal/infrastructure/logging"
)

// DefaultDirPerm は出力先ディレクトリ作成時のパーミッションです
const DefaultDirPerm = 0o755

// TreeMirror はディレクトリツリーの複製機能を提供するインターフェースです
type TreeMirror interface {
	Mirror(sourceDir, destDir string) ([]model.MirroredEntry, error)
}

// Mirror はソースディレクトリの構造とファイル内容を出力先へ複製する構造体です
type Mirror struct {
	logger logging.Logger
}

// NewMirror は新しい Mirror インスタンスを作成します
func NewMirror(logger logging.Logger) *Mirror {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Mirror{logger: logger}
}

// Mirror は sourceDir 配下を深さ優先（行きがけ順）で走査し、destDir 配下に同じ構造を作成します。
// ディレクトリは再帰的に複製し、通常ファイルは内容をそのままコピーします。
// それ以外の要素（シンボリックリンク等）は何もせずスキップします。
// 最初のエラーで処理を中断し、それまでにコピーした内容は残ります。
// 戻り値は destDir を基準とした作成済み要素の一覧です。
func (m *Mirror) Mirror(sourceDir, destDir string) ([]model.MirroredEntry, error) {
	var entries []model.MirroredEntry
	if err := m.mirrorDir(sourceDir, destDir, "", &entries); err != nil {
		return entries, err
	}
	return entries, nil
}

func (m *Mirror) mirrorDir(srcDir, dstDir, relDir string, entries *[]model.MirroredEntry) error {
	if err := os.MkdirAll(dstDir, DefaultDirPerm); err != nil {
		return fmt.Errorf("ディレクトリの作成に失敗しました: %w", err)
	}

	children, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("ディレクトリの読み込みに失敗しました: %w", err)
	}

	for _, child := range children {
		srcPath := filepath.Join(srcDir, child.Name())
		dstPath := filepath.Join(dstDir, child.Name())
		relPath := filepath.Join(relDir, child.Name())

		switch model.KindOf(child.Type()) {
		case model.KindDir:
			*entries = append(*entries, model.MirroredEntry{
				Path:    dstPath,
				RelPath: relPath,
				Kind:    model.KindDir,
				Depth:   depthOf(relPath),
			})
			if err := m.mirrorDir(srcPath, dstPath, relPath, entries); err != nil {
				return err
			}
		case model.KindFile:
			n, err := CopyFile(srcPath, dstPath)
			if err != nil {
				return err
			}
			*entries = append(*entries, model.MirroredEntry{
				Path:    dstPath,
				RelPath: relPath,
				Kind:    model.KindFile,
				Depth:   depthOf(relPath),
				Size:    n,
			})
			m.logger.Log(logging.LevelDebug, fmt.Sprintf("ファイルをコピーしました: %s", relPath), nil)
		default:
			// 種別 other は意図的に無視する
			m.logger.Log(logging.LevelDebug, fmt.Sprintf("通常ファイルでもディレクトリでもないためスキップ: %s", srcPath), nil)
		}
	}
	return nil
}

// CopyFile は src の内容を dst へそのままコピーし、コピーしたバイト数を返します。
// dst が既に存在する場合は警告なしに上書きします。dst の親ディレクトリは作成しません。
func CopyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("コピー元ファイルを開けません: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, fmt.Errorf("コピー元ファイルの情報取得に失敗しました: %w", err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("コピー元が通常ファイルではありません: %s", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("コピー先ファイルを作成できません: %w", err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, fmt.Errorf("ファイルのコピーに失敗しました (%s): %w", src, err)
	}
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("コピー先ファイルの書き込みに失敗しました (%s): %w", dst, err)
	}
	return n, nil
}

// ProbeDir は path がディレクトリとして存在するかを調べます。
// 存在しない場合、ディレクトリでない場合、調査自体に失敗した場合はすべて false です。
func ProbeDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func depthOf(relPath string) int {
	return strings.Count(relPath, string(os.PathSeparator))
}

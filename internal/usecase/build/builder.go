// Package build は静的サイトのビルド処理を提供します
package build

import (
	"fmt"
	"os"
	"path/filepath"

	"SiteBuild/internal/domain/model"
	"SiteBuild/internal/infrastructure/config"
	"SiteBuild/internal/infrastructure/filesystem"
	"SiteBuild/internal/infrastructure/logging"
)

// Summary はビルド結果の集計です
type Summary struct {
	// OutputDir は出力ルートの絶対パスです
	OutputDir string
	// Entries は出力ルート配下に作成した要素です（出力ルート基準の相対パス）
	Entries []model.MirroredEntry
	// FileCount はコピーしたファイル数です
	FileCount int
	// DirCount は作成したディレクトリ数です（出力ルート自身は含みません）
	DirCount int
	// Bytes はコピーした合計バイト数です
	Bytes int64
	// AssetsFound は任意ディレクトリが存在してコピーされたかどうかです
	AssetsFound bool
}

// Builder は出力ルートの作成、トップレベルファイルのコピー、任意ディレクトリのミラーリングを行います
type Builder struct {
	root   string
	cfg    config.Config
	mirror filesystem.TreeMirror
	logger logging.Logger
}

// NewBuilder は新しい Builder インスタンスを作成します。root は相対パスの基準となる作業ルートです
func NewBuilder(root string, cfg config.Config, mirror filesystem.TreeMirror, logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.Nop{}
	}
	if mirror == nil {
		mirror = filesystem.NewMirror(logger)
	}
	return &Builder{root: root, cfg: cfg, mirror: mirror, logger: logger}
}

// Run はビルドを一度だけ実行します。設定が不正な場合は何も作成せずにエラーを返します。
// それ以外のエラーは発生元のエラーをラップして返し、途中までにコピーした内容はそのまま残ります。
func (b *Builder) Run() (Summary, error) {
	if err := b.cfg.Validate(); err != nil {
		return Summary{}, fmt.Errorf("ビルド設定が不正です: %w", err)
	}

	outDir, err := filepath.Abs(filepath.Join(b.root, b.cfg.OutputDir))
	if err != nil {
		return Summary{}, fmt.Errorf("出力ディレクトリのパス解決に失敗しました: %w", err)
	}
	summary := Summary{OutputDir: outDir}

	if err := os.MkdirAll(outDir, filesystem.DefaultDirPerm); err != nil {
		return summary, fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}
	b.logger.Log(logging.LevelInfo, fmt.Sprintf("出力ディレクトリ: %s", outDir), nil)

	for _, name := range b.cfg.Files {
		src := filepath.Join(b.root, name)
		dst := filepath.Join(outDir, filepath.Base(name))
		n, err := filesystem.CopyFile(src, dst)
		if err != nil {
			return summary, err
		}
		summary.add(model.MirroredEntry{
			Path:    dst,
			RelPath: filepath.Base(name),
			Kind:    model.KindFile,
			Size:    n,
		})
		b.logger.Log(logging.LevelInfo, fmt.Sprintf("ファイルをコピーしました: %s", name), nil)
	}

	if b.cfg.AssetsDir == "" {
		return summary, nil
	}

	assetsSrc := filepath.Join(b.root, b.cfg.AssetsDir)
	if !filesystem.ProbeDir(assetsSrc) {
		b.logger.Log(logging.LevelDebug, fmt.Sprintf("ディレクトリが存在しないためスキップ: %s", assetsSrc), nil)
		return summary, nil
	}
	summary.AssetsFound = true

	assetsName := filepath.Base(b.cfg.AssetsDir)
	assetsDst := filepath.Join(outDir, assetsName)
	summary.add(model.MirroredEntry{
		Path:    assetsDst,
		RelPath: assetsName,
		Kind:    model.KindDir,
	})

	entries, err := b.mirror.Mirror(assetsSrc, assetsDst)
	for _, e := range entries {
		e.RelPath = filepath.Join(assetsName, e.RelPath)
		e.Depth++
		summary.add(e)
	}
	if err != nil {
		return summary, err
	}
	b.logger.Log(logging.LevelInfo, fmt.Sprintf("ディレクトリをコピーしました: %s (%d 件)", b.cfg.AssetsDir, len(entries)), nil)

	return summary, nil
}

func (s *Summary) add(e model.MirroredEntry) {
	s.Entries = append(s.Entries, e)
	if e.IsDir() {
		s.DirCount++
		return
	}
	s.FileCount++
	s.Bytes += e.Size
}

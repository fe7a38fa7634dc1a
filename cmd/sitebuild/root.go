package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"SiteBuild/internal/infrastructure/config"
	"SiteBuild/internal/infrastructure/filesystem"
	"SiteBuild/internal/infrastructure/logging"
	"SiteBuild/internal/usecase/build"
	"SiteBuild/internal/usecase/report"
)

// ビルド時に -ldflags で上書きされます
var version = "dev"

type rootFlags struct {
	dir        string
	configPath string
	verbose    bool
	logLevel   string
	list       bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "sitebuild",
		Short:         "静的ファイルを出力ディレクトリへコピーします",
		Long:          "作業ルートのトップレベルファイル（既定: index.html）を出力ルート（既定: dist）へコピーし、\nassets ディレクトリが存在すればその配下を再帰的に複製します。",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(stdout, stderr, flags)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.DisableDefaultCmd = true

	root.Flags().StringVarP(&flags.dir, "dir", "C", "", "作業ルート（既定: カレントディレクトリ）")
	root.Flags().StringVar(&flags.configPath, "config", "", "設定ファイルのパス（既定: <作業ルート>/"+config.DefaultFileName+" が存在すれば使用）")
	root.Flags().BoolVar(&flags.verbose, "verbose", false, "JSON 形式の詳細ログを標準エラーへ出力")
	root.Flags().StringVar(&flags.logLevel, "log-level", logging.LevelInfo, "--verbose 時に出力する最低ログレベル（DEBUG, INFO, WARN, ERROR）")
	root.Flags().BoolVar(&flags.list, "list", false, "ビルド後に出力ツリーを標準出力へ表示")

	versionCmd := &cobra.Command{
		Use:           "version",
		Short:         "バージョン情報を表示します",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(stdout)
		},
	}
	root.AddCommand(versionCmd)
	return root
}

// printVersion は --version と同じ形式でバージョンを出力します
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "sitebuild version %s\n", version)
}

func runBuild(stdout, stderr io.Writer, flags *rootFlags) error {
	workDir := flags.dir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("カレントディレクトリの取得に失敗しました: %w", err)
		}
		workDir = wd
	}

	cfg, err := loadConfig(workDir, flags.configPath)
	if err != nil {
		return err
	}

	var logger logging.Logger = logging.Nop{}
	if flags.verbose {
		logger = logging.NewLevelFilter(logging.NewJSONLogger(stderr), flags.logLevel)
	}

	builder := build.NewBuilder(workDir, cfg, filesystem.NewMirror(logger), logger)
	summary, err := builder.Run()
	if err != nil {
		return err
	}
	logger.Log(logging.LevelInfo, fmt.Sprintf("ビルドが完了しました: ファイル %d 件、ディレクトリ %d 件", summary.FileCount, summary.DirCount), nil)

	if flags.list {
		generator := report.NewGenerator()
		generator.WriteTree(stdout, cfg.OutputDir, summary.Entries)
		generator.WriteSummary(stdout, summary.FileCount, summary.DirCount, summary.Bytes)
	}
	return nil
}

func loadConfig(workDir, explicit string) (config.Config, error) {
	if explicit != "" {
		return config.LoadFile(explicit, true)
	}
	return config.LoadFile(filepath.Join(workDir, config.DefaultFileName), false)
}

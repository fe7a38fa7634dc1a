// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"io"
	"os"

	"SiteBuild/internal/infrastructure/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run はコマンドを実行し、プロセスの終了コードを返します
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		logging.NewJSONLogger(stderr).Log(logging.LevelError, "ビルドに失敗しました", err)
		return 1
	}
	return 0
}

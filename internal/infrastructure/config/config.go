// Package config はビルド設定の読み込みを提供します
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName は作業ルートで自動的に探す設定ファイル名です
const DefaultFileName = "sitebuild.yaml"

// デフォルト値
const (
	DefaultOutputDir = "dist"
	DefaultAssetsDir = "assets"
)

// DefaultFiles は出力ルートへそのままコピーするトップレベルファイルの既定一覧です
var DefaultFiles = []string{"index.html"}

// Config はビルド設定を表す構造体です。パスはすべて作業ルートからの相対パスです。
type Config struct {
	// OutputDir は出力ルートのディレクトリ名です
	OutputDir string `yaml:"output_dir"`
	// Files は出力ルートへフラットにコピーするファイルの一覧です
	Files []string `yaml:"files"`
	// AssetsDir は存在する場合のみ再帰的にコピーする任意ディレクトリです。空の場合は無効です
	AssetsDir string `yaml:"assets_dir"`
}

// Default はデフォルト設定を返します
func Default() Config {
	files := make([]string, len(DefaultFiles))
	copy(files, DefaultFiles)
	return Config{
		OutputDir: DefaultOutputDir,
		Files:     files,
		AssetsDir: DefaultAssetsDir,
	}
}

// LoadFile は YAML 設定ファイルを読み込みます。
// ファイルに書かれていないキーはデフォルト値のままです。
// required が false の場合、ファイルが存在しなければデフォルト設定を返します。
func LoadFile(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("設定ファイルの解析に失敗しました (%s): %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("設定ファイルが不正です (%s): %w", path, err)
	}
	return cfg, nil
}

// Validate は設定値を検証します
func (c Config) Validate() error {
	if err := validateRelPath("output_dir", c.OutputDir); err != nil {
		return err
	}
	// トップレベルファイルは出力ルートへフラットにコピーするため、ファイル名が重複すると上書きされる
	seen := make(map[string]string, len(c.Files))
	for i, f := range c.Files {
		if err := validateRelPath(fmt.Sprintf("files[%d]", i), f); err != nil {
			return err
		}
		base := filepath.Base(f)
		if prev, ok := seen[base]; ok {
			return fmt.Errorf("files のファイル名 %s が重複しています: %s, %s", base, prev, f)
		}
		seen[base] = f
	}
	if c.AssetsDir != "" {
		if err := validateRelPath("assets_dir", c.AssetsDir); err != nil {
			return err
		}
		// 出力ルートと assets が入れ子になるとミラーが自身の出力を再帰的にコピーし続ける
		if overlaps(c.OutputDir, c.AssetsDir) {
			return fmt.Errorf("output_dir と assets_dir は入れ子にできません: %s, %s", c.OutputDir, c.AssetsDir)
		}
	}
	return nil
}

// overlaps は a と b が同じパスか、一方が他方の配下にある場合に true を返します
func overlaps(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if a == b {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(a, b+sep) || strings.HasPrefix(b, a+sep)
}

func validateRelPath(key, p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("%s が指定されていません", key)
	}
	if filepath.IsAbs(p) {
		return fmt.Errorf("%s には相対パスを指定してください: %s", key, p)
	}
	clean := filepath.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%s は作業ルート配下のパスを指定してください: %s", key, p)
	}
	return nil
}

// internal/localprogress/path.go
package localprogress

import "strings"

// NormalizeRelativeCasePath はケースファイルの相対パス表記を正規化します。
// すべての参照 (読み込み・保存・マージ) はこの正規化済みパスをキーに使うため、
// 呼び出し側の表記ゆれ ("./cases/民法/1.js" と "public/cases/民法/1" など) が
// 同じファイルに解決されることをここで保証します。冪等です。
func NormalizeRelativeCasePath(p string) string {
	normalized := strings.ReplaceAll(p, "\\", "/")
	normalized = strings.TrimPrefix(normalized, "./")

	lower := strings.ToLower(normalized)
	switch {
	case strings.HasPrefix(lower, "public/cases/"):
		normalized = normalized[len("public/cases/"):]
	case strings.HasPrefix(lower, "cases/"):
		normalized = normalized[len("cases/"):]
	}

	normalized = strings.TrimPrefix(normalized, "/")
	normalized = strings.TrimSuffix(normalized, ".js")
	return normalized
}

// Slug は正規化済みパスからファイル名に使える文字列を作ります ("/" → "__")。
func Slug(normalizedPath string) string {
	return strings.ReplaceAll(normalizedPath, "/", "__")
}

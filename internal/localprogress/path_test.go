// internal/localprogress/path_test.go
package localprogress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NormalizeRelativeCasePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"素の相対パス", "民法/1", "民法/1"},
		{"./付き", "./民法/1", "民法/1"},
		{"cases/プレフィックス", "cases/民法/1", "民法/1"},
		{"public/cases/プレフィックス", "public/cases/民法/1", "民法/1"},
		{"./public/cases/プレフィックス", "./public/cases/民法/1", "民法/1"},
		{"プレフィックスの大文字小文字を無視", "Public/Cases/民法/1", "民法/1"},
		{".js拡張子を除去", "cases/民法/1.js", "民法/1"},
		{"バックスラッシュ区切り", `cases\民法\1.js`, "民法/1"},
		{"先頭スラッシュ", "/民法/1", "民法/1"},
		{"空文字", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRelativeCasePath(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, NormalizeRelativeCasePath(got), "正規化は冪等であること")
		})
	}
}

func Test_Slug(t *testing.T) {
	assert.Equal(t, "民法__1", Slug("民法/1"))
	assert.Equal(t, "憲法__人権__3", Slug("憲法/人権/3"))
	assert.Equal(t, "flat", Slug("flat"))
}

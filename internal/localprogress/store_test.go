// internal/localprogress/store_test.go
package localprogress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Store_Load_MissingFile(t *testing.T) {
	s := NewStore(t.TempDir())

	doc, filePath, err := s.Load("民法/1")

	require.NoError(t, err)
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, "民法/1", doc.RelativePath)
	assert.NotNil(t, doc.QA)
	assert.Empty(t, doc.QA)
	assert.Equal(t, filepath.Base(filePath), "民法__1.json")
}

func Test_Store_Load_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "民法__1.json"), []byte("{broken"), 0o644))

	// 壊れたファイルを黙って空扱いしない
	doc, _, err := s.Load("民法/1")
	assert.Error(t, err)
	assert.Nil(t, doc)
}

func Test_Store_SaveAndLoad_RoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	saved, err := s.Save("民法/1", func(draft *Document) *Document {
		draft.QA["7"] = map[string]any{"status": "済"}
		return nil
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.UpdatedAt)

	loaded, _, err := s.Load("民法/1")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Version)
	assert.Equal(t, "民法/1", loaded.RelativePath)
	require.Contains(t, loaded.QA, "7")
	assert.Equal(t, "済", loaded.QA["7"]["status"])
}

func Test_Store_Save_PathSpellingsShareOneFile(t *testing.T) {
	// 表記ゆれのあるパスで保存しても同じファイルに解決される
	s := NewStore(t.TempDir())

	_, err := s.Save("./public/cases/民法/1.js", func(draft *Document) *Document {
		draft.QA["1"] = map[string]any{"status": "要"}
		return nil
	})
	require.NoError(t, err)

	_, err = s.Save("cases/民法/1", func(draft *Document) *Document {
		draft.QA["2"] = map[string]any{"status": "済"}
		return nil
	})
	require.NoError(t, err)

	doc, _, err := s.Load("民法/1")
	require.NoError(t, err)
	assert.Len(t, doc.QA, 2)
	assert.Equal(t, "要", doc.QA["1"]["status"])
	assert.Equal(t, "済", doc.QA["2"]["status"])
}

func Test_Store_Save_ReplaceDocument(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.Save("m1", func(draft *Document) *Document {
		draft.QA["1"] = map[string]any{"status": "未"}
		return nil
	})
	require.NoError(t, err)

	// mutate が別のドキュメントを返した場合はそれで全置換
	_, err = s.Save("m1", func(draft *Document) *Document {
		return &Document{
			QA: map[string]map[string]any{"9": {"status": "済"}},
		}
	})
	require.NoError(t, err)

	doc, _, err := s.Load("m1")
	require.NoError(t, err)
	assert.NotContains(t, doc.QA, "1")
	require.Contains(t, doc.QA, "9")
	// 欠けたフィールドは保存時に既定値で補完される
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, "m1", doc.RelativePath)
}

func Test_Store_Save_MutateDoesNotLeakIntoLoadedState(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.Save("m1", func(draft *Document) *Document {
		draft.QA["1"] = map[string]any{"status": "未"}
		return nil
	})
	require.NoError(t, err)

	before, _, err := s.Load("m1")
	require.NoError(t, err)

	// mutate 内でドラフトを壊しても、渡されるのはコピーなので以前の読み込み結果は不変
	_, err = s.Save("m1", func(draft *Document) *Document {
		delete(draft.QA, "1")
		draft.QA["2"] = map[string]any{"status": "済"}
		return nil
	})
	require.NoError(t, err)

	assert.Contains(t, before.QA, "1")
	assert.NotContains(t, before.QA, "2")
}

func Test_Store_Save_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	_, err := s.Save("m1", func(draft *Document) *Document { return nil })
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "m1.json", entries[0].Name())
}

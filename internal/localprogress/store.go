// internal/localprogress/store.go
package localprogress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Document は1モジュール分のローカル進捗ファイル ({dir}/{slug}.json) の中身です。
// バケット側と違い、qa は qaId をキーにしたマップで O(1) 参照になっています。
type Document struct {
	Version      int                       `json:"version"`
	RelativePath string                    `json:"relativePath"`
	UpdatedAt    string                    `json:"updatedAt,omitempty"`
	QA           map[string]map[string]any `json:"qa"`
}

// Store はローカルディスク上の進捗ドキュメントの読み書きを行います。
// プロセス内にドキュメントのキャッシュは持ちません (常にファイルが正)。
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// FilePath は正規化済みパスに対応する進捗ファイルのパスを返します。
func (s *Store) FilePath(relativePath string) string {
	return filepath.Join(s.dir, Slug(NormalizeRelativeCasePath(relativePath))+".json")
}

// Load は進捗ドキュメントを読み込みます。ファイルが無い場合はエラーではなく
// 空のスケルトンを返します。存在するのにJSONとして壊れている場合はエラーです
// (黙って空扱いにするとデータ消失と区別できなくなるため、呼び出し側に委ねる)。
// 診断用に解決済みファイルパスも返します。
func (s *Store) Load(relativePath string) (*Document, string, error) {
	normalized := NormalizeRelativeCasePath(relativePath)
	filePath := filepath.Join(s.dir, Slug(normalized)+".json")

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, filePath, fmt.Errorf("failed to ensure progress directory %q: %w", s.dir, err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return emptyDocument(normalized), filePath, nil
		}
		return nil, filePath, fmt.Errorf("failed to read progress file %q: %w", filePath, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, filePath, fmt.Errorf("failed to parse progress file %q: %w", filePath, err)
	}
	sanitizeDocument(&doc, normalized)
	return &doc, filePath, nil
}

// Save は read-modify-write で進捗ドキュメントを更新します。
// mutate はドラフトをその場で書き換えても、置き換えのドキュメントを返しても
// かまいません (nil を返した場合はその場の変更を採用)。
// 書き込みは一時ファイル + rename で行い、途中クラッシュで読める壊れファイルが
// 残らないようにします。rename は後勝ちであり、同一パスへの並行 Save で
// 先行側の変更が失われることまでは防ぎません。
func (s *Store) Save(relativePath string, mutate func(draft *Document) *Document) (*Document, error) {
	current, filePath, err := s.Load(relativePath)
	if err != nil {
		return nil, err
	}

	draft, err := cloneDocument(current)
	if err != nil {
		return nil, err
	}

	if result := mutate(draft); result != nil {
		draft = result
	}

	sanitizeDocument(draft, NormalizeRelativeCasePath(relativePath))
	draft.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal progress document: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".qa-progress-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file in %q: %w", s.dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, fmt.Errorf("failed to write temp file %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("failed to close temp file %q: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, filePath); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("failed to rename temp file to %q: %w", filePath, err)
	}

	return draft, nil
}

func emptyDocument(normalizedPath string) *Document {
	return &Document{
		Version:      1,
		RelativePath: normalizedPath,
		QA:           map[string]map[string]any{},
	}
}

// sanitizeDocument は欠けたフィールドを既定値で埋めます。
func sanitizeDocument(doc *Document, normalizedPath string) {
	if doc.Version == 0 {
		doc.Version = 1
	}
	doc.RelativePath = NormalizeRelativeCasePath(doc.RelativePath)
	if doc.RelativePath == "" {
		doc.RelativePath = normalizedPath
	}
	if doc.QA == nil {
		doc.QA = map[string]map[string]any{}
	}
}

// cloneDocument はJSON往復でディープコピーを作ります。
// mutate が元のドキュメントを壊しても読み込み済みの状態に影響させないためです。
func cloneDocument(doc *Document) (*Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to clone progress document: %w", err)
	}
	var clone Document
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, fmt.Errorf("failed to clone progress document: %w", err)
	}
	if clone.QA == nil {
		clone.QA = map[string]map[string]any{}
	}
	return &clone, nil
}

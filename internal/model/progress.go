// internal/model/progress.go
package model

import (
	"encoding/json"
	"reflect"
)

// QAStatus は進捗ステータスの観測値。ストレージ層では閉じた集合として
// 検証しない (自由形式の文字列として素通しする)。
const (
	StatusUntouched   = "未"
	StatusNeedsReview = "要"
	StatusDone        = "済"
)

// ProgressRecord は1ユーザー・1モジュール内の1設問分の永続化された進捗です。
// ワイヤ上・バケット上ともに snake_case。FillDrill はJSON文字列化した状態で保持します。
type ProgressRecord struct {
	ModuleID   string          `json:"module_id"`
	QaID       any             `json:"qa_id"`
	Status     string          `json:"status"`
	FillDrill  string          `json:"fill_drill"`
	Check      json.RawMessage `json:"check,omitempty"`
	Notes      json.RawMessage `json:"notes,omitempty"`
	Meta       json.RawMessage `json:"meta,omitempty"`
	BlankStats json.RawMessage `json:"blank_stats,omitempty"`
	UpdatedAt  string          `json:"updated_at"`
}

// ProgressDocument は qa-progress/{username}/{moduleId}.json の中身です。
// qa_id はドキュメント内で一意 (既存IDへの書き込みはその場で置換、新規IDは末尾に追加)。
type ProgressDocument struct {
	Progress  []ProgressRecord `json:"progress"`
	UpdatedAt string           `json:"updatedAt,omitempty"`
}

// SameQaID は qa_id の同一判定を行います。JSONデコード後の動的型ごと比較するため、
// 数値の 5 と文字列の "5" は別IDとして扱われます (JSの厳密等価に合わせる)。
func SameQaID(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// ProgressItem は進捗保存の1件分の入力です。QaID は「キー欠落」と
// 「0 や 空文字などのゼロ値」を区別するため RawMessage で受けます
// (設問IDは0始まりのことがあるので、0 は正当な値)。
type ProgressItem struct {
	ModuleID   string          `json:"moduleId"`
	QaID       json.RawMessage `json:"qaId"`
	Status     string          `json:"status"`
	FillDrill  map[string]any  `json:"fillDrill"`
	Check      json.RawMessage `json:"check"`
	Notes      json.RawMessage `json:"notes"`
	Meta       json.RawMessage `json:"meta"`
	BlankStats json.RawMessage `json:"blankStats"`
}

// QaIDValue はデコード済みの qa_id 値を返します。
func (p *ProgressItem) QaIDValue() (any, error) {
	var v any
	if err := json.Unmarshal(p.QaID, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// SaveProgressRequest は POST /api/qa-progress のリクエストボディ
type SaveProgressRequest struct {
	Username string `json:"username"`
	ProgressItem
}

// BatchSaveProgressRequest は POST /api/qa-progress/batch のリクエストボディ
type BatchSaveProgressRequest struct {
	Username     string         `json:"username"`
	ProgressList []ProgressItem `json:"progressList"`
}

// ProgressListResponse は進捗取得系エンドポイントのレスポンス
type ProgressListResponse struct {
	Progress []ProgressRecord `json:"progress"`
}

type SaveProgressResponse struct {
	Success bool `json:"success"`
}

// BatchSaveProgressResponse の Count は入力件数 (モジュールのグループ数ではない)
type BatchSaveProgressResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

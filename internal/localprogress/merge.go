// internal/localprogress/merge.go
package localprogress

import (
	"fmt"
	"time"
)

// QA はレンダリング層が持つ設問オブジェクトのうち、この層が読み書きする
// フィールドだけを表したものです。それ以外のフィールドは関知しません。
type QA struct {
	ID           any            `json:"id,omitempty"`
	Status       string         `json:"status,omitempty"`
	Check        any            `json:"check,omitempty"`
	Notes        any            `json:"notes,omitempty"`
	ProgressMeta map[string]any `json:"progressMeta,omitempty"`
	BlankStats   any            `json:"blankStats,omitempty"`
	FillDrill    map[string]any `json:"fillDrill,omitempty"`
	LastUpdated  string         `json:"lastUpdated,omitempty"`
}

// Case はケース (1モジュール) のメモリ上の表現です。
type Case struct {
	QuestionsAndAnswers []*QA `json:"questionsAndAnswers"`
}

// qaKey は設問IDをドキュメントの qa マップのキー文字列にします。
// JSONデコード後の数値 (float64) の 7 は "7" になります。
func qaKey(id any) string {
	if f, ok := id.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(id)
}

// MergeProgressIntoCase は読み込んだ進捗ドキュメントをケースの設問に重ねます。
// 保存済みの進捗がある設問だけを更新し、無い設問には触れません。
// ドキュメント自体は変更しません (表示用のビューを作るだけ)。
func MergeProgressIntoCase(c *Case, doc *Document) {
	if c == nil || doc == nil || len(doc.QA) == 0 {
		return
	}
	for _, qa := range c.QuestionsAndAnswers {
		if qa == nil || qa.ID == nil {
			continue
		}
		rec, ok := doc.QA[qaKey(qa.ID)]
		if !ok {
			continue
		}

		if status, ok := rec["status"].(string); ok {
			qa.Status = status
		}
		if check, ok := rec["check"]; ok {
			qa.Check = check
		}
		if notes, ok := rec["notes"]; ok {
			qa.Notes = notes
		}
		if meta, ok := rec["meta"].(map[string]any); ok {
			if qa.ProgressMeta == nil {
				qa.ProgressMeta = map[string]any{}
			}
			for k, v := range meta {
				qa.ProgressMeta[k] = v
			}
		}
		if blankStats, ok := rec["blankStats"]; ok {
			qa.BlankStats = blankStats
		}
		if fillDrill, ok := rec["fillDrill"].(map[string]any); ok {
			qa.FillDrill = MergeFillDrill(qa.FillDrill, fillDrill)
		}
		if lastUpdated, ok := rec["lastUpdated"].(string); ok {
			qa.LastUpdated = lastUpdated
		}
	}
}

// MergeFillDrill は fill-drill ブロブ2つを深い和集合としてマージします。
// 進捗側が一部のキーしか持っていなくても、ベース側に蓄積された
// ドリル履歴を失わないことがこの規則の目的です。
//   - clearedLevels: 進捗側にあれば進捗側、なければベース側
//   - templates / attempts: 浅い和集合 (進捗側のキーが優先)
//   - history / lastAttempt: 進捗側にあれば素通し、なければベース側を維持
func MergeFillDrill(base, progress map[string]any) map[string]any {
	if progress == nil {
		return base
	}
	if base == nil {
		base = map[string]any{}
	}

	merged := map[string]any{}

	if v, ok := base["clearedLevels"]; ok {
		merged["clearedLevels"] = v
	}
	if v, ok := progress["clearedLevels"]; ok {
		merged["clearedLevels"] = v
	}

	for _, key := range []string{"templates", "attempts"} {
		baseMap, _ := base[key].(map[string]any)
		progMap, _ := progress[key].(map[string]any)
		if baseMap == nil && progMap == nil {
			continue
		}
		union := map[string]any{}
		for k, v := range baseMap {
			union[k] = v
		}
		for k, v := range progMap {
			union[k] = v
		}
		merged[key] = union
	}

	for _, key := range []string{"history", "lastAttempt"} {
		if v, ok := progress[key]; ok {
			merged[key] = v
		} else if v, ok := base[key]; ok {
			merged[key] = v
		}
	}

	return merged
}

// BuildProgressPayload は編集後の設問リストから永続化用の {qaId: fields} マップを
// 作ります。id の無い設問は黙ってスキップします (装飾用エントリはIDを持たない)。
// lastUpdated は設問側の値があればそれを使い、なければ現在時刻を入れます。
func BuildProgressPayload(qas []*QA) map[string]map[string]any {
	now := time.Now().UTC().Format(time.RFC3339)
	payload := map[string]map[string]any{}

	for _, qa := range qas {
		if qa == nil || qa.ID == nil {
			continue
		}
		entry := map[string]any{}
		if qa.Status != "" {
			entry["status"] = qa.Status
		}
		if qa.Check != nil {
			entry["check"] = qa.Check
		}
		if qa.Notes != nil {
			entry["notes"] = qa.Notes
		}
		if len(qa.ProgressMeta) > 0 {
			entry["meta"] = qa.ProgressMeta
		}
		if qa.BlankStats != nil {
			entry["blankStats"] = qa.BlankStats
		}
		if qa.FillDrill != nil {
			entry["fillDrill"] = qa.FillDrill
		}
		if qa.LastUpdated != "" {
			entry["lastUpdated"] = qa.LastUpdated
		} else {
			entry["lastUpdated"] = now
		}
		payload[qaKey(qa.ID)] = entry
	}

	return payload
}

// internal/service/progress_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"law_qa_keep/internal/middleware"
	"law_qa_keep/internal/model"
	"law_qa_keep/internal/repository"
)

// ProgressService は設問単位の学習進捗の読み書きを担当します。
// 書き込みはすべてドキュメント全体の read-modify-write です。楽観ロック等の
// 競合検出は行いません (後勝ち)。想定アクセスパターンは「1ユーザーが
// 1タブから自分の進捗を編集する」であり、既存保存データとの互換のため
// バージョンフィールドは導入していません。
type ProgressService interface {
	GetModuleProgress(ctx context.Context, username, moduleID string) ([]model.ProgressRecord, error)
	GetAllProgress(ctx context.Context, username string) ([]model.ProgressRecord, error)
	SaveProgress(ctx context.Context, username string, item *model.ProgressItem) error
	SaveProgressBatch(ctx context.Context, username string, items []model.ProgressItem) (int, error)
}

type progressService struct {
	progRepo repository.ProgressRepository
}

func NewProgressService(progRepo repository.ProgressRepository) ProgressService {
	return &progressService{progRepo: progRepo}
}

func (s *progressService) GetModuleProgress(ctx context.Context, username, moduleID string) ([]model.ProgressRecord, error) {
	doc, err := s.progRepo.GetDocument(ctx, username, moduleID)
	if err != nil {
		return nil, err
	}
	return doc.Progress, nil
}

func (s *progressService) GetAllProgress(ctx context.Context, username string) ([]model.ProgressRecord, error) {
	logger := middleware.GetLogger(ctx).With("username", username)

	keys, err := s.progRepo.ListModuleKeys(ctx, username)
	if err != nil {
		logger.Error("Failed to list progress keys", "error", err)
		return nil, err
	}

	// モジュール数に比例した逐次フェッチ。ページングなし (ストア既定の上限に委ねる)。
	all := []model.ProgressRecord{}
	for _, key := range keys {
		doc, err := s.progRepo.GetDocumentByKey(ctx, key)
		if err != nil {
			logger.Error("Failed to fetch progress document", "key", key, "error", err)
			return nil, err
		}
		all = append(all, doc.Progress...)
	}

	logger.Info("Collected progress records", "modules", len(keys), "records", len(all))
	return all, nil
}

func (s *progressService) SaveProgress(ctx context.Context, username string, item *model.ProgressItem) error {
	logger := middleware.GetLogger(ctx).With("username", username, "module_id", item.ModuleID)

	doc, err := s.progRepo.GetDocument(ctx, username, item.ModuleID)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err := applyProgressItem(doc, item, now); err != nil {
		logger.Warn("Failed to apply progress item", "error", err)
		return err
	}
	doc.UpdatedAt = now

	if err := s.progRepo.PutDocument(ctx, username, item.ModuleID, doc); err != nil {
		logger.Error("Failed to put progress document", "error", err)
		return err
	}
	logger.Info("Progress saved", "records", len(doc.Progress))
	return nil
}

func (s *progressService) SaveProgressBatch(ctx context.Context, username string, items []model.ProgressItem) (int, error) {
	logger := middleware.GetLogger(ctx).With("username", username)

	// moduleId ごとにグループ化し、モジュール1つにつき read-modify-write を1回にする。
	// グループの処理順は入力での初出順を保つ。
	groups := map[string][]*model.ProgressItem{}
	order := []string{}
	for i := range items {
		item := &items[i]
		if _, ok := groups[item.ModuleID]; !ok {
			order = append(order, item.ModuleID)
		}
		groups[item.ModuleID] = append(groups[item.ModuleID], item)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, moduleID := range order {
		doc, err := s.progRepo.GetDocument(ctx, username, moduleID)
		if err != nil {
			return 0, err
		}
		for _, item := range groups[moduleID] {
			if err := applyProgressItem(doc, item, now); err != nil {
				return 0, err
			}
		}
		doc.UpdatedAt = now
		if err := s.progRepo.PutDocument(ctx, username, moduleID, doc); err != nil {
			logger.Error("Failed to put progress document", "module_id", moduleID, "error", err)
			return 0, err
		}
	}

	logger.Info("Progress batch saved", "items", len(items), "modules", len(order))
	return len(items), nil
}

// applyProgressItem は進捗1件をドキュメントに反映します。
// 既存の qa_id があればレコードをその場で置換し (fill_drill だけはキー単位でマージ)、
// なければ末尾に追加します。
func applyProgressItem(doc *model.ProgressDocument, item *model.ProgressItem, now string) error {
	qaID, err := item.QaIDValue()
	if err != nil {
		return model.NewAppError("INVALID_QA_ID", "qaIdの形式が正しくありません。", "qaId", model.ErrInvalidInput)
	}

	record := model.ProgressRecord{
		ModuleID:   item.ModuleID,
		QaID:       qaID,
		Status:     item.Status,
		Check:      item.Check,
		Notes:      item.Notes,
		Meta:       item.Meta,
		BlankStats: item.BlankStats,
		UpdatedAt:  now,
	}

	for i := range doc.Progress {
		if model.SameQaID(doc.Progress[i].QaID, qaID) {
			record.FillDrill = mergeFillDrillJSON(doc.Progress[i].FillDrill, item.FillDrill)
			doc.Progress[i] = record
			return nil
		}
	}
	record.FillDrill = mergeFillDrillJSON("", item.FillDrill)
	doc.Progress = append(doc.Progress, record)
	return nil
}

// mergeFillDrillJSON は保存済みの fill_drill (JSON文字列) に新しいキーを
// 上書きマージして再度文字列化します。クライアントが一部のキーだけ送っても
// 蓄積済みのドリル履歴を潰さないため、全置換にはしません。
func mergeFillDrillJSON(existing string, update map[string]any) string {
	merged := map[string]any{}
	if existing != "" {
		// 壊れた既存値は空として扱う (保存経路はこの関数しかないので通常起きない)
		_ = json.Unmarshal([]byte(existing), &merged)
		if merged == nil {
			merged = map[string]any{}
		}
	}
	for k, v := range update {
		merged[k] = v
	}
	data, err := json.Marshal(merged)
	if err != nil {
		return "{}"
	}
	return string(data)
}

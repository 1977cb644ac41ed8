// internal/repository/progress_repository.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"law_qa_keep/internal/model"
	"law_qa_keep/internal/store"
)

type ProgressRepository interface {
	// GetDocument は (username, moduleID) の進捗ドキュメントを取得します。
	// 未作成の場合は空のドキュメントを返します (404にはしない)。
	GetDocument(ctx context.Context, username, moduleID string) (*model.ProgressDocument, error)
	// GetDocumentByKey はプレフィックス一覧で得たキーからドキュメントを取得します。
	GetDocumentByKey(ctx context.Context, key string) (*model.ProgressDocument, error)
	// PutDocument はドキュメント全体を書き込みます (条件なしの全置換・後勝ち)。
	PutDocument(ctx context.Context, username, moduleID string, doc *model.ProgressDocument) error
	// ListModuleKeys はユーザー配下の全モジュールドキュメントのキーを返します。
	ListModuleKeys(ctx context.Context, username string) ([]string, error)
}

type bucketProgressRepository struct {
	store store.ObjectStore
}

func NewBucketProgressRepository(s store.ObjectStore) ProgressRepository {
	return &bucketProgressRepository{store: s}
}

func (r *bucketProgressRepository) GetDocument(ctx context.Context, username, moduleID string) (*model.ProgressDocument, error) {
	return r.GetDocumentByKey(ctx, progressKey(username, moduleID))
}

func (r *bucketProgressRepository) GetDocumentByKey(ctx context.Context, key string) (*model.ProgressDocument, error) {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 「まだ何も保存していない」と「空の進捗」は区別しない
			return &model.ProgressDocument{Progress: []model.ProgressRecord{}}, nil
		}
		return nil, err
	}
	var doc model.ProgressDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse progress document %q: %w", key, err)
	}
	if doc.Progress == nil {
		doc.Progress = []model.ProgressRecord{}
	}
	return &doc, nil
}

func (r *bucketProgressRepository) PutDocument(ctx context.Context, username, moduleID string, doc *model.ProgressDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal progress document: %w", err)
	}
	return r.store.Put(ctx, progressKey(username, moduleID), data)
}

func (r *bucketProgressRepository) ListModuleKeys(ctx context.Context, username string) ([]string, error) {
	return r.store.List(ctx, progressPrefix(username))
}

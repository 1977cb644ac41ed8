// internal/repository/study_record_repository.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"law_qa_keep/internal/model"
	"law_qa_keep/internal/store"
)

type StudyRecordRepository interface {
	// GetMonth は (username, year, month) の学習記録ドキュメントを取得します。
	// 未作成の場合は空のドキュメントを返します。
	GetMonth(ctx context.Context, username, year, month string) (*model.StudyRecordDocument, error)
	PutMonth(ctx context.Context, username, year, month string, doc *model.StudyRecordDocument) error
}

type bucketStudyRecordRepository struct {
	store store.ObjectStore
}

func NewBucketStudyRecordRepository(s store.ObjectStore) StudyRecordRepository {
	return &bucketStudyRecordRepository{store: s}
}

func (r *bucketStudyRecordRepository) GetMonth(ctx context.Context, username, year, month string) (*model.StudyRecordDocument, error) {
	key := studyRecordKey(username, year, month)
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.StudyRecordDocument{Records: []model.StudyRecord{}}, nil
		}
		return nil, err
	}
	var doc model.StudyRecordDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse study record document %q: %w", key, err)
	}
	if doc.Records == nil {
		doc.Records = []model.StudyRecord{}
	}
	return &doc, nil
}

func (r *bucketStudyRecordRepository) PutMonth(ctx context.Context, username, year, month string, doc *model.StudyRecordDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal study record document: %w", err)
	}
	return r.store.Put(ctx, studyRecordKey(username, year, month), data)
}

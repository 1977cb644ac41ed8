// internal/repository/settings_repository.go
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"law_qa_keep/internal/model"
	"law_qa_keep/internal/store"
)

type SettingsRepository interface {
	// Get はユーザー設定ブロブを取得します。未作成の場合は空オブジェクトを返します。
	Get(ctx context.Context, username string) (json.RawMessage, error)
	// Put は設定ブロブを全置換で保存します (マージしない)。
	Put(ctx context.Context, username string, settings json.RawMessage) error
}

type bucketSettingsRepository struct {
	store store.ObjectStore
}

func NewBucketSettingsRepository(s store.ObjectStore) SettingsRepository {
	return &bucketSettingsRepository{store: s}
}

func (r *bucketSettingsRepository) Get(ctx context.Context, username string) (json.RawMessage, error) {
	data, err := r.store.Get(ctx, settingsKey(username))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return json.RawMessage("{}"), nil
		}
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (r *bucketSettingsRepository) Put(ctx context.Context, username string, settings json.RawMessage) error {
	if len(settings) == 0 {
		settings = json.RawMessage("{}")
	}
	return r.store.Put(ctx, settingsKey(username), settings)
}

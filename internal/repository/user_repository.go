// internal/repository/user_repository.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"law_qa_keep/internal/model"
	"law_qa_keep/internal/store"
)

type UserRepository interface {
	// Find はユーザーを取得します。存在しない場合は model.ErrNotFound。
	Find(ctx context.Context, username string) (*model.User, error)
	// Put はユーザーレコードを書き込みます (存在チェックはService層の責務)。
	Put(ctx context.Context, user *model.User) error
}

type bucketUserRepository struct {
	store store.ObjectStore
}

func NewBucketUserRepository(s store.ObjectStore) UserRepository {
	return &bucketUserRepository{store: s}
}

func (r *bucketUserRepository) Find(ctx context.Context, username string) (*model.User, error) {
	data, err := r.store.Get(ctx, userKey(username))
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse stored user %q: %w", username, err)
	}
	return &user, nil
}

func (r *bucketUserRepository) Put(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user %q: %w", user.Username, err)
	}
	return r.store.Put(ctx, userKey(user.Username), data)
}

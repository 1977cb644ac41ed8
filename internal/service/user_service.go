// internal/service/user_service.go
package service

import (
	"context"
	"errors"
	"time"

	"law_qa_keep/internal/middleware"
	"law_qa_keep/internal/model"
	"law_qa_keep/internal/repository"
)

type UserService interface {
	// CreateUser はユーザーを作成します。既存ユーザー名なら model.ErrConflict。
	CreateUser(ctx context.Context, username, passwordHash string) error
	// GetUser はユーザーを取得します。passwordHash は含まれません。
	GetUser(ctx context.Context, username string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, username, passwordHash string) error {
	logger := middleware.GetLogger(ctx).With("username", username)

	// 存在チェックは GET→PUT であり原子的ではない。同名ユーザーの同時作成は
	// 双方がチェックを通過し、後の書き込みが先の書き込みを上書きしうる。
	_, err := s.userRepo.Find(ctx, username)
	if err == nil {
		logger.Warn("User already exists")
		return model.NewAppError("USER_EXISTS", "このユーザー名は既に使用されています。", "username", model.ErrConflict)
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to check user existence", "error", err)
		return err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.userRepo.Put(ctx, user); err != nil {
		logger.Error("Failed to create user", "error", err)
		return err
	}
	logger.Info("User created")
	return nil
}

func (s *userService) GetUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.Find(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "username", model.ErrNotFound)
		}
		return nil, err
	}
	// レスポンスにパスワードハッシュを含めない
	user.PasswordHash = ""
	return user, nil
}

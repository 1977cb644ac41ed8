// internal/service/user_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"law_qa_keep/internal/model"
	"law_qa_keep/internal/repository/mocks"
)

func Test_userService_CreateUser_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.UserRepository)
	svc := NewUserService(repo)

	repo.On("Find", mock.Anything, "alice").Return(nil, model.ErrNotFound).Once()
	repo.On("Put", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Username == "alice" && u.PasswordHash == "hash123" && u.CreatedAt != ""
	})).Return(nil).Once()

	err := svc.CreateUser(ctx, "alice", "hash123")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func Test_userService_CreateUser_Conflict(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.UserRepository)
	svc := NewUserService(repo)

	existing := &model.User{Username: "alice"}
	repo.On("Find", mock.Anything, "alice").Return(existing, nil).Once()

	err := svc.CreateUser(ctx, "alice", "hash123")

	assert.ErrorIs(t, err, model.ErrConflict)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func Test_userService_CreateUser_FindError(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.UserRepository)
	svc := NewUserService(repo)

	// 存在確認の失敗を「存在しない」と誤認して作成に進まないこと
	repo.On("Find", mock.Anything, "alice").Return(nil, assert.AnError).Once()

	err := svc.CreateUser(ctx, "alice", "hash123")

	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func Test_userService_GetUser_StripsPasswordHash(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.UserRepository)
	svc := NewUserService(repo)

	repo.On("Find", mock.Anything, "alice").Return(&model.User{
		Username:     "alice",
		PasswordHash: "hash123",
		CreatedAt:    "2025-01-01T00:00:00Z",
	}, nil).Once()

	user, err := svc.GetUser(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)
}

func Test_userService_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.UserRepository)
	svc := NewUserService(repo)

	repo.On("Find", mock.Anything, "ghost").Return(nil, model.ErrNotFound).Once()

	user, err := svc.GetUser(ctx, "ghost")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

// internal/model/user.go
package model

// User はバケット上の users/{username}.json に保存されるユーザーレコードです。
// PasswordHash はクライアント側で計算済みの値をそのまま保持します (サーバーでは検証しない)。
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// CreateUserRequest はユーザー作成API (POST /api/users) のリクエストボディ
type CreateUserRequest struct {
	Username     string `json:"username" validate:"required,min=1,max=64"`
	PasswordHash string `json:"passwordHash" validate:"required"`
}

// CreateUserResponse はユーザー作成成功時のレスポンス
type CreateUserResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}

// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrConflict       = errors.New("resource conflict") // ユーザー名重複用
)

// AppError はエラーコードと利用者向けメッセージを持つアプリケーションエラーです。
// ラップした原因エラー (Err) を errors.Is で判定してHTTPステータスに変換します。
type AppError struct {
	Code    string // 例: "VALIDATION_ERROR"
	Message string // クライアントに返すメッセージ
	Field   string // エラーの原因となったフィールド名 (任意)
	Err     error  // 原因エラー (ErrNotFound など)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Err: err}
}

// APIErrorResponse はAPIのエラーレスポンスの構造体。
// ワイヤ上は {"error": "..."} 固定 (既存クライアントとの互換のため文字列のみ)。
type APIErrorResponse struct {
	Error string `json:"error"`
}

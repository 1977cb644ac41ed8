// internal/model/settings.go
package model

import "encoding/json"

// UserSettings は settings/{username}.json に保存される不透明な設定ブロブです。
// 保存は全置換で、マージは行いません。
type SaveSettingsRequest struct {
	Username string          `json:"username" validate:"required"`
	Settings json.RawMessage `json:"settings"`
}

type SettingsResponse struct {
	Settings json.RawMessage `json:"settings"`
}

type SaveSettingsResponse struct {
	Success bool `json:"success"`
}

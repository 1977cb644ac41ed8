// internal/service/settings_service.go
package service

import (
	"context"
	"encoding/json"

	"law_qa_keep/internal/middleware"
	"law_qa_keep/internal/repository"
)

type SettingsService interface {
	GetSettings(ctx context.Context, username string) (json.RawMessage, error)
	// SaveSettings は設定ブロブを全置換で保存します。
	SaveSettings(ctx context.Context, username string, settings json.RawMessage) error
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings(ctx context.Context, username string) (json.RawMessage, error) {
	return s.settingsRepo.Get(ctx, username)
}

func (s *settingsService) SaveSettings(ctx context.Context, username string, settings json.RawMessage) error {
	logger := middleware.GetLogger(ctx).With("username", username)
	if err := s.settingsRepo.Put(ctx, username, settings); err != nil {
		logger.Error("Failed to save settings", "error", err)
		return err
	}
	logger.Info("Settings saved")
	return nil
}

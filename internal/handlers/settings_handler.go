// internal/handlers/settings_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"law_qa_keep/internal/model"
	"law_qa_keep/internal/service"
	"law_qa_keep/internal/webutil"
)

type SettingsHandler struct {
	service service.SettingsService
	logger  *slog.Logger
}

func NewSettingsHandler(s service.SettingsService, logger *slog.Logger) *SettingsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsHandler{service: s, logger: logger}
}

// GetSettings はユーザー設定を取得するハンドラ (GET /api/user-settings?username=)。
// 未保存なら {settings: {}} を返します。
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSettings"))

	username := r.URL.Query().Get("username")
	if username == "" {
		appErr := model.NewAppError("MISSING_USERNAME", "usernameは必須です。", "username", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("username", username))

	settings, err := h.service.GetSettings(r.Context(), username)
	if err != nil {
		logger.Error("Error getting settings from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.SettingsResponse{Settings: settings}, logger)
}

// SaveSettings はユーザー設定を全置換で保存するハンドラ (POST /api/user-settings)
func (h *SettingsHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SaveSettings"))

	var req model.SaveSettingsRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if req.Username == "" {
		appErr := model.NewAppError("MISSING_USERNAME", "usernameは必須です。", "username", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("username", req.Username))

	if err := h.service.SaveSettings(r.Context(), req.Username, req.Settings); err != nil {
		logger.Error("Error saving settings in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.SaveSettingsResponse{Success: true}, logger)
}

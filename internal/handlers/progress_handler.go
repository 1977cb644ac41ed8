// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"law_qa_keep/internal/model"
	"law_qa_keep/internal/service"
	"law_qa_keep/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{service: s, logger: logger}
}

// GetProgress は進捗を取得するハンドラ (GET /api/qa-progress?username=&moduleId=)。
// moduleId を省略した場合はユーザーの全モジュール分を連結して返します。
// ドキュメント未作成でも404にはせず、常に {progress: []} 形式で返します。
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	username := r.URL.Query().Get("username")
	if username == "" {
		appErr := model.NewAppError("MISSING_USERNAME", "usernameは必須です。", "username", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("username", username))

	moduleID := r.URL.Query().Get("moduleId")

	var records []model.ProgressRecord
	var err error
	if moduleID == "" {
		records, err = h.service.GetAllProgress(r.Context(), username)
	} else {
		records, err = h.service.GetModuleProgress(r.Context(), username, moduleID)
	}
	if err != nil {
		logger.Error("Error getting progress from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if records == nil {
		records = []model.ProgressRecord{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.ProgressListResponse{Progress: records}, logger)
}

// GetAllProgress は全モジュールの進捗を取得するハンドラ (GET /api/qa-progress/all?username=)
func (h *ProgressHandler) GetAllProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAllProgress"))

	username := r.URL.Query().Get("username")
	if username == "" {
		appErr := model.NewAppError("MISSING_USERNAME", "usernameは必須です。", "username", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("username", username))

	records, err := h.service.GetAllProgress(r.Context(), username)
	if err != nil {
		logger.Error("Error getting all progress from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if records == nil {
		records = []model.ProgressRecord{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.ProgressListResponse{Progress: records}, logger)
}

// SaveProgress は進捗1件を保存するハンドラ (POST /api/qa-progress)。
// qaId はキーの有無だけを検査する。0 や 空文字は0始まりの設問IDとして正当な値。
func (h *ProgressHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SaveProgress"))

	var req model.SaveProgressRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := validateProgressFields(req.Username, &req.ProgressItem); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("username", req.Username), slog.String("module_id", req.ModuleID))

	if err := h.service.SaveProgress(r.Context(), req.Username, &req.ProgressItem); err != nil {
		logger.Error("Error saving progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.SaveProgressResponse{Success: true}, logger)
}

// SaveProgressBatch は進捗をまとめて保存するハンドラ (POST /api/qa-progress/batch)。
// 全項目をI/O前に検証してから、モジュールごとにグループ化して保存します。
func (h *ProgressHandler) SaveProgressBatch(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SaveProgressBatch"))

	var req model.BatchSaveProgressRequest
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
	for i := range req.ProgressList {
		if appErr := validateProgressFields(req.Username, &req.ProgressList[i]); appErr != nil {
			logger.Warn("Validation failed in batch item", slog.Int("index", i), slog.String("error", appErr.Error()))
			webutil.HandleError(w, logger, appErr)
			return
		}
	}
	logger = logger.With(slog.String("username", req.Username))

	count, err := h.service.SaveProgressBatch(r.Context(), req.Username, req.ProgressList)
	if err != nil {
		logger.Error("Error saving progress batch in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.BatchSaveProgressResponse{Success: true, Count: count}, logger)
}

// validateProgressFields は保存系エンドポイント共通の必須フィールド検査です。
func validateProgressFields(username string, item *model.ProgressItem) *model.AppError {
	if username == "" {
		return model.NewAppError("MISSING_USERNAME", "usernameは必須です。", "username", model.ErrInvalidInput)
	}
	if item.ModuleID == "" {
		return model.NewAppError("MISSING_MODULE_ID", "moduleIdは必須です。", "moduleId", model.ErrInvalidInput)
	}
	if item.QaID == nil {
		return model.NewAppError("MISSING_QA_ID", "qaIdは必須です。", "qaId", model.ErrInvalidInput)
	}
	return nil
}

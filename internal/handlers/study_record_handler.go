// internal/handlers/study_record_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"law_qa_keep/internal/model"
	"law_qa_keep/internal/service"
	"law_qa_keep/internal/webutil"
)

type StudyRecordHandler struct {
	service service.StudyRecordService
	logger  *slog.Logger
}

func NewStudyRecordHandler(s service.StudyRecordService, logger *slog.Logger) *StudyRecordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyRecordHandler{service: s, logger: logger}
}

// GetStudyRecords は月次の学習記録を取得するハンドラ (GET /api/study-records?username=&year=&month=)
func (h *StudyRecordHandler) GetStudyRecords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudyRecords"))

	q := r.URL.Query()
	username, year, month := q.Get("username"), q.Get("year"), q.Get("month")
	if username == "" || year == "" || month == "" {
		appErr := model.NewAppError("MISSING_PARAMS", "username・year・monthは必須です。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("username", username), slog.String("year", year), slog.String("month", month))

	records, err := h.service.GetMonthRecords(r.Context(), username, year, month)
	if err != nil {
		logger.Error("Error getting study records from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if records == nil {
		records = []model.StudyRecord{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.StudyRecordListResponse{Records: records}, logger)
}

// CreateStudyRecord は学習記録を1件追記するハンドラ (POST /api/study-records)
func (h *StudyRecordHandler) CreateStudyRecord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateStudyRecord"))

	var req model.CreateStudyRecordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}
	logger = logger.With(slog.String("username", req.Username))

	if err := h.service.CreateRecord(r.Context(), &req); err != nil {
		logger.Error("Error creating study record in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, model.CreateStudyRecordResponse{Success: true}, logger)
}

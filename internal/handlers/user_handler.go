// internal/handlers/user_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"law_qa_keep/internal/model"
	"law_qa_keep/internal/service"
	"law_qa_keep/internal/webutil"
)

type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{service: s, logger: logger}
}

// CreateUser は新しいユーザーを作成するハンドラ (POST /api/users)
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateUser"))

	var req model.CreateUserRequest
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

	if err := h.service.CreateUser(r.Context(), req.Username, req.PasswordHash); err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("User already exists", slog.String("username", req.Username))
		} else {
			logger.Error("Error creating user in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User created successfully", slog.String("username", req.Username))
	webutil.RespondWithJSON(w, http.StatusCreated, model.CreateUserResponse{Success: true, Username: req.Username}, logger)
}

// GetUser はユーザー情報を取得するハンドラ (GET /api/users/{username})。
// レスポンスに passwordHash は含まれない。
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetUser"))

	username := chi.URLParam(r, "username")
	logger = logger.With(slog.String("username", username))

	user, err := h.service.GetUser(r.Context(), username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("User not found")
		} else {
			logger.Error("Error getting user from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// internal/handlers/health_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"law_qa_keep/internal/store"
	"law_qa_keep/internal/webutil"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Storage   string `json:"storage"`
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler はヘルスチェックハンドラ (GET /api/health) を返します。
// ストレージ層への到達性を確認してから ok を返します。
func NewHealthHandler(s store.ObjectStore, logger *slog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Ping(r.Context()); err != nil {
			logger.Error("Health check failed: storage unreachable", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
			return
		}
		webutil.RespondWithJSON(w, http.StatusOK, HealthResponse{
			Status:    "ok",
			Storage:   "r2",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}, logger)
	}
}

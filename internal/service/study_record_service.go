// internal/service/study_record_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"law_qa_keep/internal/middleware"
	"law_qa_keep/internal/model"
	"law_qa_keep/internal/repository"
)

type StudyRecordService interface {
	GetMonthRecords(ctx context.Context, username, year, month string) ([]model.StudyRecord, error)
	// CreateRecord は月次ドキュメントに1件追記します。年月は date から導出します。
	CreateRecord(ctx context.Context, req *model.CreateStudyRecordRequest) error
}

type studyRecordService struct {
	recordRepo repository.StudyRecordRepository
}

func NewStudyRecordService(recordRepo repository.StudyRecordRepository) StudyRecordService {
	return &studyRecordService{recordRepo: recordRepo}
}

func (s *studyRecordService) GetMonthRecords(ctx context.Context, username, year, month string) ([]model.StudyRecord, error) {
	doc, err := s.recordRepo.GetMonth(ctx, username, year, month)
	if err != nil {
		return nil, err
	}
	return doc.Records, nil
}

func (s *studyRecordService) CreateRecord(ctx context.Context, req *model.CreateStudyRecordRequest) error {
	logger := middleware.GetLogger(ctx).With("username", req.Username)

	year, month, err := yearMonthFromDate(req.Date)
	if err != nil {
		logger.Warn("Invalid date in study record", "date", req.Date)
		return err
	}

	doc, err := s.recordRepo.GetMonth(ctx, req.Username, year, month)
	if err != nil {
		return err
	}

	// 追記専用。重複排除や並べ替えは行わない。
	doc.Records = append(doc.Records, model.StudyRecord{
		ID:        uuid.New().String(),
		Date:      req.Date,
		Title:     req.Title,
		Detail:    req.Detail,
		ModuleID:  req.ModuleID,
		QaID:      req.QaID,
		Level:     req.Level,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})

	if err := s.recordRepo.PutMonth(ctx, req.Username, year, month, doc); err != nil {
		logger.Error("Failed to put study record document", "error", err)
		return err
	}
	logger.Info("Study record appended", "year", year, "month", month, "count", len(doc.Records))
	return nil
}

// yearMonthFromDate は "2025-08-29" や "2025-08-29T10:00:00Z" 形式の
// 日付文字列から月次キー用の (year, month) を取り出します。
func yearMonthFromDate(date string) (string, string, error) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return "", "", model.NewAppError("INVALID_DATE", "dateの形式が正しくありません。", "date", model.ErrInvalidInput)
	}
	return parts[0], parts[1], nil
}

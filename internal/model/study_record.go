// internal/model/study_record.go
package model

import "encoding/json"

// StudyRecord は学習記録の1件です。(username, year, month) ごとの
// ドキュメントに追記専用で蓄積されます (重複排除・件数上限なし)。
type StudyRecord struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Title     string          `json:"title,omitempty"`
	Detail    string          `json:"detail,omitempty"`
	ModuleID  string          `json:"moduleId,omitempty"`
	QaID      json.RawMessage `json:"qaId,omitempty"`
	Level     json.RawMessage `json:"level,omitempty"`
	CreatedAt string          `json:"createdAt"`
}

// StudyRecordDocument は study-records/{username}/{year}-{month}.json の中身
type StudyRecordDocument struct {
	Records []StudyRecord `json:"records"`
}

// CreateStudyRecordRequest は POST /api/study-records のリクエストボディ。
// year/month は date から導出します。
type CreateStudyRecordRequest struct {
	Username string          `json:"username" validate:"required"`
	Date     string          `json:"date" validate:"required"`
	Title    string          `json:"title"`
	Detail   string          `json:"detail"`
	ModuleID string          `json:"moduleId"`
	QaID     json.RawMessage `json:"qaId"`
	Level    json.RawMessage `json:"level"`
}

type StudyRecordListResponse struct {
	Records []StudyRecord `json:"records"`
}

type CreateStudyRecordResponse struct {
	Success bool `json:"success"`
}

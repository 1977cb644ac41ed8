// internal/service/study_record_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"law_qa_keep/internal/model"
	"law_qa_keep/internal/repository"
	"law_qa_keep/internal/store"
)

func Test_studyRecordService_CreateRecord_AppendsToMonth(t *testing.T) {
	ctx := context.Background()
	svc := NewStudyRecordService(repository.NewBucketStudyRecordRepository(store.NewMemoryStore()))

	require.NoError(t, svc.CreateRecord(ctx, &model.CreateStudyRecordRequest{
		Username: "alice",
		Date:     "2025-08-29",
		Title:    "民法の復習",
	}))
	require.NoError(t, svc.CreateRecord(ctx, &model.CreateStudyRecordRequest{
		Username: "alice",
		Date:     "2025-08-30T10:00:00Z",
		Title:    "刑法の演習",
	}))

	records, err := svc.GetMonthRecords(ctx, "alice", "2025", "08")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// ID と作成時刻はサーバー側で採番される
	assert.NotEmpty(t, records[0].ID)
	assert.NotEmpty(t, records[0].CreatedAt)
	assert.NotEqual(t, records[0].ID, records[1].ID)
	assert.Equal(t, "民法の復習", records[0].Title)
	assert.Equal(t, "刑法の演習", records[1].Title)
}

func Test_studyRecordService_CreateRecord_SplitsByMonth(t *testing.T) {
	ctx := context.Background()
	svc := NewStudyRecordService(repository.NewBucketStudyRecordRepository(store.NewMemoryStore()))

	require.NoError(t, svc.CreateRecord(ctx, &model.CreateStudyRecordRequest{
		Username: "alice", Date: "2025-08-31",
	}))
	require.NoError(t, svc.CreateRecord(ctx, &model.CreateStudyRecordRequest{
		Username: "alice", Date: "2025-09-01",
	}))

	aug, err := svc.GetMonthRecords(ctx, "alice", "2025", "08")
	require.NoError(t, err)
	sep, err := svc.GetMonthRecords(ctx, "alice", "2025", "09")
	require.NoError(t, err)

	assert.Len(t, aug, 1)
	assert.Len(t, sep, 1)
}

func Test_studyRecordService_CreateRecord_InvalidDate(t *testing.T) {
	ctx := context.Background()
	svc := NewStudyRecordService(repository.NewBucketStudyRecordRepository(store.NewMemoryStore()))

	tests := []struct {
		name string
		date string
	}{
		{"区切りなし", "20250829"},
		{"年が短い", "25-08-29"},
		{"月が1桁", "2025-8-29"},
		{"空文字", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateRecord(ctx, &model.CreateStudyRecordRequest{
				Username: "alice", Date: tt.date,
			})
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func Test_studyRecordService_GetMonthRecords_EmptyMonth(t *testing.T) {
	ctx := context.Background()
	svc := NewStudyRecordService(repository.NewBucketStudyRecordRepository(store.NewMemoryStore()))

	// 記録のない月はエラーではなく空リスト
	records, err := svc.GetMonthRecords(ctx, "alice", "2025", "01")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_settingsService_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(repository.NewBucketSettingsRepository(store.NewMemoryStore()))

	// 未保存時は空のオブジェクト
	initial, err := svc.GetSettings(ctx, "alice")
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(initial))

	require.NoError(t, svc.SaveSettings(ctx, "alice", []byte(`{"theme":"dark","fontSize":14}`)))

	saved, err := svc.GetSettings(ctx, "alice")
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark","fontSize":14}`, string(saved))

	// 保存は全置換。前回のキーは残らない。
	require.NoError(t, svc.SaveSettings(ctx, "alice", []byte(`{"theme":"light"}`)))
	replaced, err := svc.GetSettings(ctx, "alice")
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"light"}`, string(replaced))
}

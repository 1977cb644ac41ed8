// internal/handlers/settings_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"law_qa_keep/internal/model"
	"law_qa_keep/internal/service/mocks"
)

func Test_SettingsHandler_GetSettings(t *testing.T) {
	t.Run("保存済みの設定を返す", func(t *testing.T) {
		mockService := new(mocks.SettingsService)
		mockService.On("GetSettings", mock.Anything, "alice").
			Return(json.RawMessage(`{"theme":"dark"}`), nil).Once()
		handler := NewSettingsHandler(mockService, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/user-settings?username=alice", nil)
		rr := httptest.NewRecorder()
		handler.GetSettings(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"settings":{"theme":"dark"}}`, rr.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("未保存なら空オブジェクト", func(t *testing.T) {
		mockService := new(mocks.SettingsService)
		mockService.On("GetSettings", mock.Anything, "alice").
			Return(json.RawMessage(`{}`), nil).Once()
		handler := NewSettingsHandler(mockService, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/user-settings?username=alice", nil)
		rr := httptest.NewRecorder()
		handler.GetSettings(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"settings":{}}`, rr.Body.String())
	})

	t.Run("username欠落は400", func(t *testing.T) {
		mockService := new(mocks.SettingsService)
		handler := NewSettingsHandler(mockService, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/user-settings", nil)
		rr := httptest.NewRecorder()
		handler.GetSettings(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "GetSettings", mock.Anything, mock.Anything)
	})
}

func Test_SettingsHandler_SaveSettings(t *testing.T) {
	t.Run("正常に保存できる", func(t *testing.T) {
		mockService := new(mocks.SettingsService)
		mockService.On("SaveSettings", mock.Anything, "alice", mock.MatchedBy(func(s json.RawMessage) bool {
			return string(s) == `{"theme":"dark"}`
		})).Return(nil).Once()
		handler := NewSettingsHandler(mockService, nil)

		body := `{"username":"alice","settings":{"theme":"dark"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/user-settings", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		handler.SaveSettings(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.SaveSettingsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		mockService.AssertExpectations(t)
	})

	t.Run("username欠落は400", func(t *testing.T) {
		mockService := new(mocks.SettingsService)
		handler := NewSettingsHandler(mockService, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/user-settings", bytes.NewBufferString(`{"settings":{}}`))
		rr := httptest.NewRecorder()
		handler.SaveSettings(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "SaveSettings", mock.Anything, mock.Anything, mock.Anything)
	})
}

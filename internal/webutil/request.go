// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"net/http"

	"law_qa_keep/internal/model"
)

// DecodeJSONBody はリクエストボディをデコードします。
// 未知フィールドは許容します (クライアントが先行して新フィールドを送ることがあるため)。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}

// internal/repository/keys.go
package repository

import "fmt"

// バケット内のキー命名規則。エンティティ種別ごとの接頭辞と
// ユーザー名による名前空間分離が、このシステム唯一の分離機構です。
func userKey(username string) string {
	return fmt.Sprintf("users/%s.json", username)
}

func progressKey(username, moduleID string) string {
	return fmt.Sprintf("qa-progress/%s/%s.json", username, moduleID)
}

func progressPrefix(username string) string {
	return fmt.Sprintf("qa-progress/%s/", username)
}

func studyRecordKey(username, year, month string) string {
	return fmt.Sprintf("study-records/%s/%s-%s.json", username, year, month)
}

func settingsKey(username string) string {
	return fmt.Sprintf("settings/%s.json", username)
}

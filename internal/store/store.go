// internal/store/store.go
package store

import "context"

// ObjectStore はバケット型のキーバリューストアの抽象です。
// R2/S3/MinIO などのオブジェクトストレージを get/put/list だけの
// 不透明なストアとして扱います。
type ObjectStore interface {
	// Get はキーのオブジェクト本体を返します。存在しない場合は model.ErrNotFound。
	Get(ctx context.Context, key string) ([]byte, error)
	// Put はオブジェクトを全置換で書き込みます (条件付き書き込みなし・後勝ち)。
	Put(ctx context.Context, key string, data []byte) error
	// List は prefix に一致する全キーを返します。ページングは行いません。
	List(ctx context.Context, prefix string) ([]string, error)
	// Ping はストアへの到達性を確認します (ヘルスチェック用)。
	Ping(ctx context.Context) error
}

// internal/store/memory_store_test.go
package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"law_qa_keep/internal/model"
)

func Test_MemoryStore_GetMissingKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "users/ghost.json")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func Test_MemoryStore_PutGet_DefensiveCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	data := []byte(`{"a":1}`)
	require.NoError(t, s.Put(ctx, "k", data))
	data[0] = 'X' // 呼び出し側のバッファ書き換えが格納値に影響しないこと

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	got[0] = 'Y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), again)
}

func Test_MemoryStore_List(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "qa-progress/alice/m2.json", []byte("{}")))
	require.NoError(t, s.Put(ctx, "qa-progress/alice/m1.json", []byte("{}")))
	require.NoError(t, s.Put(ctx, "qa-progress/bob/m1.json", []byte("{}")))

	keys, err := s.List(ctx, "qa-progress/alice/")
	require.NoError(t, err)
	assert.Equal(t, []string{"qa-progress/alice/m1.json", "qa-progress/alice/m2.json"}, keys)
}

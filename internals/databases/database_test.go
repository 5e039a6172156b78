package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ailms_backend/internals/configs"
	"ailms_backend/internals/store"
)

func TestOpenStoreSQLite(t *testing.T) {
	configs.StoreDriver = "sqlite"
	configs.SQLitePath = filepath.Join(t.TempDir(), "ailms.db")
	configs.RedisURL = ""
	t.Cleanup(func() {
		Close()
		DB, RDB = nil, nil
	})

	st := OpenStore()
	_, isGorm := st.(*store.GormStore)
	require.True(t, isGorm)

	ctx := context.Background()
	require.NoError(t, st.Add(ctx, store.CollectionCourses, "course-1", store.Raw(`{"id":"course-1","title":"Go"}`)))
	got, err := st.Get(ctx, store.CollectionCourses, "course-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"course-1","title":"Go"}`, string(got))

	assert.Equal(t, map[string]string{"store": "sqlite", "database": "OK"}, Health(ctx))
}

func TestOpenStoreDefaultsToMemory(t *testing.T) {
	configs.StoreDriver = "memory"
	configs.RedisURL = ""

	_, isMem := OpenStore().(*store.MemoryStore)
	assert.True(t, isMem)
	assert.Equal(t, map[string]string{"store": "memory"}, Health(context.Background()))
}

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type item struct {
	ID     string  `json:"id"`
	UserID string  `json:"userId"`
	Note   *string `json:"note"`
	Score  float64 `json:"score"`
}

func newSQLiteStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// satu koneksi: in-memory sqlite per koneksi berbeda database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, AutoMigrate(db))
	return NewGormStore(db)
}

func backends(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": newSQLiteStore(t),
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			items := NewCollection[item](s, "items")

			require.NoError(t, items.Add(ctx, "a", &item{ID: "a", UserID: "u1", Score: 10}))
			require.NoError(t, items.Add(ctx, "b", &item{ID: "b", UserID: "u2", Score: 20}))
			require.NoError(t, items.Add(ctx, "c", &item{ID: "c", UserID: "u1", Score: 30}))

			err := items.Add(ctx, "a", &item{ID: "a"})
			assert.ErrorIs(t, err, ErrDuplicate)

			got, err := items.Get(ctx, "b")
			require.NoError(t, err)
			assert.Equal(t, "u2", got.UserID)
			assert.Nil(t, got.Note)

			_, err = items.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			all, err := items.GetAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 3)

			byUser, err := items.GetAllByIndex(ctx, "userId", "u1")
			require.NoError(t, err)
			ids := []string{}
			for _, it := range byUser {
				ids = append(ids, it.ID)
			}
			assert.ElementsMatch(t, []string{"a", "c"}, ids)

			note := "edited"
			require.NoError(t, items.Update(ctx, "a", &item{ID: "a", UserID: "u1", Note: &note, Score: 11}))
			got, err = items.Get(ctx, "a")
			require.NoError(t, err)
			require.NotNil(t, got.Note)
			assert.Equal(t, "edited", *got.Note)
			assert.Equal(t, 11.0, got.Score)

			assert.ErrorIs(t, items.Update(ctx, "zzz", &item{ID: "zzz"}), ErrNotFound)

			require.NoError(t, items.Delete(ctx, "a"))
			require.NoError(t, items.Delete(ctx, "a"), "delete must succeed for absent ids")
			_, err = items.Get(ctx, "a")
			assert.ErrorIs(t, err, ErrNotFound)

			empty, err := NewCollection[item](s, "nothing").GetAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, empty)
		})
	}
}

func TestStoreTransactionRollback(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			items := NewCollection[item](s, "items")
			require.NoError(t, items.Add(ctx, "a", &item{ID: "a", Score: 1}))

			boom := errors.New("boom")
			err := s.Transaction(ctx, func(tx Store) error {
				txItems := items.With(tx)
				if err := txItems.Update(ctx, "a", &item{ID: "a", Score: 99}); err != nil {
					return err
				}
				if err := txItems.Add(ctx, "b", &item{ID: "b"}); err != nil {
					return err
				}
				return boom
			})
			assert.ErrorIs(t, err, boom)

			got, err := items.Get(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, 1.0, got.Score)
			_, err = items.Get(ctx, "b")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Transaction(ctx, func(tx Store) error {
				return items.With(tx).Update(ctx, "a", &item{ID: "a", Score: 2})
			}))
			got, err = items.Get(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, 2.0, got.Score)
		})
	}
}

func TestMemoryStoreKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	items := NewCollection[item](NewMemoryStore(), "items")
	for _, id := range []string{"z", "a", "m"} {
		require.NoError(t, items.Add(ctx, id, &item{ID: id}))
	}
	require.NoError(t, items.Delete(ctx, "a"))

	all, err := items.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "z", all[0].ID)
	assert.Equal(t, "m", all[1].ID)
}

func TestStoreErrorWrapping(t *testing.T) {
	base := errors.New("disk quota exceeded")
	err := wrap("add", "items", base)

	assert.True(t, IsStoreError(err))
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "store add items")

	assert.Same(t, ErrNotFound, wrap("get", "items", ErrNotFound))
	assert.False(t, IsStoreError(ErrNotFound))
}

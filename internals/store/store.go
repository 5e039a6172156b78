// file: internals/store/store.go
package store

import (
	"context"
	"errors"
	"fmt"
)

/* =========================================================
   Nama koleksi (satu "object store" per koleksi)
========================================================= */

const (
	CollectionQuizzes       = "quizzes"
	CollectionSubmissions   = "submissions"
	CollectionAssignments   = "assignments"
	CollectionCourses       = "courses"
	CollectionProgress      = "progress"
	CollectionCertificates  = "certificates"
	CollectionNotifications = "notifications"
	CollectionChatHistory   = "chatHistory"
	CollectionGamification  = "gamification"
)

/* =========================================================
   Errors
========================================================= */

var (
	ErrNotFound  = errors.New("record tidak ditemukan")
	ErrDuplicate = errors.New("record dengan id tersebut sudah ada")
)

// StoreError membungkus kegagalan backend (disk, koneksi, korupsi data).
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func wrap(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) {
		return err
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Collection: collection, Err: err}
}

// IsStoreError true kalau err berasal dari backend (bukan not found / duplicate).
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

/* =========================================================
   Capability
========================================================= */

// Raw adalah bentuk JSON dari satu record, disimpan apa adanya.
type Raw []byte

// Store adalah key-value record store generik per koleksi.
//
//   - Add gagal dengan ErrDuplicate kalau id sudah ada.
//   - Get mengembalikan ErrNotFound kalau id tidak ada.
//   - GetAll tidak menjanjikan urutan tertentu (implementasi bawaan: urutan insert).
//   - GetAllByIndex memfilter berdasarkan field string top-level (mis. "userId").
//   - Update adalah full replace; gagal dengan ErrNotFound kalau id tidak ada.
//   - Delete selalu sukses walaupun id tidak ada.
//   - Transaction menjalankan fn secara atomik; kalau fn error semua tulisan dibatalkan.
type Store interface {
	Add(ctx context.Context, collection, id string, data Raw) error
	Get(ctx context.Context, collection, id string) (Raw, error)
	GetAll(ctx context.Context, collection string) ([]Raw, error)
	GetAllByIndex(ctx context.Context, collection, field, value string) ([]Raw, error)
	Update(ctx context.Context, collection, id string, data Raw) error
	Delete(ctx context.Context, collection, id string) error
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// file: internals/store/gorm_store.go
package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* =========================================================
   MODEL: satu tabel untuk semua koleksi (data = JSONB)
========================================================= */

type RecordModel struct {
	RecordCollection string         `gorm:"column:record_collection;type:varchar(64);primaryKey" json:"record_collection"`
	RecordID         string         `gorm:"column:record_id;type:varchar(160);primaryKey"        json:"record_id"`
	RecordData       datatypes.JSON `gorm:"column:record_data;type:jsonb;not null"               json:"record_data"`
	RecordCreatedAt  time.Time      `gorm:"column:record_created_at;not null;autoCreateTime"     json:"record_created_at"`
	RecordUpdatedAt  time.Time      `gorm:"column:record_updated_at;not null;autoUpdateTime"     json:"record_updated_at"`
}

func (RecordModel) TableName() string { return "records" }

// AutoMigrate membuat tabel records kalau belum ada.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&RecordModel{})
}

/* =========================================================
   STORE
========================================================= */

type GormStore struct {
	DB *gorm.DB
}

// NewGormStore: db sebaiknya dibuka dengan gorm.Config{TranslateError: true}
// supaya unique violation diterjemahkan ke gorm.ErrDuplicatedKey.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *GormStore) scoped(ctx context.Context, collection string) *gorm.DB {
	return s.DB.WithContext(ctx).
		Model(&RecordModel{}).
		Where("record_collection = ?", collection)
}

func (s *GormStore) Add(ctx context.Context, collection, id string, data Raw) error {
	m := RecordModel{
		RecordCollection: collection,
		RecordID:         id,
		RecordData:       datatypes.JSON(data),
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return wrap("add", collection, err)
	}
	return nil
}

func (s *GormStore) Get(ctx context.Context, collection, id string) (Raw, error) {
	var m RecordModel
	err := s.scoped(ctx, collection).
		Where("record_id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrap("get", collection, err)
	}
	return Raw(m.RecordData), nil
}

func (s *GormStore) list(q *gorm.DB, op, collection string) ([]Raw, error) {
	var rows []RecordModel
	err := q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: "record_created_at"}},
		{Column: clause.Column{Name: "record_id"}},
	}}).Find(&rows).Error
	if err != nil {
		return nil, wrap(op, collection, err)
	}
	out := make([]Raw, 0, len(rows))
	for _, r := range rows {
		out = append(out, Raw(r.RecordData))
	}
	return out, nil
}

func (s *GormStore) GetAll(ctx context.Context, collection string) ([]Raw, error) {
	return s.list(s.scoped(ctx, collection), "getAll", collection)
}

func (s *GormStore) GetAllByIndex(ctx context.Context, collection, field, value string) ([]Raw, error) {
	q := s.scoped(ctx, collection).
		Where(datatypes.JSONQuery("record_data").Equals(value, field))
	return s.list(q, "getAllByIndex", collection)
}

func (s *GormStore) Update(ctx context.Context, collection, id string, data Raw) error {
	res := s.scoped(ctx, collection).
		Where("record_id = ?", id).
		Updates(map[string]any{
			"record_data":       datatypes.JSON(data),
			"record_updated_at": time.Now(),
		})
	if res.Error != nil {
		return wrap("update", collection, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	err := s.DB.WithContext(ctx).
		Where("record_collection = ? AND record_id = ?", collection, id).
		Delete(&RecordModel{}).Error
	return wrap("delete", collection, err)
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}

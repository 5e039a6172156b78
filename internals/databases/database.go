package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ailms_backend/internals/configs"
	"ailms_backend/internals/store"
)

var (
	DB  *gorm.DB
	RDB *redis.Client
)

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=ailms&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true, // unique violation → gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// ConnectSQLite untuk deploy satu node / lokal tanpa Postgres.
func ConnectSQLite(path string) error {
	log.Printf("🔌 Koneksi ke SQLite (%s)...", path)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	// sqlite: satu writer
	sqlDB.SetMaxOpenConns(1)
	DB = db
	log.Println("✅ SQLite connected.")
	return nil
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate memastikan tabel records tersedia.
func Migrate() {
	if err := store.AutoMigrate(DB); err != nil {
		log.Fatalf("❌ Gagal migrate tabel records: %v", err)
	}
	log.Println("✅ Tabel records siap.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// ConnectRedis mengembalikan nil kalau url kosong atau tidak bisa di-ping.
func ConnectRedis(url string) *redis.Client {
	if url == "" {
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("⚠️ REDIS_URL tidak valid, cache dimatikan: %v", err)
		return nil
	}
	rdb := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis tidak bisa di-ping, cache dimatikan: %v", err)
		_ = rdb.Close()
		return nil
	}
	log.Println("✅ Redis connected.")
	return rdb
}

// OpenStore memilih backend record store sesuai STORE_DRIVER (+ cache redis opsional).
func OpenStore() store.Store {
	var st store.Store
	switch configs.StoreDriver {
	case "postgres":
		ConnectDB()
		TunePool()
		Migrate()
		WarmUpQueries()
		st = store.NewGormStore(DB)
	case "sqlite":
		if err := ConnectSQLite(configs.SQLitePath); err != nil {
			log.Fatalf("❌ Gagal buka SQLite: %v", err)
		}
		Migrate()
		st = store.NewGormStore(DB)
	default:
		log.Println("ℹ️ Memakai in-memory record store")
		st = store.NewMemoryStore()
	}

	if rdb := ConnectRedis(configs.RedisURL); rdb != nil {
		RDB = rdb
		st = store.NewCachedStore(st, rdb, configs.RedisCacheTTL)
	}
	return st
}

// Health: ping DB dan redis yang sedang dipakai. Memory store selalu sehat.
func Health(ctx context.Context) map[string]string {
	out := map[string]string{"store": configs.StoreDriver}
	if DB != nil {
		if sqlDB, err := DB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			out["database"] = "DOWN"
		} else {
			out["database"] = "OK"
		}
	}
	if RDB != nil {
		if err := RDB.Ping(ctx).Err(); err != nil {
			out["redis"] = "DOWN"
		} else {
			out["redis"] = "OK"
		}
	}
	return out
}

// Close menutup pool DB dan client redis kalau dipakai.
func Close() {
	if RDB != nil {
		_ = RDB.Close()
	}
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

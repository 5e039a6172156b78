package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"ailms_backend/internals/configs"
	database "ailms_backend/internals/databases"
	"ailms_backend/internals/features/notifications/scheduler"
	helper "ailms_backend/internals/helpers"
	middlewares "ailms_backend/internals/middlewares"
	routes "ailms_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ErrorHandler:            helper.ErrorHandler,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 store sesuai STORE_DRIVER: memory | postgres | sqlite (+ cache redis opsional)
	st := database.OpenStore()

	svcs, err := routes.NewServices(st)
	if err != nil {
		log.Fatalf("❌ gagal inisialisasi service: %v", err)
	}

	if configs.SeedSampleCourses {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		n, err := svcs.Courses.SeedSampleCourses(ctx)
		cancel()
		if err != nil {
			log.Printf("[WARN] seed course gagal: %v", err)
		} else if n > 0 {
			log.Printf("🌱 %d course contoh ditambahkan", n)
		}
	}

	// ⏱ scheduler setelah store siap
	notifier, err := scheduler.StartQuizNotifierCron(svcs.Notifications, configs.QuizNotifierCron)
	if err != nil {
		log.Fatalf("❌ jadwal quiz notifier tidak valid: %v", err)
	}

	routes.SetupRoutes(app, svcs)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: tunggu job cron, lalu tutup koneksi store
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	<-notifier.Stop().Done()
	database.Close()
}

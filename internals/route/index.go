package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"ailms_backend/internals/configs"
	authMiddleware "ailms_backend/internals/middlewares/auth"
	"ailms_backend/internals/store"

	certRoute "ailms_backend/internals/features/achievements/certificates/route"
	certService "ailms_backend/internals/features/achievements/certificates/service"
	gamRoute "ailms_backend/internals/features/achievements/gamification/route"
	gamService "ailms_backend/internals/features/achievements/gamification/service"
	assignRoute "ailms_backend/internals/features/assessment/assignments/route"
	assignService "ailms_backend/internals/features/assessment/assignments/service"
	quizRoute "ailms_backend/internals/features/assessment/quizzes/route"
	quizService "ailms_backend/internals/features/assessment/quizzes/service"
	chatRoute "ailms_backend/internals/features/assistant/chatbot/route"
	chatService "ailms_backend/internals/features/assistant/chatbot/service"
	courseRoute "ailms_backend/internals/features/learning/courses/route"
	courseService "ailms_backend/internals/features/learning/courses/service"
	progressService "ailms_backend/internals/features/learning/progress/service"
	notifRoute "ailms_backend/internals/features/notifications/route"
	notifService "ailms_backend/internals/features/notifications/service"
)

var startTime time.Time

// Services: semua service domain yang berbagi satu store.
type Services struct {
	Store         store.Store
	Courses       *courseService.CourseService
	Progress      *progressService.ProgressService
	Quizzes       *quizService.QuizService
	Assignments   *assignService.AssignmentService
	Gamification  *gamService.GamificationService
	Certificates  *certService.CertificateService
	Assistant     *chatService.Assistant
	Notifications *notifService.NotificationService
}

func NewServices(st store.Store) (*Services, error) {
	policy, err := quizService.ParseAttemptPolicy(configs.QuizAttemptPolicy)
	if err != nil {
		return nil, err
	}

	gam := gamService.NewGamificationService(st)
	progress := progressService.NewProgressService(st, gam)
	window := time.Duration(configs.QuizNotifierWindowDays) * 24 * time.Hour

	return &Services{
		Store:         st,
		Courses:       courseService.NewCourseService(st),
		Progress:      progress,
		Quizzes:       quizService.NewQuizService(st, policy, gam),
		Assignments:   assignService.NewAssignmentService(st),
		Gamification:  gam,
		Certificates:  certService.NewCertificateService(st, progress),
		Assistant:     chatService.NewAssistant(st, configs.ChatbotRandomSeed),
		Notifications: notifService.NewNotificationService(st, window),
	}, nil
}

func SetupRoutes(app *fiber.App, svcs *Services) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	certRoute.CertificatePublicRoutes(public, svcs.Certificates)

	// ===================== PRIVATE (JWT) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api", authMiddleware.AuthMiddleware(""))

	// /quizzes/pending harus terdaftar sebelum /quizzes/:id
	notifRoute.NotificationRoutes(private, svcs.Notifications)
	quizRoute.QuizRoutes(private, svcs.Quizzes)
	assignRoute.AssignmentRoutes(private, svcs.Assignments)
	courseRoute.CourseRoutes(private, svcs.Courses, svcs.Progress)
	gamRoute.GamificationRoutes(private, svcs.Gamification)
	certRoute.CertificateRoutes(private, svcs.Certificates)
	chatRoute.ChatbotRoutes(private, svcs.Assistant)

	log.Println("[INFO] Routes mounted ✅")
}

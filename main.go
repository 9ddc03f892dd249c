// File: consultly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consultly/config"
	"consultly/cron"
	"consultly/database"
	bookingRepoPkg "consultly/database/repository/booking"
	noteRepoPkg "consultly/database/repository/note"
	resumeRepoPkg "consultly/database/repository/resume"
	serviceRepoPkg "consultly/database/repository/service"
	sessionRepoPkg "consultly/database/repository/session"
	userRepoPkg "consultly/database/repository/user"
	"consultly/handlers"
	"consultly/routes"
	"consultly/services/admin"
	"consultly/services/booking"
	"consultly/services/catalog"
	"consultly/services/note"
	"consultly/services/notification"
	"consultly/services/resume"
	"consultly/services/storage"
	"consultly/services/tasks"
	"consultly/services/user"
	"consultly/services/webhook"
	"consultly/services/zoom"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	defer database.CloseDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Warnf("main: image storage disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	noteRepo := noteRepoPkg.NewMongoNoteRepo()
	resumeRepo := resumeRepoPkg.NewMongoResumeRepo()

	// services.
	zoomClient := zoom.NewClient()

	notificationService := &notification.DefaultNotificationService{
		Users:  userRepo,
		Mailer: notification.NewSMTPMailer(),
		Push:   &notification.FCMPush{},
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	reminderScheduler := &tasks.DefaultReminderScheduler{
		Client: asynqClient,
		Lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Sessions:  sessionRepo,
		Users:     userRepo,
		Services:  serviceRepo,
		Zoom:      zoomClient,
		Notifier:  notificationService,
		Reminders: reminderScheduler,
	}

	paymentHandler := booking.NewStripePaymentHandler(bookingRepo, bookingService, config.AppConfig.StripeCurrency)
	webhookService := webhook.NewDefaultWebhookService(sessionRepo, zoomClient, config.AppConfig.ZoomWebhookSecret)
	userService := user.NewDefaultUserService(userRepo)
	catalogService := catalog.NewDefaultCatalogService(serviceRepo)
	noteService := note.NewDefaultNoteService(noteRepo)
	resumeService := resume.NewDefaultResumeService(resumeRepo)
	adminService := admin.NewDefaultAdminService(bookingRepo, userRepo)

	// Background reminder worker and infrastructure health monitor.
	cron.InitReminderWorker(bookingRepo, notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Auth:     &handlers.AuthHandler{UserService: userService},
		Users:    &handlers.UserHandler{UserService: userService, Storage: storageService},
		Bookings: &handlers.BookingHandler{Bookings: bookingService, Payments: paymentHandler},
		Catalog:  &handlers.CatalogHandler{Catalog: catalogService},
		Notes:    &handlers.NoteHandler{Notes: noteService},
		Resumes:  &handlers.ResumeHandler{Resumes: resumeService},
		Webhooks: &handlers.WebhookHandler{Webhooks: webhookService},
		Admin:    &handlers.AdminHandler{Admin: adminService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

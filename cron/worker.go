package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"consultly/config"
	"consultly/models"
	"consultly/services/notification"
	"consultly/services/tasks"
	"consultly/utils"

	bookingRepo "consultly/database/repository/booking"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(bookings bookingRepo.BookingRepository, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, handleBookingReminder(bookings, notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleBookingReminder re-reads the booking at fire time, so reminders for
// bookings that were cancelled, moved, or deleted after scheduling are
// dropped instead of delivered stale.
func handleBookingReminder(bookings bookingRepo.BookingRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		booking, err := bookings.GetByID(p.BookingID)
		if err != nil {
			if utils.IsNotFound(err) {
				log.Printf("[ReminderHandler] Booking %s no longer exists, dropping reminder", p.BookingID)
				return nil
			}
			return err
		}
		if booking.BookingStatus == models.BookingCancelled {
			log.Printf("[ReminderHandler] Booking %s is cancelled, dropping reminder", p.BookingID)
			return nil
		}
		if time.Now().After(booking.Timeslot.Start) {
			log.Printf("[ReminderHandler] Booking %s already started, dropping reminder", p.BookingID)
			return nil
		}

		if err := notifSvc.SendBookingReminder(ctx, booking); err != nil {
			log.Printf("[ReminderHandler] ❌ Failed to send reminder for booking %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}

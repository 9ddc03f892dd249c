package booking

import (
	"context"

	bookingRepo "consultly/database/repository/booking"
	serviceRepo "consultly/database/repository/service"
	sessionRepo "consultly/database/repository/session"
	userRepo "consultly/database/repository/user"
	"consultly/models"
	"consultly/services/notification"
	"consultly/services/tasks"
	"consultly/services/zoom"
)

// BookingService orchestrates the booking lifecycle: persistence, the video
// meeting attached to the booking, paid-link exposure, notifications, and
// reminders. Provider-side failures degrade to warnings on the result; only
// the primary store write can fail a mutation.
type BookingService interface {
	Create(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
	Update(ctx context.Context, id string, upd models.BookingUpdate) (*models.BookingResult, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	Delete(ctx context.Context, id string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Sessions  sessionRepo.SessionRepository
	Users     userRepo.UserRepository
	Services  serviceRepo.ServiceRepository
	Zoom      zoom.Client
	Notifier  notification.NotificationService
	Reminders tasks.ReminderScheduler
}

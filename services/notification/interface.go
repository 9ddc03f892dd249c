package notification

import (
	"context"
	"fmt"
	"time"

	userRepo "consultly/database/repository/user"
	"consultly/models"
	"consultly/utils"

	"go.uber.org/zap"
)

// NotificationService defines the outbound messages the booking flow sends.
type NotificationService interface {
	// SendBookingCreated notifies both the customer and the provider that a
	// booking exists, including the join link when it is already exposed.
	SendBookingCreated(ctx context.Context, b *models.Booking) error
	// SendBookingReminder nudges the customer ahead of the scheduled start.
	SendBookingReminder(ctx context.Context, b *models.Booking) error
}

// DefaultNotificationService fans a message out over email and push. Email is
// the primary channel: its failure is the caller's error. Push is
// best-effort and only logged.
type DefaultNotificationService struct {
	Users  userRepo.UserRepository
	Mailer Mailer
	Push   PushSender
}

const bookingTimeLayout = "Mon, 02 Jan 2006 15:04 MST"

func (s *DefaultNotificationService) SendBookingCreated(ctx context.Context, b *models.Booking) error {
	user, err := s.Users.GetByID(b.UserID)
	if err != nil {
		return fmt.Errorf("booking-created notification: %w", err)
	}
	provider, err := s.Users.GetByID(b.ProviderID)
	if err != nil {
		return fmt.Errorf("booking-created notification: %w", err)
	}

	when := b.Timeslot.Start.Format(bookingTimeLayout)

	userBody := fmt.Sprintf("Your consultation with %s is booked for %s.", provider.Name, when)
	if b.ZoomJoinLink != "" {
		userBody += fmt.Sprintf("\nJoin link: %s", b.ZoomJoinLink)
	} else {
		userBody += "\nYour meeting link will be available once payment is completed."
	}
	if err := s.Mailer.Send(ctx, user.Email, "Booking confirmed", userBody); err != nil {
		return fmt.Errorf("booking-created notification: %w", err)
	}

	providerBody := fmt.Sprintf("%s booked a consultation with you for %s.", user.Name, when)
	if b.ZoomJoinLink != "" {
		providerBody += fmt.Sprintf("\nJoin link: %s", b.ZoomJoinLink)
	}
	if err := s.Mailer.Send(ctx, provider.Email, "New booking", providerBody); err != nil {
		return fmt.Errorf("booking-created notification: %w", err)
	}

	s.push(ctx, user, "Booking confirmed", fmt.Sprintf("Consultation with %s on %s", provider.Name, when), b)
	s.push(ctx, provider, "New booking", fmt.Sprintf("Consultation with %s on %s", user.Name, when), b)
	return nil
}

func (s *DefaultNotificationService) SendBookingReminder(ctx context.Context, b *models.Booking) error {
	user, err := s.Users.GetByID(b.UserID)
	if err != nil {
		return fmt.Errorf("booking-reminder notification: %w", err)
	}

	minutes := int(time.Until(b.Timeslot.Start).Round(time.Minute) / time.Minute)
	body := fmt.Sprintf("Your consultation starts at %s.", b.Timeslot.Start.Format(bookingTimeLayout))
	if minutes > 0 {
		body = fmt.Sprintf("Your consultation starts in %d minutes.", minutes)
	}
	if b.ZoomJoinLink != "" {
		body += fmt.Sprintf("\nJoin link: %s", b.ZoomJoinLink)
	}

	if err := s.Mailer.Send(ctx, user.Email, "Upcoming consultation", body); err != nil {
		return fmt.Errorf("booking-reminder notification: %w", err)
	}
	s.push(ctx, user, "Upcoming consultation", body, b)
	return nil
}

// push delivers a best-effort push message; recipients without a device
// token are skipped silently.
func (s *DefaultNotificationService) push(ctx context.Context, u *models.User, title, body string, b *models.Booking) {
	if s.Push == nil || u.FCMToken == "" {
		return
	}
	data := map[string]string{
		"bookingId": b.ID,
		"type":      "booking",
	}
	if err := s.Push.Send(ctx, u.FCMToken, title, body, data); err != nil {
		utils.GetLogger().Warn("push notification failed",
			zap.String("userID", u.ID),
			zap.Error(err))
	}
}

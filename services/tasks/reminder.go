package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"consultly/models"
	"consultly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBookingReminder = "booking:reminder"

// NewBookingReminderTask builds the delayed task that fires a booking
// reminder at fireAt. The payload carries only the booking ID; the worker
// re-reads the booking so reminders for cancelled or moved bookings are
// dropped at fire time.
func NewBookingReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt), asynq.MaxRetry(3)}

	return task, opts, nil
}

// ReminderScheduler enqueues booking reminders.
type ReminderScheduler interface {
	ScheduleBookingReminder(b *models.Booking) error
}

// DefaultReminderScheduler enqueues reminders on the asynq queue, firing
// Lead before the scheduled start.
type DefaultReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

func (s *DefaultReminderScheduler) ScheduleBookingReminder(b *models.Booking) error {
	if s.Client == nil {
		return nil
	}

	fireAt := b.Timeslot.Start.Add(-s.Lead)
	if !fireAt.After(time.Now()) {
		utils.GetLogger().Debug("booking starts too soon, skipping reminder",
			zap.String("bookingID", b.ID))
		return nil
	}

	task, opts, err := NewBookingReminderTask(models.ReminderPayload{BookingID: b.ID}, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", b.ID, err)
	}
	return nil
}

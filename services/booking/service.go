package booking

import (
	"context"
	"fmt"
	"math"
	"time"

	"consultly/models"
	"consultly/utils"

	"go.uber.org/zap"
)

// durationMinutes derives the meeting length from the scheduled window,
// rounded to the nearest minute.
func durationMinutes(slot models.TimeSlot) int {
	return int(math.Round(slot.End.Sub(slot.Start).Minutes()))
}

// warnf records a non-fatal side-effect failure on the result and in the log.
func (s *DefaultBookingService) warnf(res *models.BookingResult, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	res.Warnings = append(res.Warnings, msg)
	utils.GetLogger().Warn(msg)
}

// Create persists the booking, schedules the video meeting, exposes the join
// link when payment already succeeded, and kicks off notifications and the
// reminder. Everything after the store write degrades to warnings.
func (s *DefaultBookingService) Create(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	b := &models.Booking{
		UserID:        req.UserID,
		ProviderID:    req.ProviderID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Timeslot:      req.Timeslot,
		Amount:        req.Amount,
		PaymentStatus: req.PaymentStatus,
		BookingStatus: req.BookingStatus,
		ZoomJoinLink:  req.ZoomJoinLink,
	}
	if b.Date == "" && !req.Timeslot.Start.IsZero() {
		b.Date = req.Timeslot.Start.Format("2006-01-02")
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	result := &models.BookingResult{Booking: b}

	minutes := durationMinutes(b.Timeslot)
	if minutes < 1 {
		s.warnf(result, "booking %s: timeslot shorter than one minute, meeting not scheduled", b.ID)
	} else {
		sess, err := s.scheduleMeeting(ctx, b, minutes, true)
		if err != nil {
			s.warnf(result, "booking %s: meeting scheduling failed: %v", b.ID, err)
		} else if b.PaymentStatus == models.PaymentSuccess {
			if err := s.Repo.SetMeetingLink(b.ID, sess.JoinURL); err != nil {
				s.warnf(result, "booking %s: setting meeting link failed: %v", b.ID, err)
			} else {
				b.ZoomJoinLink = sess.JoinURL
			}
		}
	}

	s.notifyCreated(b)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(b); err != nil {
			s.warnf(result, "booking %s: reminder scheduling failed: %v", b.ID, err)
		}
	}
	return result, nil
}

// Update applies the partial update and reconciles the attached meeting:
// payment turning successful exposes (or backfills) the join link, and a
// moved timeslot is pushed to the provider and the session record.
func (s *DefaultBookingService) Update(ctx context.Context, id string, upd models.BookingUpdate) (*models.BookingResult, error) {
	prev, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	b, err := s.Repo.Update(id, upd)
	if err != nil {
		return nil, err
	}

	result := &models.BookingResult{Booking: b}

	sess, err := s.Sessions.GetByBookingID(id)
	if err != nil {
		s.warnf(result, "booking %s: session lookup failed: %v", id, err)
		sess = nil
	}

	timeslotChanged := upd.Timeslot != nil &&
		(!prev.Timeslot.Start.Equal(b.Timeslot.Start) || !prev.Timeslot.End.Equal(b.Timeslot.End))
	if timeslotChanged && sess != nil {
		minutes := durationMinutes(b.Timeslot)
		if minutes < 1 {
			s.warnf(result, "booking %s: new timeslot shorter than one minute, meeting left unchanged", id)
		} else {
			if err := s.Zoom.UpdateMeeting(ctx, sess.MeetingID, b.Timeslot.Start, minutes); err != nil {
				s.warnf(result, "booking %s: rescheduling meeting failed: %v", id, err)
			}
			if err := s.Sessions.UpdateTimes(sess.ID, b.Timeslot.Start, b.Timeslot.End); err != nil {
				s.warnf(result, "booking %s: updating session times failed: %v", id, err)
			}
		}
	}

	paymentTurnedSuccess := prev.PaymentStatus != models.PaymentSuccess &&
		b.PaymentStatus == models.PaymentSuccess
	if paymentTurnedSuccess {
		if sess != nil {
			if err := s.Repo.SetMeetingLink(id, sess.JoinURL); err != nil {
				s.warnf(result, "booking %s: setting meeting link failed: %v", id, err)
			} else {
				b.ZoomJoinLink = sess.JoinURL
			}
		} else {
			// Payment arrived for a booking that never got its meeting, e.g.
			// the provider was down at creation. Backfill it now.
			minutes := durationMinutes(b.Timeslot)
			if minutes < 1 {
				s.warnf(result, "booking %s: timeslot shorter than one minute, meeting not scheduled", id)
			} else if newSess, err := s.scheduleMeeting(ctx, b, minutes, false); err != nil {
				s.warnf(result, "booking %s: meeting backfill failed: %v", id, err)
			} else if err := s.Repo.SetMeetingLink(id, newSess.JoinURL); err != nil {
				s.warnf(result, "booking %s: setting meeting link failed: %v", id, err)
			} else {
				b.ZoomJoinLink = newSess.JoinURL
			}
		}
	}

	return result, nil
}

// scheduleMeeting creates the provider meeting and the session record
// tracking it.
func (s *DefaultBookingService) scheduleMeeting(ctx context.Context, b *models.Booking, minutes int, autoRecord bool) (*models.ZoomSession, error) {
	meeting, err := s.Zoom.CreateMeeting(ctx, s.meetingTopic(b), b.Timeslot.Start, minutes, autoRecord)
	if err != nil {
		return nil, err
	}

	end := b.Timeslot.End
	sess := &models.ZoomSession{
		BookingID: b.ID,
		MeetingID: meeting.ID,
		JoinURL:   meeting.JoinURL,
		HostURL:   meeting.StartURL,
		StartTime: b.Timeslot.Start,
		EndTime:   &end,
		Status:    models.SessionScheduled,
	}
	if err := s.Sessions.Create(sess); err != nil {
		return nil, fmt.Errorf("meeting %s created but session tracking failed: %w", meeting.ID, err)
	}

	utils.GetLogger().Info("meeting scheduled",
		zap.String("bookingID", b.ID),
		zap.String("meetingID", meeting.ID),
		zap.Int("durationMinutes", minutes))
	return sess, nil
}

// meetingTopic composes a human-readable meeting title; lookups are
// best-effort and fall back to a generic topic.
func (s *DefaultBookingService) meetingTopic(b *models.Booking) string {
	topic := "Consultation"
	if svc, err := s.Services.GetByID(b.ServiceID); err == nil {
		topic = fmt.Sprintf("Consultation: %s", svc.Name)
	}
	user, uerr := s.Users.GetByID(b.UserID)
	provider, perr := s.Users.GetByID(b.ProviderID)
	if uerr == nil && perr == nil {
		topic = fmt.Sprintf("%s - %s with %s", topic, user.Name, provider.Name)
	}
	return topic
}

// notifyCreated dispatches the booking-created notification without blocking
// the request.
func (s *DefaultBookingService) notifyCreated(b *models.Booking) {
	if s.Notifier == nil {
		return
	}
	snapshot := *b
	go func() {
		defer func() {
			if r := recover(); r != nil {
				utils.GetLogger().Error("booking notification panicked", zap.Any("recover", r))
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Notifier.SendBookingCreated(ctx, &snapshot); err != nil {
			utils.GetLogger().Warn("booking notification failed",
				zap.String("bookingID", snapshot.ID),
				zap.Error(err))
		}
	}()
}

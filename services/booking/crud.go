package booking

import (
	"context"

	"consultly/models"
	"consultly/utils"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultBookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	return s.Repo.List(filter)
}

// Delete removes the booking along with its meeting and session record.
// Provider-side cleanup is best-effort; the store delete is the only step
// that can fail the call.
func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		return err
	}

	sess, err := s.Sessions.GetByBookingID(id)
	if err != nil {
		utils.GetLogger().Warn("session lookup failed during booking delete",
			zap.String("bookingID", id), zap.Error(err))
		sess = nil
	}
	if sess != nil {
		if err := s.Zoom.DeleteMeeting(ctx, sess.MeetingID); err != nil {
			utils.GetLogger().Warn("meeting cleanup failed during booking delete",
				zap.String("bookingID", id),
				zap.String("meetingID", sess.MeetingID),
				zap.Error(err))
		}
		if err := s.Sessions.Delete(sess.ID); err != nil {
			utils.GetLogger().Warn("session cleanup failed during booking delete",
				zap.String("bookingID", id), zap.Error(err))
		}
	}

	return s.Repo.Delete(id)
}

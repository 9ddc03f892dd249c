package webhook

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"consultly/models"
	"consultly/utils"

	"go.uber.org/zap"
)

// HandleEvent routes one event to its reconciliation step. Events referencing
// meetings this system never created are acknowledged and dropped; Zoom
// retries on non-2xx, so failing here only causes duplicate deliveries.
func (s *DefaultWebhookService) HandleEvent(ctx context.Context, event models.ZoomWebhookEvent) error {
	var payload models.ZoomEventPayload
	if len(event.Payload) > 0 {
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return &utils.ValidationError{Field: "payload", Message: "malformed event payload"}
		}
	}

	switch event.Event {
	case models.ZoomEventMeetingStarted:
		s.handleMeetingStarted(payload.Object)
	case models.ZoomEventMeetingEnded:
		s.handleMeetingEnded(payload.Object)
	case models.ZoomEventRecordingCompleted:
		s.handleRecordingCompleted(ctx, payload.Object)
	default:
		utils.GetLogger().Info("unhandled zoom event", zap.String("event", event.Event))
	}
	return nil
}

func (s *DefaultWebhookService) handleMeetingStarted(obj models.ZoomEventObject) {
	meetingID := obj.MeetingID()
	if meetingID == "" {
		utils.GetLogger().Info("meeting.started without meeting id, ignoring")
		return
	}
	if err := s.Sessions.MarkOngoing(meetingID); err != nil {
		utils.GetLogger().Warn("marking session ongoing failed",
			zap.String("meetingID", meetingID), zap.Error(err))
	}
}

func (s *DefaultWebhookService) handleMeetingEnded(obj models.ZoomEventObject) {
	meetingID := obj.MeetingID()
	if meetingID == "" {
		utils.GetLogger().Info("meeting.ended without meeting id, ignoring")
		return
	}
	if err := s.Sessions.RecordEnd(meetingID, time.Now()); err != nil {
		utils.GetLogger().Warn("recording session end failed",
			zap.String("meetingID", meetingID), zap.Error(err))
	}
}

// handleRecordingCompleted fetches the meeting's recordings and completes the
// session with the chosen artifact. The authoritative list comes from the
// API; the event's embedded file list is only a fallback when that call
// fails. An empty list from a successful call is trusted as-is.
func (s *DefaultWebhookService) handleRecordingCompleted(ctx context.Context, obj models.ZoomEventObject) {
	meetingID := obj.MeetingID()
	if meetingID == "" {
		utils.GetLogger().Info("recording.completed without meeting id, ignoring")
		return
	}
	if _, err := s.Sessions.GetByMeetingID(meetingID); err != nil {
		utils.GetLogger().Warn("recording completed for unknown session",
			zap.String("meetingID", meetingID), zap.Error(err))
		return
	}

	files, err := s.Zoom.GetMeetingRecordings(ctx, meetingID)
	if err != nil {
		utils.GetLogger().Warn("recording lookup failed, using event payload",
			zap.String("meetingID", meetingID), zap.Error(err))
		files = obj.RecordingFiles
	}

	url := pickRecordingURL(files)
	if url == "" {
		utils.GetLogger().Info("no recording url available for meeting",
			zap.String("meetingID", meetingID))
	}
	if _, err := s.Sessions.Complete(meetingID, url); err != nil {
		utils.GetLogger().Error("completing session failed",
			zap.String("meetingID", meetingID), zap.Error(err))
	}
}

// pickRecordingURL selects the artifact to surface: the first MP4 when one
// exists, otherwise the first file. The streaming URL wins over the raw
// download link.
func pickRecordingURL(files []models.ZoomRecordingFile) string {
	if len(files) == 0 {
		return ""
	}
	chosen := files[0]
	for _, f := range files {
		if strings.EqualFold(f.FileType, "MP4") {
			chosen = f
			break
		}
	}
	if chosen.PlayURL != "" {
		return chosen.PlayURL
	}
	return chosen.DownloadURL
}

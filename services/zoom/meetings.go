package zoom

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"consultly/utils"
)

const (
	meetingTypeScheduled = 2

	// approvalAutomatic lets participants in without registration approval.
	approvalAutomatic = 0

	autoRecordingCloud = "cloud"
	autoRecordingNone  = "none"

	// startTimeLayout is the GMT timestamp format the Zoom API expects.
	startTimeLayout = "2006-01-02T15:04:05Z"
)

// Meeting is the subset of a provider meeting the system tracks. The
// provider reports meeting IDs as numbers; they are carried as strings
// everywhere on our side.
type Meeting struct {
	ID        string
	Topic     string
	StartTime string
	Duration  int
	JoinURL   string
	StartURL  string
}

type meetingSettings struct {
	HostVideo        bool   `json:"host_video"`
	ParticipantVideo bool   `json:"participant_video"`
	JoinBeforeHost   bool   `json:"join_before_host"`
	WaitingRoom      bool   `json:"waiting_room"`
	ApprovalType     int    `json:"approval_type"`
	AutoRecording    string `json:"auto_recording"`
}

type createMeetingRequest struct {
	Topic     string           `json:"topic"`
	Type      int              `json:"type"`
	StartTime string           `json:"start_time"`
	Duration  int              `json:"duration"`
	Timezone  string           `json:"timezone,omitempty"`
	Settings  *meetingSettings `json:"settings,omitempty"`
}

type updateMeetingRequest struct {
	StartTime string `json:"start_time,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}

type meetingResponse struct {
	ID        int64  `json:"id"`
	Topic     string `json:"topic"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	JoinURL   string `json:"join_url"`
	StartURL  string `json:"start_url"`
}

func (m meetingResponse) toMeeting() *Meeting {
	return &Meeting{
		ID:        strconv.FormatInt(m.ID, 10),
		Topic:     m.Topic,
		StartTime: m.StartTime,
		Duration:  m.Duration,
		JoinURL:   m.JoinURL,
		StartURL:  m.StartURL,
	}
}

// CreateMeeting schedules a one-off meeting under the account owner ("me").
// Video starts on for both sides, the waiting room stays off, and joins are
// approved automatically, so a paid link works without host intervention.
func (c *DefaultClient) CreateMeeting(ctx context.Context, topic string, start time.Time, durationMinutes int, autoRecord bool) (*Meeting, error) {
	recording := autoRecordingNone
	if autoRecord {
		recording = autoRecordingCloud
	}
	payload := createMeetingRequest{
		Topic:     topic,
		Type:      meetingTypeScheduled,
		StartTime: start.UTC().Format(startTimeLayout),
		Duration:  durationMinutes,
		Timezone:  c.Timezone,
		Settings: &meetingSettings{
			HostVideo:        true,
			ParticipantVideo: true,
			JoinBeforeHost:   false,
			WaitingRoom:      false,
			ApprovalType:     approvalAutomatic,
			AutoRecording:    recording,
		},
	}

	var resp meetingResponse
	if err := c.request(ctx, http.MethodPost, "/users/me/meetings", payload, &resp); err != nil {
		return nil, err
	}
	return resp.toMeeting(), nil
}

// GetMeeting fetches the current provider-side state of a meeting.
func (c *DefaultClient) GetMeeting(ctx context.Context, meetingID string) (*Meeting, error) {
	var resp meetingResponse
	if err := c.request(ctx, http.MethodGet, "/meetings/"+meetingID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.toMeeting(), nil
}

// UpdateMeeting moves a meeting to a new start and duration.
func (c *DefaultClient) UpdateMeeting(ctx context.Context, meetingID string, start time.Time, durationMinutes int) error {
	payload := updateMeetingRequest{
		StartTime: start.UTC().Format(startTimeLayout),
		Duration:  durationMinutes,
	}
	return c.request(ctx, http.MethodPatch, "/meetings/"+meetingID, payload, nil)
}

// DeleteMeeting removes a meeting from the provider. A meeting that is
// already gone counts as deleted.
func (c *DefaultClient) DeleteMeeting(ctx context.Context, meetingID string) error {
	err := c.request(ctx, http.MethodDelete, "/meetings/"+meetingID, nil, nil)
	if utils.IsProviderStatus(err, http.StatusNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete meeting %s: %w", meetingID, err)
	}
	return nil
}

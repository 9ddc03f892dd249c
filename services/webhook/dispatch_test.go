package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"consultly/models"
	"consultly/services/zoom"
	"consultly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock repositories and provider client.

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(s *models.ZoomSession) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockSessionRepo) GetByBookingID(bookingID string) (*models.ZoomSession, error) {
	args := m.Called(bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ZoomSession), args.Error(1)
}

func (m *MockSessionRepo) GetByMeetingID(meetingID string) (*models.ZoomSession, error) {
	args := m.Called(meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ZoomSession), args.Error(1)
}

func (m *MockSessionRepo) UpdateTimes(id string, start, end time.Time) error {
	args := m.Called(id, start, end)
	return args.Error(0)
}

func (m *MockSessionRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSessionRepo) MarkOngoing(meetingID string) error {
	args := m.Called(meetingID)
	return args.Error(0)
}

func (m *MockSessionRepo) RecordEnd(meetingID string, endedAt time.Time) error {
	args := m.Called(meetingID, endedAt)
	return args.Error(0)
}

func (m *MockSessionRepo) Complete(meetingID, recordingURL string) (*models.ZoomSession, error) {
	args := m.Called(meetingID, recordingURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ZoomSession), args.Error(1)
}

type MockZoomClient struct {
	mock.Mock
}

func (m *MockZoomClient) CreateMeeting(ctx context.Context, topic string, start time.Time, durationMinutes int, autoRecord bool) (*zoom.Meeting, error) {
	args := m.Called(ctx, topic, start, durationMinutes, autoRecord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zoom.Meeting), args.Error(1)
}

func (m *MockZoomClient) GetMeeting(ctx context.Context, meetingID string) (*zoom.Meeting, error) {
	args := m.Called(ctx, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zoom.Meeting), args.Error(1)
}

func (m *MockZoomClient) UpdateMeeting(ctx context.Context, meetingID string, start time.Time, durationMinutes int) error {
	args := m.Called(ctx, meetingID, start, durationMinutes)
	return args.Error(0)
}

func (m *MockZoomClient) DeleteMeeting(ctx context.Context, meetingID string) error {
	args := m.Called(ctx, meetingID)
	return args.Error(0)
}

func (m *MockZoomClient) GetMeetingRecordings(ctx context.Context, meetingID string) ([]models.ZoomRecordingFile, error) {
	args := m.Called(ctx, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ZoomRecordingFile), args.Error(1)
}

func event(eventType, payload string) models.ZoomWebhookEvent {
	return models.ZoomWebhookEvent{Event: eventType, Payload: json.RawMessage(payload)}
}

func TestHandleEventMeetingStarted(t *testing.T) {
	sessions := new(MockSessionRepo)
	sessions.On("MarkOngoing", "987654321").Return(nil)

	s := &DefaultWebhookService{Sessions: sessions}
	err := s.HandleEvent(context.Background(), event(models.ZoomEventMeetingStarted,
		`{"object":{"id":"987654321","topic":"Consultation"}}`))

	require.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestHandleEventMeetingStartedUnknownMeetingIsBenign(t *testing.T) {
	sessions := new(MockSessionRepo)
	// MarkOngoing is a no-op for meetings this system never created; the
	// handler must still acknowledge the event.
	sessions.On("MarkOngoing", "555").Return(nil)

	s := &DefaultWebhookService{Sessions: sessions}
	err := s.HandleEvent(context.Background(), event(models.ZoomEventMeetingStarted,
		`{"object":{"id":"555"}}`))

	require.NoError(t, err)
}

func TestHandleEventMeetingEnded(t *testing.T) {
	sessions := new(MockSessionRepo)
	sessions.On("RecordEnd", "987654321", mock.AnythingOfType("time.Time")).Return(nil)

	s := &DefaultWebhookService{Sessions: sessions}
	err := s.HandleEvent(context.Background(), event(models.ZoomEventMeetingEnded,
		`{"object":{"id":"987654321"}}`))

	require.NoError(t, err)
	sessions.AssertExpectations(t)
	// End of meeting never completes a session; the recording event does.
	sessions.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestHandleEventRecordingCompleted(t *testing.T) {
	sessions := new(MockSessionRepo)
	sessions.On("GetByMeetingID", "987654321").
		Return(&models.ZoomSession{ID: "s1", BookingID: "b1", MeetingID: "987654321"}, nil)
	sessions.On("Complete", "987654321", "https://x/y").
		Return(&models.ZoomSession{ID: "s1", Status: models.SessionCompleted}, nil)

	zoomClient := new(MockZoomClient)
	zoomClient.On("GetMeetingRecordings", mock.Anything, "987654321").
		Return([]models.ZoomRecordingFile{
			{FileType: "M4A", PlayURL: "https://x/audio"},
			{FileType: "MP4", PlayURL: "https://x/y", DownloadURL: "https://x/y/download"},
		}, nil)

	s := &DefaultWebhookService{Sessions: sessions, Zoom: zoomClient}
	// Recording events carry the meeting id as a JSON number.
	err := s.HandleEvent(context.Background(), event(models.ZoomEventRecordingCompleted,
		`{"object":{"id":987654321,"uuid":"abc=="}}`))

	require.NoError(t, err)
	sessions.AssertExpectations(t)
	zoomClient.AssertExpectations(t)
}

func TestHandleEventRecordingCompletedNoSession(t *testing.T) {
	sessions := new(MockSessionRepo)
	sessions.On("GetByMeetingID", "111").
		Return(nil, &utils.NotFoundError{Resource: "session", ID: "111"})

	zoomClient := new(MockZoomClient)

	s := &DefaultWebhookService{Sessions: sessions, Zoom: zoomClient}
	err := s.HandleEvent(context.Background(), event(models.ZoomEventRecordingCompleted,
		`{"object":{"id":"111"}}`))

	// Not our meeting: acknowledged without error, and nothing is written.
	require.NoError(t, err)
	zoomClient.AssertNotCalled(t, "GetMeetingRecordings", mock.Anything, mock.Anything)
	sessions.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestHandleEventRecordingCompletedMissingMeetingID(t *testing.T) {
	sessions := new(MockSessionRepo)
	zoomClient := new(MockZoomClient)

	s := &DefaultWebhookService{Sessions: sessions, Zoom: zoomClient}
	err := s.HandleEvent(context.Background(), event(models.ZoomEventRecordingCompleted,
		`{"object":{"uuid":"abc=="}}`))

	require.NoError(t, err)
	sessions.AssertNotCalled(t, "GetByMeetingID", mock.Anything)
	sessions.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestHandleEventRecordingCompletedFallsBackToPayload(t *testing.T) {
	sessions := new(MockSessionRepo)
	sessions.On("GetByMeetingID", "987654321").
		Return(&models.ZoomSession{ID: "s1", MeetingID: "987654321"}, nil)
	sessions.On("Complete", "987654321", "https://fallback/play").
		Return(&models.ZoomSession{ID: "s1", Status: models.SessionCompleted}, nil)

	zoomClient := new(MockZoomClient)
	zoomClient.On("GetMeetingRecordings", mock.Anything, "987654321").
		Return(nil, errors.New("upstream timeout"))

	s := &DefaultWebhookService{Sessions: sessions, Zoom: zoomClient}
	err := s.HandleEvent(context.Background(), event(models.ZoomEventRecordingCompleted,
		`{"object":{"id":"987654321","recording_files":[{"file_type":"MP4","play_url":"https://fallback/play"}]}}`))

	require.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestHandleEventRecordingCompletedZeroFilesDoesNotFallBack(t *testing.T) {
	sessions := new(MockSessionRepo)
	// A successful lookup with zero files is trusted: the session completes
	// without a recording even though the event embedded one.
	sessions.On("Complete", "987654321", "").
		Return(&models.ZoomSession{ID: "s1", Status: models.SessionCompleted}, nil)
	sessions.On("GetByMeetingID", "987654321").
		Return(&models.ZoomSession{ID: "s1", MeetingID: "987654321"}, nil)

	zoomClient := new(MockZoomClient)
	zoomClient.On("GetMeetingRecordings", mock.Anything, "987654321").
		Return([]models.ZoomRecordingFile{}, nil)

	s := &DefaultWebhookService{Sessions: sessions, Zoom: zoomClient}
	err := s.HandleEvent(context.Background(), event(models.ZoomEventRecordingCompleted,
		`{"object":{"id":"987654321","recording_files":[{"file_type":"MP4","play_url":"https://embedded/play"}]}}`))

	require.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestHandleEventUnknownEventIgnored(t *testing.T) {
	sessions := new(MockSessionRepo)

	s := &DefaultWebhookService{Sessions: sessions}
	err := s.HandleEvent(context.Background(), event("meeting.participant_joined",
		`{"object":{"id":"987654321"}}`))

	require.NoError(t, err)
	sessions.AssertNotCalled(t, "MarkOngoing", mock.Anything)
	sessions.AssertNotCalled(t, "RecordEnd", mock.Anything, mock.Anything)
	sessions.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestHandleEventMalformedPayload(t *testing.T) {
	s := &DefaultWebhookService{Sessions: new(MockSessionRepo)}
	err := s.HandleEvent(context.Background(), event(models.ZoomEventMeetingStarted, `{not json`))

	var ve *utils.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestPickRecordingURL(t *testing.T) {
	cases := []struct {
		name  string
		files []models.ZoomRecordingFile
		want  string
	}{
		{"empty", nil, ""},
		{
			"mp4 preferred over earlier files",
			[]models.ZoomRecordingFile{
				{FileType: "CHAT", DownloadURL: "https://x/chat"},
				{FileType: "MP4", PlayURL: "https://x/video"},
			},
			"https://x/video",
		},
		{
			"mp4 match is case-insensitive",
			[]models.ZoomRecordingFile{
				{FileType: "mp4", PlayURL: "https://x/video"},
			},
			"https://x/video",
		},
		{
			"play url wins over download url",
			[]models.ZoomRecordingFile{
				{FileType: "MP4", PlayURL: "https://x/play", DownloadURL: "https://x/download"},
			},
			"https://x/play",
		},
		{
			"download url when no play url",
			[]models.ZoomRecordingFile{
				{FileType: "MP4", DownloadURL: "https://x/download"},
			},
			"https://x/download",
		},
		{
			"first file when no mp4",
			[]models.ZoomRecordingFile{
				{FileType: "M4A", PlayURL: "https://x/audio"},
				{FileType: "CHAT", DownloadURL: "https://x/chat"},
			},
			"https://x/audio",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pickRecordingURL(tc.files))
		})
	}
}

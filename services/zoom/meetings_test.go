package zoom

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// meetingServer answers the token endpoint and hands every API request to fn.
func meetingServer(t *testing.T, fn http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token": "tok", "expires_in": 3600}`))
			return
		}
		fn(w, r)
	}))
}

func TestCreateMeetingRequestShape(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody createMeetingRequest
	server := meetingServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 987654321,
			"topic": "Career Consultation",
			"start_time": "2026-03-15T14:00:00Z",
			"duration": 60,
			"join_url": "https://zoom.us/j/987654321",
			"start_url": "https://zoom.us/s/987654321"
		}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)
	start := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	meeting, err := client.CreateMeeting(context.Background(), "Career Consultation", start, 60, true)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/users/me/meetings", gotPath)
	assert.Equal(t, "Career Consultation", gotBody.Topic)
	assert.Equal(t, meetingTypeScheduled, gotBody.Type)
	assert.Equal(t, "2026-03-15T14:00:00Z", gotBody.StartTime)
	assert.Equal(t, 60, gotBody.Duration)
	assert.Equal(t, "UTC", gotBody.Timezone)

	require.NotNil(t, gotBody.Settings)
	assert.True(t, gotBody.Settings.HostVideo)
	assert.True(t, gotBody.Settings.ParticipantVideo)
	assert.False(t, gotBody.Settings.JoinBeforeHost)
	assert.False(t, gotBody.Settings.WaitingRoom)
	assert.Equal(t, approvalAutomatic, gotBody.Settings.ApprovalType)
	assert.Equal(t, autoRecordingCloud, gotBody.Settings.AutoRecording)

	// The numeric provider id comes back as a string on our side.
	assert.Equal(t, "987654321", meeting.ID)
	assert.Equal(t, "https://zoom.us/j/987654321", meeting.JoinURL)
	assert.Equal(t, "https://zoom.us/s/987654321", meeting.StartURL)
	assert.Equal(t, 60, meeting.Duration)
}

func TestCreateMeetingWithoutRecording(t *testing.T) {
	var gotBody createMeetingRequest
	server := meetingServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "join_url": "https://zoom.us/j/1"}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateMeeting(context.Background(), "t", time.Now(), 30, false)

	require.NoError(t, err)
	require.NotNil(t, gotBody.Settings)
	assert.Equal(t, autoRecordingNone, gotBody.Settings.AutoRecording)
}

func TestCreateMeetingNormalizesStartToUTC(t *testing.T) {
	var gotBody createMeetingRequest
	server := meetingServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)
	loc := time.FixedZone("UTC+3", 3*3600)
	start := time.Date(2026, 3, 15, 17, 0, 0, 0, loc)
	_, err := client.CreateMeeting(context.Background(), "t", start, 30, false)

	require.NoError(t, err)
	assert.Equal(t, "2026-03-15T14:00:00Z", gotBody.StartTime)
}

func TestUpdateMeetingRequestShape(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody updateMeetingRequest
	server := meetingServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	client := newTestClient(server.URL)
	start := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)
	err := client.UpdateMeeting(context.Background(), "987654321", start, 45)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/meetings/987654321", gotPath)
	assert.Equal(t, "2026-04-01T09:30:00Z", gotBody.StartTime)
	assert.Equal(t, 45, gotBody.Duration)
}

func TestDeleteMeetingToleratesMissingMeeting(t *testing.T) {
	server := meetingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code": 3001, "message": "Meeting does not exist: 987654321."}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.DeleteMeeting(context.Background(), "987654321")

	assert.NoError(t, err, "deleting an already-deleted meeting is not an error")
}

func TestDeleteMeetingPropagatesOtherErrors(t *testing.T) {
	server := meetingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code": 500, "message": "Something went wrong"}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.DeleteMeeting(context.Background(), "987654321")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "987654321")
}

func TestGetMeetingRecordingsEmptyList(t *testing.T) {
	server := meetingServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/meetings/987654321/recordings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 987654321, "uuid": "abc==", "recording_files": []}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)
	files, err := client.GetMeetingRecordings(context.Background(), "987654321")

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGetMeetingRecordingsReturnsFiles(t *testing.T) {
	server := meetingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 987654321,
			"recording_files": [
				{"file_type": "MP4", "play_url": "https://zoom.us/rec/play/a", "download_url": "https://zoom.us/rec/download/a"},
				{"file_type": "M4A", "download_url": "https://zoom.us/rec/download/b"}
			]
		}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)
	files, err := client.GetMeetingRecordings(context.Background(), "987654321")

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "MP4", files[0].FileType)
	assert.Equal(t, "https://zoom.us/rec/play/a", files[0].PlayURL)
}

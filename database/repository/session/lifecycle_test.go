package sessionRepo

import (
	"testing"

	"consultly/models"

	"github.com/stretchr/testify/assert"
)

func TestCompletionChangesFreshSession(t *testing.T) {
	s := &models.ZoomSession{ID: "s1", Status: models.SessionOngoing}

	changes := completionChanges(s, "https://zoom.us/rec/play/a")

	assert.Equal(t, models.SessionCompleted, changes["status"])
	assert.Equal(t, "https://zoom.us/rec/play/a", changes["recordingUrl"])
}

func TestCompletionChangesWithoutRecording(t *testing.T) {
	s := &models.ZoomSession{ID: "s1", Status: models.SessionOngoing}

	changes := completionChanges(s, "")

	assert.Equal(t, models.SessionCompleted, changes["status"])
	assert.NotContains(t, changes, "recordingUrl")
}

func TestCompletionChangesRepeatEventIsEmpty(t *testing.T) {
	s := &models.ZoomSession{
		ID:           "s1",
		Status:       models.SessionCompleted,
		RecordingURL: "https://zoom.us/rec/play/a",
	}

	// A redelivered event with the same recording must produce no writes.
	assert.Empty(t, completionChanges(s, "https://zoom.us/rec/play/a"))
	assert.Empty(t, completionChanges(s, ""))
}

func TestCompletionChangesNewRecordingOnCompletedSession(t *testing.T) {
	s := &models.ZoomSession{
		ID:           "s1",
		Status:       models.SessionCompleted,
		RecordingURL: "https://zoom.us/rec/play/a",
	}

	changes := completionChanges(s, "https://zoom.us/rec/play/b")

	assert.NotContains(t, changes, "status", "status is already terminal")
	assert.Equal(t, "https://zoom.us/rec/play/b", changes["recordingUrl"])
}

func TestCompletionChangesScheduledSessionCompletesDirectly(t *testing.T) {
	// A recording event can arrive before meeting.started was ever seen.
	s := &models.ZoomSession{ID: "s1", Status: models.SessionScheduled}

	changes := completionChanges(s, "https://zoom.us/rec/play/a")

	assert.Equal(t, models.SessionCompleted, changes["status"])
}

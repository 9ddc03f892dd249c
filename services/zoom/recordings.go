package zoom

import (
	"context"
	"net/http"

	"consultly/models"
)

type recordingsResponse struct {
	ID             int64                      `json:"id"`
	UUID           string                     `json:"uuid"`
	RecordingFiles []models.ZoomRecordingFile `json:"recording_files"`
}

// GetMeetingRecordings lists the cloud recording files of a meeting. A
// successful call with no files returns an empty slice, which is distinct
// from the call failing.
func (c *DefaultClient) GetMeetingRecordings(ctx context.Context, meetingID string) ([]models.ZoomRecordingFile, error) {
	var resp recordingsResponse
	if err := c.request(ctx, http.MethodGet, "/meetings/"+meetingID+"/recordings", nil, &resp); err != nil {
		return nil, err
	}
	return resp.RecordingFiles, nil
}

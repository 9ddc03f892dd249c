package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Zoom webhook event types this system reacts to. Anything else is logged
// and acknowledged.
const (
	ZoomEventURLValidation      = "endpoint.url_validation"
	ZoomEventMeetingStarted     = "meeting.started"
	ZoomEventMeetingEnded       = "meeting.ended"
	ZoomEventRecordingCompleted = "recording.completed"
)

// ZoomWebhookEvent is the outer envelope Zoom posts to the webhook endpoint.
type ZoomWebhookEvent struct {
	Event         string          `json:"event"`
	EventTS       int64           `json:"event_ts,omitempty"`
	Payload       json.RawMessage `json:"payload"`
	DownloadToken string          `json:"download_token,omitempty"`
}

// ZoomEventPayload is the inner payload. The url_validation handshake carries
// plainToken; every lifecycle event carries an object instead.
type ZoomEventPayload struct {
	AccountID  string          `json:"account_id,omitempty"`
	PlainToken string          `json:"plainToken,omitempty"`
	Object     ZoomEventObject `json:"object,omitempty"`
}

// ZoomEventObject is the meeting or recording object inside an event payload.
// Zoom encodes the meeting id as a JSON number on recording events and as a
// string on meeting events, so the raw value is kept and coerced on read.
type ZoomEventObject struct {
	ID             json.RawMessage     `json:"id,omitempty"`
	UUID           string              `json:"uuid,omitempty"`
	Topic          string              `json:"topic,omitempty"`
	StartTime      string              `json:"start_time,omitempty"`
	EndTime        string              `json:"end_time,omitempty"`
	RecordingFiles []ZoomRecordingFile `json:"recording_files,omitempty"`
}

// ZoomRecordingFile is one recorded artifact attached to a meeting.
type ZoomRecordingFile struct {
	FileType    string `json:"file_type"`
	PlayURL     string `json:"play_url,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
}

// MeetingID returns the meeting id as a string regardless of the JSON type
// Zoom used to encode it; empty when the event carried none.
func (o ZoomEventObject) MeetingID() string {
	raw := bytes.TrimSpace(o.ID)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return strings.Trim(string(raw), `"`)
}

// ZoomURLValidationResponse answers the endpoint verification handshake.
type ZoomURLValidationResponse struct {
	PlainToken     string `json:"plainToken"`
	EncryptedToken string `json:"encryptedToken"`
}

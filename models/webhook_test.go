package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingIDCoercion(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    string
	}{
		{"json string", `{"id":"987654321"}`, "987654321"},
		{"json number", `{"id":987654321}`, "987654321"},
		{"large number stays exact", `{"id":91234567890}`, "91234567890"},
		{"missing", `{}`, ""},
		{"null", `{"id":null}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var obj ZoomEventObject
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &obj))
			assert.Equal(t, tc.want, obj.MeetingID())
		})
	}
}

func TestWebhookEventEnvelope(t *testing.T) {
	raw := `{
		"event": "recording.completed",
		"event_ts": 1700000000000,
		"payload": {
			"account_id": "abc",
			"object": {
				"id": 987654321,
				"uuid": "4444AAAiAAAAAiAiAiiAii==",
				"topic": "Career Consultation",
				"recording_files": [
					{"file_type": "MP4", "play_url": "https://zoom.us/rec/play/a", "download_url": "https://zoom.us/rec/download/a"}
				]
			}
		}
	}`

	var event ZoomWebhookEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &event))
	assert.Equal(t, ZoomEventRecordingCompleted, event.Event)

	var payload ZoomEventPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "987654321", payload.Object.MeetingID())
	require.Len(t, payload.Object.RecordingFiles, 1)
	assert.Equal(t, "MP4", payload.Object.RecordingFiles[0].FileType)
	assert.Equal(t, "https://zoom.us/rec/play/a", payload.Object.RecordingFiles[0].PlayURL)
}

func TestURLValidationResponseShape(t *testing.T) {
	resp := ZoomURLValidationResponse{PlainToken: "p", EncryptedToken: "e"}
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"plainToken":"p","encryptedToken":"e"}`, string(data))
}

package services

import (
	"encoding/json"
	"testing"
)

func TestEncodePushMessageNestsGCMAsString(t *testing.T) {
	raw, err := encodePushMessage("New invitation", "ana wants to share habits", map[string]string{
		"type": "invitation_received",
	})
	if err != nil {
		t.Fatalf("encodePushMessage: %v", err)
	}

	// every per-protocol value must itself be a string, or SNS falls
	// back to the default text for that protocol
	var envelope map[string]string
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		t.Fatalf("envelope values are not all strings: %v", err)
	}
	if envelope["default"] != "ana wants to share habits" {
		t.Fatalf("default = %q", envelope["default"])
	}

	var gcm struct {
		Notification struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		} `json:"notification"`
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal([]byte(envelope["GCM"]), &gcm); err != nil {
		t.Fatalf("GCM value is not embedded JSON: %v", err)
	}
	if gcm.Notification.Title != "New invitation" || gcm.Data["type"] != "invitation_received" {
		t.Fatalf("GCM payload = %+v", gcm)
	}
}

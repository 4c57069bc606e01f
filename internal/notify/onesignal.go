package notify

import (
	"context"
	"net/http"
	"strings"
)

// DefaultOneSignalURL is the OneSignal API host.
const DefaultOneSignalURL = "https://onesignal.com"

// Pusher sends a broadcast push notification.
type Pusher interface {
	Push(ctx context.Context, title, message string) Result
}

// PushClient sends push notifications through OneSignal to every subscribed
// device.
type PushClient struct {
	baseURL    string
	appID      string
	restKey    string
	httpClient *http.Client
}

// NewPushClient creates a OneSignal client. Empty credentials leave it
// unconfigured, in which case every Push is skipped.
func NewPushClient(baseURL, appID, restKey string, httpClient *http.Client) *PushClient {
	return &PushClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		appID:      appID,
		restKey:    restKey,
		httpClient: httpClient,
	}
}

// Configured reports whether both the app ID and REST key are set.
func (c *PushClient) Configured() bool {
	return c.appID != "" && c.restKey != ""
}

type oneSignalRequest struct {
	AppID            string            `json:"app_id"`
	IncludedSegments []string          `json:"included_segments"`
	Headings         map[string]string `json:"headings"`
	Contents         map[string]string `json:"contents"`
}

// Push broadcasts title and message to the "Subscribed Users" segment.
func (c *PushClient) Push(ctx context.Context, title, message string) Result {
	if !c.Configured() {
		return skipped("OneSignal not configured")
	}

	payload := oneSignalRequest{
		AppID:            c.appID,
		IncludedSegments: []string{"Subscribed Users"},
		Headings:         map[string]string{"en": title},
		Contents:         map[string]string{"en": message},
	}
	return postJSON(ctx, c.httpClient, c.baseURL+"/api/v1/notifications", "Basic "+c.restKey, payload)
}

var _ Pusher = (*PushClient)(nil)

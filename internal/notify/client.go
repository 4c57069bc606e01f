package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// Result is the outcome of one delivery attempt.
//
// A skipped result means the channel is not configured; it counts as OK.
// Data holds the provider's parsed JSON response, or an empty object when
// the body was not JSON.
type Result struct {
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func skipped(reason string) Result {
	return Result{OK: true, Skipped: true, Reason: reason}
}

// maxResponseBytes bounds how much of a provider response is read.
const maxResponseBytes = 1 << 20

// postJSON sends payload to url and folds the response into a Result.
// Transport failures become a non-OK result carrying the error text.
func postJSON(ctx context.Context, httpClient *http.Client, url, authorization string, payload any) Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Data: map[string]any{"error": err.Error()}}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{Data: map[string]any{"error": err.Error()}}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authorization)

	resp, err := httpClient.Do(req)
	if err != nil {
		return Result{Data: map[string]any{"error": err.Error()}}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	var data any
	if err := json.Unmarshal(raw, &data); err != nil || data == nil {
		data = map[string]any{}
	}

	return Result{
		OK:   resp.StatusCode >= 200 && resp.StatusCode < 300,
		Data: data,
	}
}

package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPushClient_NotConfigured(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer server.Close()

	for _, c := range []*PushClient{
		NewPushClient(server.URL, "", "key", server.Client()),
		NewPushClient(server.URL, "app", "", server.Client()),
	} {
		res := c.Push(context.Background(), "t", "m")
		if !res.OK || !res.Skipped || res.Reason != "OneSignal not configured" {
			t.Errorf("unexpected result: %+v", res)
		}
	}
	if called {
		t.Error("unconfigured client must not call the provider")
	}
}

func TestPushClient_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/v1/notifications" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Basic rest-key" {
			t.Errorf("Authorization = %q", got)
		}

		var body struct {
			AppID            string            `json:"app_id"`
			IncludedSegments []string          `json:"included_segments"`
			Headings         map[string]string `json:"headings"`
			Contents         map[string]string `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.AppID != "app-1" || len(body.IncludedSegments) != 1 || body.IncludedSegments[0] != "Subscribed Users" {
			t.Errorf("unexpected body: %+v", body)
		}
		if body.Headings["en"] != "Hello" || body.Contents["en"] != "World" {
			t.Errorf("unexpected headings/contents: %+v", body)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"id": "notif-1", "recipients": 3})
	}))
	defer server.Close()

	c := NewPushClient(server.URL, "app-1", "rest-key", server.Client())
	res := c.Push(context.Background(), "Hello", "World")
	if !res.OK || res.Skipped {
		t.Fatalf("unexpected result: %+v", res)
	}
	data, ok := res.Data.(map[string]any)
	if !ok || data["id"] != "notif-1" {
		t.Errorf("unexpected data: %#v", res.Data)
	}
}

func TestPushClient_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"errors": []string{"invalid app_id"}})
	}))
	defer server.Close()

	c := NewPushClient(server.URL, "app", "key", server.Client())
	res := c.Push(context.Background(), "t", "m")
	if res.OK {
		t.Fatal("expected non-OK result")
	}
	data, ok := res.Data.(map[string]any)
	if !ok || data["errors"] == nil {
		t.Errorf("provider body should be passed through, got %#v", res.Data)
	}
}

func TestPushClient_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	c := NewPushClient(server.URL, "app", "key", server.Client())
	res := c.Push(context.Background(), "t", "m")
	if res.OK {
		t.Fatal("expected non-OK result")
	}
	data, ok := res.Data.(map[string]any)
	if !ok || len(data) != 0 {
		t.Errorf("expected empty object, got %#v", res.Data)
	}
}

func TestPushClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewPushClient(url, "app", "key", http.DefaultClient)
	res := c.Push(context.Background(), "t", "m")
	if res.OK {
		t.Fatal("expected non-OK result on transport error")
	}
	data, ok := res.Data.(map[string]any)
	if !ok || data["error"] == nil {
		t.Errorf("expected error detail, got %#v", res.Data)
	}
}

func TestWhatsAppClient_NotConfigured(t *testing.T) {
	c := NewWhatsAppClient(DefaultWhatsAppURL, "", "123", http.DefaultClient)
	res := c.SendText(context.Background(), "+15550001", "hi")
	if !res.OK || !res.Skipped || res.Reason != "WhatsApp not configured" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestWhatsAppClient_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v19.0/phone-9/messages" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["messaging_product"] != "whatsapp" || body["to"] != "+15550001" || body["type"] != "text" {
			t.Errorf("unexpected body: %v", body)
		}
		text, _ := body["text"].(map[string]any)
		if text["body"] != "hello" {
			t.Errorf("unexpected text: %v", body["text"])
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"messages": []map[string]string{{"id": "wamid.1"}}})
	}))
	defer server.Close()

	c := NewWhatsAppClient(server.URL+"/v19.0/", "tok", "phone-9", server.Client())
	res := c.SendText(context.Background(), "+15550001", "hello")
	if !res.OK || res.Skipped {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestWhatsAppClient_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "bad token"}})
	}))
	defer server.Close()

	c := NewWhatsAppClient(server.URL, "tok", "phone", server.Client())
	res := c.SendText(context.Background(), "+1", "hi")
	if res.OK {
		t.Fatal("expected non-OK result")
	}
}

package notify

import "testing"

func TestMessageCodec(t *testing.T) {
	msg := Message{Title: "New transaction", Body: "sale +$1.00 • other"}

	body, err := encodeMessage(msg)
	if err != nil {
		t.Fatalf("encodeMessage() error: %v", err)
	}
	got, err := decodeMessage(body)
	if err != nil {
		t.Fatalf("decodeMessage() error: %v", err)
	}
	if got != msg {
		t.Errorf("got %+v, want %+v", got, msg)
	}
}

func TestDecodeMessage_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not_json", "hello"},
		{"empty_object", "{}"},
		{"wrong_shape", `{"title": 5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeMessage([]byte(tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

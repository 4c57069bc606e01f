package notify

import (
	"context"
	"sync"
	"testing"
)

type fakePusher struct {
	mu     sync.Mutex
	calls  []Message
	result Result
}

func (f *fakePusher) Push(_ context.Context, title, message string) Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Message{Title: title, Body: message})
	return f.result
}

type fakeTextSender struct {
	to     []string
	bodies []string
	result Result
}

func (f *fakeTextSender) SendText(_ context.Context, to, body string) Result {
	f.to = append(f.to, to)
	f.bodies = append(f.bodies, body)
	return f.result
}

func TestDeliverer(t *testing.T) {
	msg := Message{Title: "New transaction", Body: "sale +$10.00 • other"}

	t.Run("push_only_without_recipient", func(t *testing.T) {
		push := &fakePusher{result: Result{OK: true}}
		text := &fakeTextSender{result: Result{OK: true}}

		err := NewDeliverer(push, text, "").Deliver(context.Background(), msg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(push.calls) != 1 || push.calls[0] != msg {
			t.Errorf("unexpected push calls: %+v", push.calls)
		}
		if len(text.to) != 0 {
			t.Error("WhatsApp should not be attempted without a recipient")
		}
	})

	t.Run("push_and_whatsapp", func(t *testing.T) {
		push := &fakePusher{result: Result{OK: true}}
		text := &fakeTextSender{result: Result{OK: true}}

		if err := NewDeliverer(push, text, "+15550001").Deliver(context.Background(), msg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(text.to) != 1 || text.to[0] != "+15550001" {
			t.Errorf("unexpected recipients: %v", text.to)
		}
		if text.bodies[0] != "New transaction: sale +$10.00 • other" {
			t.Errorf("unexpected body: %q", text.bodies[0])
		}
	})

	t.Run("skipped_is_not_failure", func(t *testing.T) {
		push := &fakePusher{result: skipped("OneSignal not configured")}
		if err := NewDeliverer(push, nil, "+1").Deliver(context.Background(), msg); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("failures_reported_but_both_attempted", func(t *testing.T) {
		push := &fakePusher{result: Result{OK: false}}
		text := &fakeTextSender{result: Result{OK: false}}

		err := NewDeliverer(push, text, "+1").Deliver(context.Background(), msg)
		if err == nil {
			t.Fatal("expected error")
		}
		if len(push.calls) != 1 || len(text.to) != 1 {
			t.Error("each channel should be attempted exactly once")
		}
	})
}

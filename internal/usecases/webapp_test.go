package usecases

import (
	"strings"
	"testing"
	"time"

	"shoprelay/internal/entities"
)

const operatorID int64 = 99

func newTestWebAppHandler(messenger *fakeMessenger) (*WebAppDataHandler, *[]time.Duration) {
	notifier, _ := newTestNotifier(messenger)
	handler := NewWebAppDataHandler(notifier, operatorID, "https://example.com", testLogger())
	waits := &[]time.Duration{}
	handler.wait = func(d time.Duration) {
		*waits = append(*waits, d)
	}
	return handler, waits
}

func TestWebAppDataHandlerRelaysPayload(t *testing.T) {
	messenger := &fakeMessenger{}
	handler, waits := newTestWebAppHandler(messenger)

	handler.Handle(entities.Message{
		ChatID:     5,
		WebAppData: `{"email":"jo@example.com","number":"+4912345","name":"Jo"}`,
	})

	if len(messenger.sent) != 3 {
		t.Fatalf("expected ack, summary and follow-up, got %d sends", len(messenger.sent))
	}
	if messenger.sent[0].chatID != 5 {
		t.Fatalf("acknowledgment went to chat %d", messenger.sent[0].chatID)
	}
	summary := messenger.sent[1]
	if summary.chatID != operatorID {
		t.Fatalf("summary went to chat %d", summary.chatID)
	}
	for _, field := range []string{"Jo", "jo@example.com", "+4912345"} {
		if !strings.Contains(summary.text, field) {
			t.Fatalf("summary missing %q: %q", field, summary.text)
		}
	}
	followUp := messenger.sent[2]
	if followUp.chatID != 5 || !strings.Contains(followUp.text, "https://example.com") {
		t.Fatalf("unexpected follow-up: %+v", followUp)
	}
	if len(*waits) != 1 || (*waits)[0] != 3*time.Second {
		t.Fatalf("expected a single 3s delay before follow-up, got %v", *waits)
	}
}

func TestWebAppDataHandlerDropsMalformedPayload(t *testing.T) {
	messenger := &fakeMessenger{}
	handler, waits := newTestWebAppHandler(messenger)

	handler.Handle(entities.Message{ChatID: 5, WebAppData: `{"email":`})

	if messenger.calls != 0 {
		t.Fatalf("expected zero outbound sends, got %d", messenger.calls)
	}
	if len(*waits) != 0 {
		t.Fatalf("expected no follow-up delay, got %v", *waits)
	}
}

func TestWebAppDataHandlerStopsAfterAckExhaustsRetries(t *testing.T) {
	messenger := &fakeMessenger{failures: 3}
	handler, waits := newTestWebAppHandler(messenger)

	handler.Handle(entities.Message{ChatID: 5, WebAppData: `{"name":"Jo"}`})

	if messenger.calls != 3 {
		t.Fatalf("expected 3 ack attempts and nothing else, got %d calls", messenger.calls)
	}
	if len(messenger.sent) != 0 {
		t.Fatalf("expected no delivered messages, got %v", messenger.sent)
	}
	if len(*waits) != 0 {
		t.Fatalf("expected no follow-up delay, got %v", *waits)
	}
}

func TestWebAppDataHandlerRendersAbsentFieldsEmpty(t *testing.T) {
	messenger := &fakeMessenger{}
	handler, _ := newTestWebAppHandler(messenger)

	handler.Handle(entities.Message{ChatID: 5, WebAppData: `{"name":"Jo"}`})

	summary := messenger.sent[1]
	if !strings.Contains(summary.text, "Email: \n") {
		t.Fatalf("expected absent email rendered empty, got %q", summary.text)
	}
}

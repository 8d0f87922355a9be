package infrastructure

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestMessageFromUpdateSkipsNonMessageUpdates(t *testing.T) {
	if _, ok := MessageFromUpdate(tgbotapi.Update{}); ok {
		t.Fatal("expected non-message update to be skipped")
	}
}

func TestMessageFromUpdateLowercasesText(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: "/START",
			Chat: &tgbotapi.Chat{ID: 42},
		},
	}

	msg, ok := MessageFromUpdate(update)
	if !ok {
		t.Fatal("expected a message")
	}
	if msg.ChatID != 42 {
		t.Fatalf("unexpected chat id %d", msg.ChatID)
	}
	if msg.Text != "/start" {
		t.Fatalf("expected lowercased text, got %q", msg.Text)
	}
	if msg.WebAppData != "" {
		t.Fatalf("expected no payload, got %q", msg.WebAppData)
	}
}

func TestMessageFromUpdateCarriesWebAppPayload(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat:       &tgbotapi.Chat{ID: 42},
			WebAppData: &tgbotapi.WebAppData{Data: `{"name":"Jo"}`},
		},
	}

	msg, ok := MessageFromUpdate(update)
	if !ok {
		t.Fatal("expected a message")
	}
	if msg.WebAppData != `{"name":"Jo"}` {
		t.Fatalf("unexpected payload %q", msg.WebAppData)
	}
}

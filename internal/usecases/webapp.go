package usecases

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"shoprelay/internal/entities"
)

const followUpDelay = 3 * time.Second

// WebAppDataHandler relays form submissions pushed from the embedded
// web app: acknowledgment to the submitter, summary to the operator,
// then a delayed follow-up. Fields the app left out render as empty
// strings in the summary.
type WebAppDataHandler struct {
	notifier       *Notifier
	operatorChatID int64
	homepageURL    string
	logger         *slog.Logger

	wait func(time.Duration)
}

func NewWebAppDataHandler(notifier *Notifier, operatorChatID int64, homepageURL string, logger *slog.Logger) *WebAppDataHandler {
	return &WebAppDataHandler{
		notifier:       notifier,
		operatorChatID: operatorChatID,
		homepageURL:    homepageURL,
		logger:         logger,
		wait:           time.Sleep,
	}
}

// Handle processes one embedded payload. Every failure is contained
// here: the caller never sees an error.
func (h *WebAppDataHandler) Handle(msg entities.Message) {
	var payload entities.WebAppPayload
	if err := json.Unmarshal([]byte(msg.WebAppData), &payload); err != nil {
		h.logger.Error("web app payload parse failed", "chat_id", msg.ChatID, "error", err)
		return
	}

	if err := h.notifier.NotifyWithRetry(msg.ChatID, "Thank you for reaching out! We will get back to you shortly.", 3); err != nil {
		h.logger.Error("submitter acknowledgment failed", "chat_id", msg.ChatID, "error", err)
		return
	}

	summary := fmt.Sprintf("New request!\nName: %s\nEmail: %s\nPhone: %s", payload.Name, payload.Email, payload.Number)
	if err := h.notifier.NotifyWithRetry(h.operatorChatID, summary, 3); err != nil {
		h.logger.Error("operator summary failed", "chat_id", h.operatorChatID, "error", err)
		return
	}

	h.wait(followUpDelay)
	h.notifier.NotifyBestEffort(msg.ChatID,
		"All the information you need is on our website: "+h.homepageURL)
}

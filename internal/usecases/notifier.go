package usecases

import (
	"log/slog"
	"time"

	"shoprelay/internal/interfaces"
)

// Notifier carries the two delivery policies for outbound text messages.
// NotifyWithRetry and NotifyBestEffort are deliberately separate named
// operations so a call site cannot pick the wrong policy by flag.
type Notifier struct {
	messenger interfaces.Messenger
	logger    *slog.Logger

	// wait pauses the calling goroutine; replaced in tests.
	wait func(time.Duration)
}

func NewNotifier(messenger interfaces.Messenger, logger *slog.Logger) *Notifier {
	return &Notifier{
		messenger: messenger,
		logger:    logger,
		wait:      time.Sleep,
	}
}

// NotifyWithRetry attempts delivery up to maxAttempts times with a
// linear backoff of attempt×1s between tries. The last send error is
// returned once attempts are exhausted. maxAttempts below one is
// treated as one attempt.
func (n *Notifier) NotifyWithRetry(chatID int64, text string, maxAttempts int) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = n.messenger.SendMessage(chatID, text)
		if lastErr == nil {
			return nil
		}
		n.logger.Error("message send failed",
			"chat_id", chatID,
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"error", lastErr,
		)
		if attempt < maxAttempts {
			n.wait(time.Duration(attempt) * time.Second)
		}
	}
	return lastErr
}

// NotifyBestEffort sends once; failure is logged and suppressed.
func (n *Notifier) NotifyBestEffort(chatID int64, text string) {
	if err := n.messenger.SendMessage(chatID, text); err != nil {
		n.logger.Error("best-effort send failed", "chat_id", chatID, "error", err)
	}
}

package usecases

import (
	"log/slog"

	"shoprelay/internal/entities"
	"shoprelay/internal/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type command int

const (
	cmdUnknown command = iota
	cmdStart
	cmdForm
	cmdShop
)

// parseCommand matches the lowercased message text exactly; anything
// else, including empty text, is unknown.
func parseCommand(text string) command {
	switch text {
	case "/start":
		return cmdStart
	case "/form":
		return cmdForm
	case "/shop":
		return cmdShop
	default:
		return cmdUnknown
	}
}

// CommandResponder dispatches each inbound message to a canned reply
// and, independently of the text match, hands embedded web-app payloads
// to the data handler.
type CommandResponder struct {
	messenger interfaces.Messenger
	webApp    *WebAppDataHandler
	webAppURL string
	logger    *slog.Logger
}

func NewCommandResponder(messenger interfaces.Messenger, webApp *WebAppDataHandler, webAppURL string, logger *slog.Logger) *CommandResponder {
	return &CommandResponder{
		messenger: messenger,
		webApp:    webApp,
		webAppURL: webAppURL,
		logger:    logger,
	}
}

// HandleMessage processes one inbound message. All replies here are
// fire-and-forget: a send failure is logged, never surfaced to the
// sender.
func (r *CommandResponder) HandleMessage(msg entities.Message) {
	switch parseCommand(msg.Text) {
	case cmdStart:
		r.replyWithKeyboard(msg.ChatID,
			"Hello! Tap a button below to open the shop or leave a request.",
			StartKeyboard(r.webAppURL))
	case cmdForm:
		r.replyWithKeyboard(msg.ChatID,
			"Tap the button below to fill out the request form.",
			FormKeyboard(r.webAppURL))
	case cmdShop:
		r.replyWithKeyboard(msg.ChatID,
			"Tap the button below to open the shop.",
			ShopKeyboard(r.webAppURL))
	case cmdUnknown:
		r.reply(msg.ChatID, "Unknown command, try again.")
	}

	if msg.WebAppData != "" {
		r.webApp.Handle(msg)
	}
}

func (r *CommandResponder) reply(chatID int64, text string) {
	if err := r.messenger.SendMessage(chatID, text); err != nil {
		r.logger.Error("command reply failed", "chat_id", chatID, "error", err)
	}
}

func (r *CommandResponder) replyWithKeyboard(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) {
	if err := r.messenger.SendWithKeyboard(chatID, text, keyboard); err != nil {
		r.logger.Error("command reply failed", "chat_id", chatID, "error", err)
	}
}

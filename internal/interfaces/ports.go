package interfaces

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Messenger sends outbound chat messages. Implementations must be safe
// for use from concurrent handler goroutines.
type Messenger interface {
	SendMessage(chatID int64, text string) error
	SendWithKeyboard(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) error
}

// QueryAnswerer answers a pending web-app query with an article result.
// Each query may be answered at most once.
type QueryAnswerer interface {
	AnswerWebAppQuery(queryID string, article tgbotapi.InlineQueryResultArticle) error
}

package infrastructure

import (
	"fmt"
	"strings"

	"shoprelay/internal/entities"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramClient wraps the bot API with the two outbound primitives the
// service uses: plain/keyboard sends and web-app query answers.
type TelegramClient struct {
	Bot *tgbotapi.BotAPI
}

func NewTelegramClient(token string) (*TelegramClient, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramClient{Bot: bot}, nil
}

func (t *TelegramClient) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := t.Bot.Send(msg)
	return err
}

func (t *TelegramClient) SendWithKeyboard(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	_, err := t.Bot.Send(msg)
	return err
}

func (t *TelegramClient) AnswerWebAppQuery(queryID string, article tgbotapi.InlineQueryResultArticle) error {
	_, err := t.Bot.Request(tgbotapi.AnswerWebAppQueryConfig{
		WebAppQueryID: queryID,
		Result:        article,
	})
	return err
}

// Updates opens the long-poll subscription.
func (t *TelegramClient) Updates() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	return t.Bot.GetUpdatesChan(u)
}

// Stop closes the long-poll subscription; the Updates channel drains
// and closes afterwards.
func (t *TelegramClient) Stop() {
	t.Bot.StopReceivingUpdates()
}

// MessageFromUpdate converts a raw update into the transient inbound
// message the dispatcher consumes. Non-message updates are skipped.
func MessageFromUpdate(update tgbotapi.Update) (entities.Message, bool) {
	if update.Message == nil {
		return entities.Message{}, false
	}

	msg := entities.Message{
		ChatID: update.Message.Chat.ID,
		Text:   strings.ToLower(update.Message.Text),
	}
	if update.Message.WebAppData != nil {
		msg.WebAppData = update.Message.WebAppData.Data
	}
	return msg, true
}

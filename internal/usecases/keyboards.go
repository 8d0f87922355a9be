package usecases

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// StartKeyboard offers both web-app entry points. Unlike the other
// keyboards it carries no resize/one-time hints; the asymmetry is part
// of the existing contract and is kept on purpose.
func StartKeyboard(webAppURL string) tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		Keyboard: [][]tgbotapi.KeyboardButton{
			{
				{Text: "Open shop", WebApp: &tgbotapi.WebAppInfo{URL: webAppURL}},
				{Text: "Leave a request", WebApp: &tgbotapi.WebAppInfo{URL: webAppURL + "/form"}},
			},
		},
	}
}

// FormKeyboard opens the request form.
func FormKeyboard(webAppURL string) tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		Keyboard: [][]tgbotapi.KeyboardButton{
			{
				{Text: "Fill the form", WebApp: &tgbotapi.WebAppInfo{URL: webAppURL + "/form"}},
			},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}

// ShopKeyboard opens the storefront.
func ShopKeyboard(webAppURL string) tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		Keyboard: [][]tgbotapi.KeyboardButton{
			{
				{Text: "Open shop", WebApp: &tgbotapi.WebAppInfo{URL: webAppURL}},
			},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}

package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	updatesChannelURL = "https://t.me/WorkGlows"
	supportChatURL    = "https://t.me/TheCryptoElders"
)

// buildStartKeyboard builds the inline keyboard attached to the /start reply:
// links to the updates channel and support chat, plus a deep link that adds
// the bot to a group.
func buildStartKeyboard(botUsername string) tgbotapi.InlineKeyboardMarkup {
	addToGroupURL := fmt.Sprintf("https://t.me/%s?startgroup=true", botUsername)

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("Новости", updatesChannelURL),
			tgbotapi.NewInlineKeyboardButtonURL("Поддержка", supportChatURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("➕ Добавить в группу", addToGroupURL),
		),
	)
}

// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/workglows/quizdude/internal/domain/entities"
)

const (
	msgInternalError  = "Что-то пошло не так. Попробуйте позже."
	msgUnknownCommand = "Неизвестная команда. Нажмите /help, чтобы посмотреть список команд."
	msgNoPlayers      = "Пока никто не играл. Станьте первым — выберите категорию квиза!"
)

// Category command descriptions shown in /start and /help.
var categoryTitles = map[string]string{
	"xquiz":   "Пикантный квиз 🔥",
	"hquiz":   "Дерзкий квиз 😏",
	"fquiz":   "Флирт-квиз 💋",
	"lolquiz": "Смешной квиз 😂",
	"cquiz":   "Безумный квиз 🤪",
	"squiz":   "Учебный квиз 📚",
	"aquiz":   "Случайный микс 🎲",
}

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// buildWelcomeMessage builds the /start greeting.
func buildWelcomeMessage(firstName string, categories []string) string {
	var sb strings.Builder

	if firstName != "" {
		sb.WriteString(fmt.Sprintf("👋 Привет, %s!\n\n", html.EscapeString(firstName)))
	} else {
		sb.WriteString("👋 Привет!\n\n")
	}

	sb.WriteString("✨ Добро пожаловать в <b>Quizdude</b>! ✨\n\n")
	sb.WriteString("🎯 Категории:\n")
	for _, cmd := range categories {
		sb.WriteString(fmt.Sprintf(" • /%s — %s\n", cmd, categoryTitle(cmd)))
	}
	sb.WriteString("\n🏆 Отвечайте на вопросы и поднимайтесь в таблице лидеров!\n")
	sb.WriteString("👉 /help — список команд.")

	return sb.String()
}

// categoryTitle returns a human title for a category command, falling back to
// the command itself for categories added in the question file.
func categoryTitle(cmd string) string {
	if title, ok := categoryTitles[cmd]; ok {
		return title
	}
	return cmd
}

// buildHelpMessage builds the /help command reference.
func buildHelpMessage(categories []string) string {
	var sb strings.Builder

	sb.WriteString("<b>📚 Помощь</b>\n\n")
	sb.WriteString("Отвечайте на вопросы-опросы: верный ответ — победа, неверный — поражение.\n\n")
	sb.WriteString("Команды:\n")
	sb.WriteString(" • /" + strings.Join(categories, " /") + "\n")
	sb.WriteString(" • /statistics — таблица лидеров 🏆\n")
	sb.WriteString(" • /help — показать эту справку")

	return sb.String()
}

// buildLeaderboardMessage renders the top players with medal emoji.
func buildLeaderboardMessage(users []*entities.User) string {
	var sb strings.Builder
	sb.WriteString("<b>🏆 Таблица лидеров 🏆</b>\n\n")

	for i, u := range users {
		sb.WriteString(fmt.Sprintf(
			"%s %s — W: %d | L: %d\n",
			medal(i+1),
			html.EscapeString(u.DisplayName()),
			u.Wins,
			u.Losses,
		))
	}

	return sb.String()
}

// buildPersonalStats renders the requesting player's own record, appended after
// the leaderboard.
func buildPersonalStats(u *entities.User) string {
	return fmt.Sprintf("\nВаш счёт — W: %d | L: %d", u.Wins, u.Losses)
}

func medal(place int) string {
	switch place {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", place)
	}
}

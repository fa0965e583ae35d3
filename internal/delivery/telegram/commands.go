package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/workglows/quizdude/internal/service"
)

// handleStart greets the player and lists the category commands.
func (h *Handler) handleStart(firstName string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newHTMLMessage(chatID, buildWelcomeMessage(firstName, h.categories))
		msg.ReplyMarkup = buildStartKeyboard(h.bot.Self.UserName)
		h.send(msg)
		return nil
	}
}

// handleHelp shows the command reference.
func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.send(newHTMLMessage(chatID, buildHelpMessage(h.categories)))
		return nil
	}
}

// handleQuiz pulls the next question from the category's shuffle bag, sends it
// as a native quiz poll, and registers the returned poll ID so the matching
// answer event can be scored later.
func (h *Handler) handleQuiz(category string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		question, err := h.quizService.NextQuestion(category)
		if err != nil {
			if errors.Is(err, service.ErrUnknownCategory) {
				h.send(newHTMLMessage(chatID, msgUnknownCommand))
				return nil
			}
			return fmt.Errorf("next question: %w", err)
		}

		poll := tgbotapi.NewPoll(chatID, question.Prompt, question.Options...)
		poll.Type = "quiz"
		poll.CorrectOptionID = int64(question.CorrectIndex)
		poll.IsAnonymous = false
		poll.OpenPeriod = int(h.opts.PollOpenPeriod.Seconds())

		sent, err := h.bot.Send(poll)
		if err != nil {
			return fmt.Errorf("send poll: %w", err)
		}
		if sent.Poll == nil {
			return fmt.Errorf("send poll: response carries no poll")
		}

		// Registration happens before any answer event can reference this ID.
		err = h.quizService.RegisterPoll(ctx, sent.Poll.ID, category, question.CorrectIndex, chatID, sent.MessageID)
		if err != nil {
			return fmt.Errorf("register poll: %w", err)
		}

		h.logger.Debug("quiz poll dispatched",
			zap.String("poll_id", sent.Poll.ID),
			zap.String("category", category),
			zap.Int64("chat_id", chatID),
		)

		return nil
	}
}

// handleStatistics renders the leaderboard followed by the player's own score.
func (h *Handler) handleStatistics(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		users, err := h.userService.Leaderboard(ctx, h.opts.LeaderboardSize)
		if err != nil {
			return fmt.Errorf("load leaderboard: %w", err)
		}

		if len(users) == 0 {
			h.send(newHTMLMessage(chatID, msgNoPlayers))
			return nil
		}

		text := buildLeaderboardMessage(users)

		self, err := h.userService.Stats(ctx, userID)
		if err != nil {
			// The top list is still worth sending on its own.
			h.logger.Warn("failed to load personal stats",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		} else {
			text += buildPersonalStats(self)
		}

		h.send(newHTMLMessage(chatID, text))
		return nil
	}
}

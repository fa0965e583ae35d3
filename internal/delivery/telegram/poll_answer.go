package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/workglows/quizdude/internal/service"
)

// handlePollAnswer resolves an incoming answer event against the registered
// poll and updates the player's score. An answer for a poll the bot never
// registered (restart, expired entry, foreign poll) is logged and dropped:
// the user already answered from their point of view, so nothing is surfaced.
func (h *Handler) handlePollAnswer(ctx context.Context, answer *tgbotapi.PollAnswer) {
	if len(answer.OptionIDs) == 0 {
		// A retracted vote; nothing to score.
		return
	}

	user := answer.User
	if err := h.userService.EnsureUser(ctx, user.ID, user.UserName, user.FirstName); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		return
	}

	selected := answer.OptionIDs[0]
	result, err := h.quizService.ResolveAnswer(ctx, answer.PollID, selected)
	if err != nil {
		if errors.Is(err, service.ErrPollNotFound) {
			h.logger.Warn("answer for unknown poll dropped",
				zap.String("poll_id", answer.PollID),
				zap.Int64("user_id", user.ID),
			)
			return
		}
		h.logger.Error("failed to resolve poll answer",
			zap.String("poll_id", answer.PollID),
			zap.Error(err),
		)
		return
	}

	if err := h.userService.RecordAnswer(ctx, user.ID, result.Correct); err != nil {
		h.logger.Error("failed to record answer",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		return
	}

	h.logger.Debug("poll answer scored",
		zap.String("poll_id", answer.PollID),
		zap.String("category", result.Category),
		zap.Int64("user_id", user.ID),
		zap.Bool("correct", result.Correct),
	)
}

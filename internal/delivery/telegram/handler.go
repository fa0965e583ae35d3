package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/workglows/quizdude/internal/domain/entities"
	"github.com/workglows/quizdude/internal/service"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID int64, username, firstName string) error
	RecordAnswer(ctx context.Context, userID int64, won bool) error
	Stats(ctx context.Context, userID int64) (*entities.User, error)
	Leaderboard(ctx context.Context, limit int) ([]*entities.User, error)
}

type QuizService interface {
	NextQuestion(category string) (entities.Question, error)
	RegisterPoll(ctx context.Context, pollID, category string, correctIndex int, chatID int64, messageID int) error
	ResolveAnswer(ctx context.Context, pollID string, selectedIndex int) (service.AnswerResult, error)
}

// Options carries the handler tunables that come from configuration.
type Options struct {
	PollOpenPeriod  time.Duration
	LeaderboardSize int
	ThrottleWindow  time.Duration
}

type Handler struct {
	bot         *tgbotapi.BotAPI
	logger      *zap.Logger
	quizService QuizService
	userService UserService
	categories  []string
	throttle    *throttle
	opts        Options
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	userService UserService,
	categories []string,
	opts Options,
) *Handler {
	if opts.LeaderboardSize <= 0 {
		opts.LeaderboardSize = 10
	}

	return &Handler{
		bot:         bot,
		logger:      logger,
		quizService: quizService,
		userService: userService,
		categories:  categories,
		throttle:    newThrottle(opts.ThrottleWindow),
		opts:        opts,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic while handling update",
				zap.Int("update_id", update.UpdateID),
				zap.Any("panic", r),
			)
		}
	}()

	if update.PollAnswer != nil {
		h.handlePollAnswer(ctx, update.PollAnswer)
		return
	}

	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	from := update.Message.From
	if from == nil {
		return
	}

	h.logger.Debug("command received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.Int64("user_id", from.ID),
		zap.String("command", update.Message.Command()),
	)

	if !h.throttle.allow(from.ID) {
		return
	}

	if err := h.userService.EnsureUser(ctx, from.ID, from.UserName, from.FirstName); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	chatID := update.Message.Chat.ID
	command := update.Message.Command()

	switch command {
	case "start":
		_ = h.withErrorHandling(h.handleStart(from.FirstName))(ctx, chatID)

	case "help":
		_ = h.withErrorHandling(h.handleHelp())(ctx, chatID)

	case "statistics":
		_ = h.withErrorHandling(h.handleStatistics(from.ID))(ctx, chatID)

	default:
		if h.isCategory(command) {
			_ = h.withErrorHandling(h.handleQuiz(command))(ctx, chatID)
			return
		}
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) isCategory(command string) bool {
	for _, name := range h.categories {
		if name == command {
			return true
		}
	}
	return false
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/workglows/quizdude/internal/config"
	"github.com/workglows/quizdude/internal/delivery/telegram"
	"github.com/workglows/quizdude/internal/infra/postgres"
	"github.com/workglows/quizdude/internal/logger"
	"github.com/workglows/quizdude/internal/repository"
	"github.com/workglows/quizdude/internal/service"
	"github.com/workglows/quizdude/internal/storage"
)

func main() {
	// Local runs keep secrets in a .env file; in production the variables are
	// already in the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zlog.Fatal("failed to create bot api", zap.Error(err))
	}

	zlog.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Question lists are static data validated at startup.
	questionRepo, err := repository.NewQuestionRepository(cfg.QuestionsJSONPath)
	if err != nil {
		zlog.Fatal("failed to load questions", zap.Error(err))
	}
	zlog.Info("questions loaded", zap.Strings("categories", questionRepo.Names()))

	pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zlog.Fatal("failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := postgres.Bootstrap(ctx, pool); err != nil {
		zlog.Fatal("failed to bootstrap schema", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(pool)
	pollRepo := repository.NewPollRepository(pool)

	pollStore := storage.NewPollStore(cfg.PollRetention)
	pollStore.StartSweeper(cfg.PollRetention/2, ctx.Done())

	bank := service.NewQuestionBank(questionRepo.Categories())
	quizService := service.NewQuizService(bank, pollStore, pollRepo)
	userService := service.NewUserService(userRepo)

	// Prune durable poll rows past the retention window once a day.
	scheduler := cron.New()
	_, err = scheduler.AddFunc("@daily", func() {
		cutoff := time.Now().Add(-cfg.PollRowRetention)
		removed, err := pollRepo.DeleteOlderThan(context.Background(), cutoff)
		if err != nil {
			zlog.Error("failed to prune poll rows", zap.Error(err))
			return
		}
		zlog.Info("poll rows pruned", zap.Int64("removed", removed))
	})
	if err != nil {
		zlog.Fatal("failed to schedule poll pruning", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	registerCommands(bot, questionRepo.Names(), zlog)

	handler := telegram.NewHandler(
		bot,
		zlog,
		quizService,
		userService,
		questionRepo.Names(),
		telegram.Options{
			PollOpenPeriod:  cfg.PollOpenPeriod,
			LeaderboardSize: cfg.LeaderboardSize,
			ThrottleWindow:  cfg.ThrottleWindow,
		},
	)

	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zlog.Fatal("handler stopped", zap.Error(err))
	}

	zlog.Info("shutdown signal received")
}

func registerCommands(bot *tgbotapi.BotAPI, categories []string, zlog *zap.Logger) {
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Запустить бота"},
		{Command: "help", Description: "Помощь"},
		{Command: "statistics", Description: "Таблица лидеров"},
	}
	for _, name := range categories {
		commands = append(commands, tgbotapi.BotCommand{
			Command:     name,
			Description: "Вопрос из категории " + name,
		})
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zlog.Warn("failed to set bot commands", zap.Error(err))
	}
}

package main

import (
	"context"
	"fmt"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/chat"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/discord"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	mainLogger := logger.Component("main")

	cfg, err := config.Load()
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not load application configuration")
	}
	logger.Init(cfg)

	mainLogger.WithFields(logrus.Fields{
		"backend":        cfg.ChatBackend,
		"environment":    cfg.Environment,
		"retry_interval": cfg.RetryInterval.String(),
	}).Info("Configuration loaded.")

	chatClient, err := newChatClient(cfg)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create chat client")
	}
	mainLogger.Info("Chat client initialized.")

	apiClient, err := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout, logger.Component("practicum"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create API client")
	}

	notifier := app.NewNotifier(chatClient, cfg.ChatID, logger.Component("notifier"))
	sleeper := scheduler.NewSleeper(cfg.RetryInterval, logger.Component("scheduler"))
	poller := app.NewPoller(apiClient, notifier, sleeper, cfg, logger.Component("poller"))

	mainLogger.Info("Application setup complete. Polling is starting...")
	poller.Run(context.Background())
}

func newChatClient(cfg *config.AppConfig) (chat.Client, error) {
	if cfg.ChatBackend == config.BackendDiscord {
		client, err := discord.NewClient(cfg.BotToken)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	bot, err := telegram.NewBot(cfg.BotToken, "")
	if err != nil {
		return nil, err
	}
	return telegram.NewTelebotAdapter(bot), nil
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	mainLogger := log.New(os.Stdout, "MAIN: ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	appLogger := logger.Get()

	// Validate credentials before building anything that needs them.
	// CheckTokens logs the missing names itself; abort with a
	// distinguishable error.
	if !cfg.CheckTokens(appLogger) {
		mainLogger.Fatalf("FATAL: %v. Bot launch stopped.", config.ErrMissingVariables)
	}

	chatID, err := strconv.ParseInt(cfg.TelegramChatID, 10, 64)
	if err != nil {
		mainLogger.Fatalf("FATAL: Invalid %s: %v", config.EnvTelegramChatID, err)
	}

	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			appLogger.Errorf("telebot: %v", err)
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}

	tgClient := telegram.NewTelebotAdapter(bot)
	notifier := app.NewNotifier(tgClient, chatID, appLogger)
	apiClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken)
	poller := app.NewPoller(apiClient, notifier, cfg.PollInterval, appLogger)

	heartbeat := scheduler.NewHeartbeatScheduler(poller, tgClient, chatID, appLogger, cfg.HeartbeatCronSpec)
	heartbeat.Start()

	telegram.RegisterBotHandlers(bot, poller, chatID, appLogger.WithField("component", "telegram"))
	go bot.Start()

	mainLogger.Printf("INFO: Application setup complete. Polling every %s.", cfg.PollInterval)

	// Runs forever; only startup validation above can abort the process.
	if err := poller.Run(context.Background()); err != nil {
		mainLogger.Fatalf("FATAL: Poll loop terminated: %v", err)
	}
}

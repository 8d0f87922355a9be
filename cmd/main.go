package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shoprelay/internal/config"
	"shoprelay/internal/infrastructure"
	"shoprelay/internal/interfaces/http"
	"shoprelay/internal/logging"
	"shoprelay/internal/usecases"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shoprelay: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env file; the environment itself is validated below.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}

	telegramClient, err := infrastructure.NewTelegramClient(cfg.BotToken)
	if err != nil {
		return err
	}
	logger.Info("telegram bot connected", "username", telegramClient.Bot.Self.UserName)

	notifier := usecases.NewNotifier(telegramClient, logger)
	webAppHandler := usecases.NewWebAppDataHandler(notifier, cfg.OperatorChatID, cfg.HomepageURL, logger)
	responder := usecases.NewCommandResponder(telegramClient, webAppHandler, cfg.WebAppURL, logger)

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	http.SetupRoutes(r, cfg, telegramClient, logger)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
		logger.Info("http server listening", "addr", addr)
		if err := r.Run(addr); err != nil {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Stop the long-poll subscription on SIGINT/SIGTERM; the update
	// channel closes and the loop below drains out.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("shutting down", "signal", sig.String())
		telegramClient.Stop()
	}()

	for update := range telegramClient.Updates() {
		msg, ok := infrastructure.MessageFromUpdate(update)
		if !ok {
			continue
		}
		go responder.HandleMessage(msg)
	}

	return nil
}

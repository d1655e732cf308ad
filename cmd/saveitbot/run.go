package main

import (
	"context"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"

	"github.com/kontinentkm/SaveItBot/internal/handlers"
	"github.com/kontinentkm/SaveItBot/pkg/logger"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the bot with long polling",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
			if err != nil {
				return err
			}
			logger.Info("bot connected", "username", bot.Self.UserName, "id", bot.Self.ID)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			h := handlers.New(bot, cfg)

			u := tgbotapi.NewUpdate(0)
			u.Timeout = 30
			updates := bot.GetUpdatesChan(u)

			logger.Info("polling started")
			for {
				select {
				case <-ctx.Done():
					logger.Info("shutting down")
					bot.StopReceivingUpdates()
					return nil
				case update, ok := <-updates:
					if !ok {
						return nil
					}
					// Downloads are slow; handle every update on its own
					// goroutine so other chats stay responsive.
					go h.HandleUpdate(ctx, update)
				}
			}
		},
	}
}

package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kontinentkm/SaveItBot/internal/webhook"
	"github.com/kontinentkm/SaveItBot/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func webhookCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Serve Telegram updates over a webhook endpoint",
		Long: "Starts a stateless HTTP server that accepts one Telegram update per POST. " +
			"Register the public URL with Telegram's setWebhook method. " +
			"Runs without BOT_TOKEN but answers 500 until one is configured.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.WebhookAddr = addr
			}
			if cfg.BotToken == "" {
				logger.Warn("BOT_TOKEN is not set, webhook will answer 500")
			}

			srv, err := webhook.New(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				logger.Info("webhook server shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from WEBHOOK_ADDR or :8080)")
	return cmd
}

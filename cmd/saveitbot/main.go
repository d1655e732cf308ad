package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kontinentkm/SaveItBot/config"
	"github.com/kontinentkm/SaveItBot/pkg/logger"
)

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:     "saveitbot",
		Short:   "SaveItBot: Telegram bot that saves Instagram media into the chat",
		Long:    "SaveItBot extracts Instagram links from chat messages, downloads the photos and videos behind them with yt-dlp and posts them back as Telegram albums.",
		Version: version,
	}

	root.AddCommand(runCmd())
	root.AddCommand(webhookCmd())
	root.AddCommand(doctorCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.LogLevel)
	return cfg, nil
}

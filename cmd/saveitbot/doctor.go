package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kontinentkm/SaveItBot/config"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the environment can run the bot",
		Long:  "Verifies yt-dlp availability, bot token, cookies file and temp directory. Reports pass/warn/fail for each check.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			fmt.Printf("SaveItBot Doctor v%s\n\n", version)

			passed, warned, failed := 0, 0, 0

			if path, err := exec.LookPath("yt-dlp"); err != nil {
				printFail("yt-dlp", "not found on PATH")
				failed++
			} else {
				printPass("yt-dlp", path)
				passed++
			}

			if cfg.BotToken == "" {
				printFail("Bot token", "BOT_TOKEN is not set")
				failed++
			} else {
				printPass("Bot token", "set")
				passed++
			}

			switch {
			case cfg.CookiesFile != "":
				printPass("Cookies file", cfg.CookiesFile)
				passed++
			case os.Getenv("IG_COOKIES_FILE") != "":
				printWarn("Cookies file", "IG_COOKIES_FILE points to a missing file; running without auth")
				warned++
			default:
				printWarn("Cookies file", "not configured; private content will fail")
				warned++
			}

			if dir, err := os.MkdirTemp("", "saveit-doctor-"); err != nil {
				printFail("Temp directory", fmt.Sprintf("%s not writable: %v", os.TempDir(), err))
				failed++
			} else {
				os.RemoveAll(dir)
				printPass("Temp directory", filepath.Dir(dir))
				passed++
			}

			printPass("Download timeout", cfg.DownloadTimeout.String())
			passed++

			fmt.Printf("\n%d passed, %d warnings, %d failed\n", passed, warned, failed)
			return nil
		},
	}
}

func printPass(name, detail string) {
	fmt.Printf("  ✅ %-18s %s\n", name, detail)
}

func printWarn(name, detail string) {
	fmt.Printf("  ⚠️  %-18s %s\n", name, detail)
}

func printFail(name, detail string) {
	fmt.Printf("  ❌ %-18s %s\n", name, detail)
}

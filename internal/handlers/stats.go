package handlers

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kontinentkm/SaveItBot/internal/stats"
	"github.com/kontinentkm/SaveItBot/pkg/logger"
)

func (h *Handler) handleStats(msg *tgbotapi.Message) {
	if h.cfg.OwnerID == 0 || userID(msg) != h.cfg.OwnerID {
		h.send(msg.Chat.ID, msgOwnerOnly)
		return
	}

	status, _ := h.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "Gathering system information…"))

	sysInfo, err := stats.GetSystemInfo()
	if err != nil {
		logger.Error("failed to get system info", "error", err)
		h.send(msg.Chat.ID, "Failed to gather system information.")
		return
	}

	downloads, files, bytes, success, failed, users, last := stats.GetStats().Snapshot()

	lastStr := "never"
	if !last.IsZero() {
		lastStr = humanize.Time(last)
	}

	text := fmt.Sprintf(
		"System\n"+
			"├ OS: %s (%s)\n"+
			"├ Uptime: %s\n"+
			"├ CPU: %d cores, %.1f%%\n"+
			"├ Memory: %s / %s (%.1f%%)\n"+
			"└ Disk: %s / %s (%.1f%%)\n\n"+
			"Bot process\n"+
			"├ PID: %d\n"+
			"├ Uptime: %s\n"+
			"├ Memory: %s\n"+
			"├ Goroutines: %d\n"+
			"└ %s\n\n"+
			"Downloads\n"+
			"├ Total: %d (%d ok, %d failed)\n"+
			"├ Files: %d (%s)\n"+
			"├ Users: %d\n"+
			"└ Last: %s",
		sysInfo.OS, sysInfo.Hostname,
		sysInfo.SystemUptime.Round(time.Second),
		sysInfo.CPUCores, sysInfo.CPUUsage,
		humanize.Bytes(sysInfo.MemUsed), humanize.Bytes(sysInfo.MemTotal), sysInfo.MemPercent,
		humanize.Bytes(sysInfo.DiskUsed), humanize.Bytes(sysInfo.DiskTotal), sysInfo.DiskPercent,
		sysInfo.ProcessPID,
		sysInfo.ProcessUptime.Round(time.Second),
		humanize.Bytes(sysInfo.ProcessMem),
		sysInfo.Goroutines,
		sysInfo.GoVersion,
		downloads, success, failed,
		files, humanize.Bytes(uint64(bytes)),
		users,
		lastStr,
	)

	if status.MessageID != 0 {
		editText(h.api, msg.Chat.ID, status.MessageID, text)
	} else {
		h.send(msg.Chat.ID, text)
	}
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kontinentkm/SaveItBot/config"
	"github.com/kontinentkm/SaveItBot/internal/downloader"
	"github.com/kontinentkm/SaveItBot/internal/instagram"
	"github.com/kontinentkm/SaveItBot/internal/stats"
	"github.com/kontinentkm/SaveItBot/pkg/logger"
)

// FetchFunc matches downloader.Download; injected so tests don't shell out
// to yt-dlp.
type FetchFunc func(ctx context.Context, url string, opts downloader.Options) (*downloader.Result, error)

type Handler struct {
	api   API
	cfg   *config.Config
	fetch FetchFunc
}

func New(api API, cfg *config.Config) *Handler {
	return &Handler{api: api, cfg: cfg, fetch: downloader.Download}
}

// NewWithFetch is the test constructor.
func NewWithFetch(api API, cfg *config.Config, fetch FetchFunc) *Handler {
	return &Handler{api: api, cfg: cfg, fetch: fetch}
}

// HandleUpdate is the entry point of the long-polling loop. The caller runs
// it on its own goroutine, so a slow download never blocks other chats.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		msg = update.EditedMessage
	}
	if msg == nil || msg.Chat == nil {
		return
	}

	if msg.IsCommand() {
		h.handleCommand(msg)
		return
	}

	h.handleLink(ctx, msg.Chat.ID, userID(msg), messageText(msg))
}

func (h *Handler) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.send(msg.Chat.ID, msgGreeting)
	case "help":
		h.send(msg.Chat.ID, msgHelp)
	case "stats":
		h.handleStats(msg)
	default:
		h.send(msg.Chat.ID, msgHelp)
	}
}

// handleLink is the interactive pipeline: status message, fetch, album
// delivery, cleanup. The status message is edited along the way and deleted
// once everything is out.
func (h *Handler) handleLink(ctx context.Context, chatID, fromID int64, text string) {
	url, ok := instagram.ExtractURL(text)
	if !ok {
		h.send(chatID, msgPrompt)
		return
	}

	status, err := h.api.Send(tgbotapi.NewMessage(chatID, msgDownloading))
	if err != nil {
		logger.Error("failed to send status message", "error", err)
		return
	}

	start := time.Now()
	res, err := h.fetch(ctx, url, downloader.Options{
		CookiesFile: h.cfg.CookiesFile,
		Timeout:     h.cfg.DownloadTimeout,
	})
	if err != nil {
		logger.Error("download failed", "url", url, "error", err)
		stats.GetStats().RecordDownload(fromID, 0, 0, false)
		editText(h.api, chatID, status.MessageID, failureNotice(err))
		return
	}
	defer res.Cleanup()

	size := res.TotalSize()
	if len(res.Files) > 0 {
		editText(h.api, chatID, status.MessageID,
			fmt.Sprintf(msgFound, len(res.Files), humanize.Bytes(uint64(size))))
	}

	deliveryErr := SendAlbums(h.api, chatID, res.Files)
	if deliveryErr != nil {
		// Transport failures are logged, never retried.
		logger.Error("delivery failed", "url", url, "error", deliveryErr)
	}

	deleteMessage(h.api, chatID, status.MessageID)
	stats.GetStats().RecordDownload(fromID, len(res.Files), size, deliveryErr == nil)
	logger.InfoWithDuration("link handled", start, "url", url, "files", len(res.Files))
}

// HandleStateless is the webhook pipeline. The webhook cannot reliably edit
// earlier messages, so progress goes out as plain texts.
func (h *Handler) HandleStateless(ctx context.Context, chatID, fromID int64, text string) {
	url, ok := instagram.ExtractURL(text)
	if !ok {
		h.send(chatID, msgPrompt)
		return
	}

	h.send(chatID, msgDownloading)

	res, err := h.fetch(ctx, url, downloader.Options{
		CookiesFile: h.cfg.CookiesFile,
		Timeout:     h.cfg.DownloadTimeout,
	})
	if err != nil {
		logger.Error("download failed", "url", url, "error", err)
		stats.GetStats().RecordDownload(fromID, 0, 0, false)
		h.send(chatID, failureNotice(err))
		return
	}
	defer res.Cleanup()

	size := res.TotalSize()
	if len(res.Files) > 0 {
		h.send(chatID, fmt.Sprintf(msgFound, len(res.Files), humanize.Bytes(uint64(size))))
	}

	deliveryErr := SendAlbums(h.api, chatID, res.Files)
	if deliveryErr != nil {
		logger.Error("delivery failed", "url", url, "error", deliveryErr)
	}
	stats.GetStats().RecordDownload(fromID, len(res.Files), size, deliveryErr == nil)
}

func (h *Handler) send(chatID int64, text string) {
	if err := sendText(h.api, chatID, text); err != nil {
		logger.Error("failed to send message", "error", err)
	}
}

// failureNotice maps a download error to the generic user-facing text. Only
// the category name crosses into the chat.
func failureNotice(err error) string {
	category := "download_failed"
	var dlErr *downloader.Error
	if errors.As(err, &dlErr) {
		category = string(dlErr.Category)
	}
	return fmt.Sprintf(msgFailed, category)
}

func messageText(msg *tgbotapi.Message) string {
	if msg.Text != "" {
		return msg.Text
	}
	return msg.Caption
}

func userID(msg *tgbotapi.Message) int64 {
	if msg.From == nil {
		return 0
	}
	return msg.From.ID
}

package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kontinentkm/SaveItBot/internal/media"
	"github.com/kontinentkm/SaveItBot/pkg/logger"
)

// API is the slice of *tgbotapi.BotAPI the handlers actually use. Tests
// substitute a recorder.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	SendMediaGroup(cfg tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// SendAlbums delivers the downloaded files to the chat as albums of at most
// media.AlbumLimit items, sequentially and in filename order. A batch with a
// single item goes out as a plain photo/video message since Telegram rejects
// one-item media groups. When the carousel spills over the album limit, every
// batch is preceded by a "Part K/T" text.
func SendAlbums(api API, chatID int64, files []media.File) error {
	if len(files) == 0 {
		return sendText(api, chatID, msgNoMedia)
	}

	total := len(files)
	parts := (total + media.AlbumLimit - 1) / media.AlbumLimit

	for i, batch := range media.Chunk(files, media.AlbumLimit) {
		if total > media.AlbumLimit {
			if err := sendText(api, chatID, fmt.Sprintf(msgPart, i+1, parts)); err != nil {
				return err
			}
		}

		if len(batch) == 1 {
			if err := sendSingle(api, chatID, batch[0]); err != nil {
				return err
			}
			continue
		}

		group := make([]interface{}, 0, len(batch))
		for _, f := range batch {
			switch f.Kind {
			case media.KindVideo:
				group = append(group, tgbotapi.NewInputMediaVideo(tgbotapi.FilePath(f.Path)))
			default:
				group = append(group, tgbotapi.NewInputMediaPhoto(tgbotapi.FilePath(f.Path)))
			}
		}

		if _, err := api.SendMediaGroup(tgbotapi.NewMediaGroup(chatID, group)); err != nil {
			return fmt.Errorf("send media group (batch %d/%d): %w", i+1, parts, err)
		}
	}
	return nil
}

func sendSingle(api API, chatID int64, f media.File) error {
	var msg tgbotapi.Chattable
	switch f.Kind {
	case media.KindVideo:
		video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(f.Path))
		video.SupportsStreaming = true
		msg = video
	default:
		msg = tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(f.Path))
	}
	if _, err := api.Send(msg); err != nil {
		return fmt.Errorf("send single %s: %w", f.Kind, err)
	}
	return nil
}

func sendText(api API, chatID int64, text string) error {
	if _, err := api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send text: %w", err)
	}
	return nil
}

func editText(api API, chatID int64, msgID int, text string) {
	if _, err := api.Send(tgbotapi.NewEditMessageText(chatID, msgID, text)); err != nil {
		logger.Warn("failed to edit status message", "error", err)
	}
}

func deleteMessage(api API, chatID int64, msgID int) {
	if _, err := api.Request(tgbotapi.NewDeleteMessage(chatID, msgID)); err != nil {
		logger.Warn("failed to delete status message", "error", err)
	}
}

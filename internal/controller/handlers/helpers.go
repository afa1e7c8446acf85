package handlers

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// sendMessage отправляет сообщение и логирует если не удалось
func (h *Handlers) sendMessage(ctx context.Context, chatID int64, text string) {
	h.sendWithMarkup(ctx, chatID, text, nil)
}

// sendError отправляет сообщение об ошибке пользователю
func (h *Handlers) sendError(ctx context.Context, chatID int64, text string) {
	h.sendWithMarkup(ctx, chatID, text, nil)
}

// sendWithMarkup отправляет сообщение с inline клавиатурой
func (h *Handlers) sendWithMarkup(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) {
	_, err := h.tg.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// photoSourceURL возвращает ссылку транспорта на самый крупный
// вариант присланного фото
func (h *Handlers) photoSourceURL(ctx context.Context, photos []models.PhotoSize) (string, error) {
	if len(photos) == 0 {
		return "", errors.New("message has no photo sizes")
	}

	// Телеграм сортирует варианты по размеру, последний — самый крупный
	largest := photos[len(photos)-1]
	file, err := h.tg.GetFile(ctx, &bot.GetFileParams{FileID: largest.FileID})
	if err != nil {
		return "", err
	}
	return h.tg.FileDownloadLink(file), nil
}

// answerCallback закрывает «часики» на нажатой кнопке
func (h *Handlers) answerCallback(ctx context.Context, callbackID string) {
	_, err := h.tg.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	})
	if err != nil {
		h.logger.Warn("Failed to answer callback", zap.Error(err))
	}
}

package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleUpdate — точка входа для всех событий, не перехваченных
// командными handlers: нажатия кнопок, фото и обычный текст.
func (h *Handlers) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	switch {
	case update.CallbackQuery != nil:
		h.HandleCallbackQuery(ctx, b, update)
	case update.Message == nil:
		return
	case len(update.Message.Photo) > 0:
		h.HandlePhotoMessage(ctx, b, update)
	case update.Message.Text != "":
		h.HandleTextMessage(ctx, b, update)
	}
}

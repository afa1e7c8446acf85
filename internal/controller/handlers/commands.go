package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/controller/state"
)

// HandleStart обрабатывает команду /start.
// Администратор в диалог регистрации не попадает никогда —
// ему сразу показывается панель без создания сессии.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := update.Message.From
	chatID := update.Message.Chat.ID

	if user.ID == h.adminID {
		h.sendWithMarkup(ctx, chatID, "👑 Панель администратора", AdminKeyboard())
		return
	}

	// Повторный /start сбрасывает незавершённый диалог
	h.sessions.Begin(user.ID, state.StepName)

	h.logger.Info("Registration started",
		zap.Int64("telegram_id", user.ID))

	h.sendMessage(ctx, chatID, "Добро пожаловать! Давайте зарегистрируем вас.\nВведите ваше имя:")
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if h.sessions.Step(telegramID) == state.StepNone {
		h.sendMessage(ctx, chatID, "❌ Нет активных операций для отмены.")
		return
	}

	h.sessions.Clear(telegramID)
	h.sendMessage(ctx, chatID, "✅ Операция отменена.\n\nНачать регистрацию заново: /start")
}

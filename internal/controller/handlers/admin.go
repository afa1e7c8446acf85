package handlers

import (
	"context"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/service"
)

// handleAdminReply обрабатывает ответ администратора на пересланное
// сообщение о платеже или регистрации. Текст ответа — целая сумма,
// процитированное сообщение содержит строку "ID: <id>". Любой другой
// ответ молча игнорируется: администратор переписывается в том же чате
// и не должен получать ошибки на обычные сообщения.
func (h *Handlers) handleAdminReply(ctx context.Context, update *models.Update) {
	reply := update.Message.ReplyToMessage

	// У сообщений с фото токен лежит в подписи, а не в тексте
	quoted := reply.Text
	if quoted == "" {
		quoted = reply.Caption
	}

	req, err := service.ParseAdminReply(update.Message.Text, quoted)
	if err != nil {
		h.logger.Info("Admin reply ignored",
			zap.String("text", update.Message.Text),
			zap.Error(err))
		return
	}

	newBalance, err := h.payments.Reconcile(ctx, req, ProfileKeyboard())
	if err != nil {
		h.logger.Error("Failed to reconcile payment",
			zap.Int64("user_id", req.UserID),
			zap.Int("amount", req.Amount),
			zap.Error(err))
		return
	}

	h.logger.Info("Payment reconciled",
		zap.Int64("user_id", req.UserID),
		zap.Int("amount", req.Amount),
		zap.Int("balance", newBalance))

	h.sendMessage(ctx, update.Message.Chat.ID, "💰 Баланс успешно обновлен!")
}

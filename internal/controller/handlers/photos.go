package handlers

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/controller/state"
	"github.com/provkin/tgbot/internal/model"
	"github.com/provkin/tgbot/internal/repository"
)

// HandlePhotoMessage маршрутизирует присланное фото: на шаге регистрации
// это фото студента, вне диалога или после кнопки «Оплата» — скриншот
// платежа. Фото посреди текстовых шагов игнорируется.
func (h *Handlers) HandlePhotoMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || len(update.Message.Photo) == 0 {
		return
	}

	telegramID := update.Message.From.ID
	if telegramID == h.adminID {
		return
	}

	switch h.sessions.Step(telegramID) {
	case state.StepPhoto:
		h.handleRegistrationPhoto(ctx, update)
	case state.StepPaymentProof, state.StepNone:
		h.handlePaymentProof(ctx, update)
	}
}

// handleRegistrationPhoto сохраняет фото студента и переводит диалог
// к выбору курса. При любом сбое шаг не меняется: пользователь может
// прислать фото ещё раз.
func (h *Handlers) handleRegistrationPhoto(ctx context.Context, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	sess, ok := h.sessions.Get(telegramID)
	if !ok {
		return
	}

	sourceURL, err := h.photoSourceURL(ctx, update.Message.Photo)
	if err != nil {
		h.logger.Error("Failed to resolve photo file",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.sendError(ctx, chatID, "❌ Не удалось обработать фото. Попробуйте ещё раз.")
		return
	}

	link, err := h.registration.AttachPhoto(ctx, sourceURL, sess.Name, sess.Surname)
	if err != nil {
		h.logger.Error("Failed to store registration photo",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.sendError(ctx, chatID, "❌ Не удалось сохранить фото. Попробуйте ещё раз.")
		return
	}

	h.sessions.Update(telegramID, func(s *state.Session) {
		s.PhotoURL = link
		s.Step = state.StepCourse
	})

	h.sendWithMarkup(ctx, chatID, "Выберите курс:", courseKeyboard(h.registration.Catalog()))
}

// handlePaymentProof принимает скриншот оплаты. Контекст студента берётся
// из сессии, а когда её нет — из таблицы по ключу сверки.
func (h *Handlers) handlePaymentProof(ctx context.Context, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	student, err := h.paymentContext(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			h.sendError(ctx, chatID, "❌ Вы ещё не зарегистрированы. Используйте /start.")
			return
		}
		h.logger.Error("Failed to resolve payment context",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.sendError(ctx, chatID, "❌ Ошибка обработки платежа")
		return
	}

	sourceURL, err := h.photoSourceURL(ctx, update.Message.Photo)
	if err == nil {
		err = h.payments.SubmitProof(ctx, *student, sourceURL)
	}
	if err != nil {
		h.logger.Error("Failed to submit payment proof",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.sendError(ctx, chatID, "❌ Ошибка обработки платежа")
		return
	}

	h.sessions.Clear(telegramID)
	h.sendWithMarkup(ctx, chatID, "✅ Платеж отправлен на проверку!", ProfileKeyboard())
}

// paymentContext собирает данные студента для сообщения администратору
func (h *Handlers) paymentContext(ctx context.Context, telegramID int64) (*model.Student, error) {
	if sess, ok := h.sessions.Get(telegramID); ok && sess.Name != "" {
		return &model.Student{
			Name:    sess.Name,
			Surname: sess.Surname,
			Course:  sess.Course,
			Balance: sess.Balance,
			UserID:  telegramID,
		}, nil
	}
	return h.payments.ResolveStudent(ctx, telegramID)
}

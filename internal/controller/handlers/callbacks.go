package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/controller/state"
	"github.com/provkin/tgbot/internal/model"
)

// HandleCallbackQuery обрабатывает нажатия inline кнопок
func (h *Handlers) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	query := update.CallbackQuery
	h.answerCallback(ctx, query.ID)

	telegramID := query.From.ID
	data := query.Data

	if course, ok := strings.CutPrefix(data, cbCoursePrefix); ok {
		h.handleCourseSelected(ctx, telegramID, course)
		return
	}

	switch data {
	case cbPayment:
		h.sessions.SetStep(telegramID, state.StepPaymentProof)
		h.sendMessage(ctx, telegramID, "Отправьте скриншот оплаты:")
	case cbEvents:
		h.showEvents(ctx, telegramID)
	case cbTeachers:
		h.sendMessage(ctx, telegramID,
			"👩🏫 О педагогах школы расскажет администратор.\nНапишите ему в ответ на любое сообщение школы.")
	case cbChangeCourse:
		h.sendMessage(ctx, telegramID,
			"🎓 Для перехода на другой курс свяжитесь с администратором школы.")
	case cbCreateEvent:
		if telegramID != h.adminID {
			return
		}
		h.sessions.Begin(telegramID, state.StepEventName)
		h.sendMessage(ctx, telegramID, "Введите название события:")
	case cbListEvents:
		if telegramID != h.adminID {
			return
		}
		h.showEvents(ctx, telegramID)
	default:
		h.logger.Warn("Unknown callback", zap.String("data", data))
	}
}

// handleCourseSelected завершает регистрацию выбранным курсом.
// Кнопки строятся из каталога, поэтому неизвестный курс сюда не попадает.
func (h *Handlers) handleCourseSelected(ctx context.Context, telegramID int64, course string) {
	sess, ok := h.sessions.Get(telegramID)
	if !ok || sess.Step != state.StepCourse {
		return
	}

	reg := model.Registration{
		Name:     sess.Name,
		Surname:  sess.Surname,
		Phone:    sess.Phone,
		Source:   sess.Source,
		PhotoURL: sess.PhotoURL,
		UserID:   telegramID,
	}

	if _, err := h.registration.Finalize(ctx, reg, course); err != nil {
		h.logger.Error("Failed to finalize registration",
			zap.Int64("telegram_id", telegramID),
			zap.String("course", course),
			zap.Error(err))
		// Сессия остаётся на выборе курса, кнопку можно нажать ещё раз
		h.sendError(ctx, telegramID, "❌ Произошла ошибка при регистрации. Попробуйте позже.")
		return
	}

	h.sessions.Clear(telegramID)
	h.sendWithMarkup(ctx, telegramID, "Регистрация завершена! 🎉", ProfileKeyboard())
}

package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/controller/state"
)

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от
// шага диалога отправителя. Ответы администратора на пересланные
// платежи уходят в протокол сверки, его собственный диалог — в
// создание события.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются отдельными handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID

	if telegramID == h.adminID {
		h.handleAdminText(ctx, update)
		return
	}

	step := h.sessions.Step(telegramID)
	if step == state.StepNone {
		return
	}

	switch step {
	case state.StepName:
		h.handleNameStep(ctx, update)
	case state.StepSurname:
		h.handleSurnameStep(ctx, update)
	case state.StepPhone:
		h.handlePhoneStep(ctx, update)
	case state.StepSource:
		h.handleSourceStep(ctx, update)
	case state.StepPhoto, state.StepCourse, state.StepPaymentProof:
		// Эти шаги ждут не текст; сообщение игнорируется
	default:
		h.logger.Warn("Unknown step", zap.String("step", string(step)))
	}
}

// Текстовые шаги регистрации сохраняют ввод дословно, без валидации.

func (h *Handlers) handleNameStep(ctx context.Context, update *models.Update) {
	telegramID := update.Message.From.ID
	text := update.Message.Text

	h.sessions.Update(telegramID, func(s *state.Session) {
		s.Name = text
		s.Step = state.StepSurname
	})
	h.sendMessage(ctx, update.Message.Chat.ID, "Введите вашу фамилию:")
}

func (h *Handlers) handleSurnameStep(ctx context.Context, update *models.Update) {
	telegramID := update.Message.From.ID
	text := update.Message.Text

	h.sessions.Update(telegramID, func(s *state.Session) {
		s.Surname = text
		s.Step = state.StepPhone
	})
	h.sendMessage(ctx, update.Message.Chat.ID, "Введите ваш номер телефона:")
}

func (h *Handlers) handlePhoneStep(ctx context.Context, update *models.Update) {
	telegramID := update.Message.From.ID
	text := update.Message.Text

	h.sessions.Update(telegramID, func(s *state.Session) {
		s.Phone = text
		s.Step = state.StepSource
	})
	h.sendMessage(ctx, update.Message.Chat.ID, "Откуда вы узнали о школе?")
}

func (h *Handlers) handleSourceStep(ctx context.Context, update *models.Update) {
	telegramID := update.Message.From.ID
	text := update.Message.Text

	h.sessions.Update(telegramID, func(s *state.Session) {
		s.Source = text
		s.Step = state.StepPhoto
	})
	h.sendMessage(ctx, update.Message.Chat.ID, "Загрузите ваше фото:")
}

// handleAdminText разбирает текст от администратора: ответ на сообщение —
// это сверка платежа, остальное — шаги диалога создания события
func (h *Handlers) handleAdminText(ctx context.Context, update *models.Update) {
	if update.Message.ReplyToMessage != nil {
		h.handleAdminReply(ctx, update)
		return
	}

	switch h.sessions.Step(h.adminID) {
	case state.StepEventName:
		h.handleEventNameStep(ctx, update)
	case state.StepEventDate:
		h.handleEventDateStep(ctx, update)
	case state.StepEventTime:
		h.handleEventTimeStep(ctx, update)
	case state.StepEventDetails:
		h.handleEventDetailsStep(ctx, update)
	}
}

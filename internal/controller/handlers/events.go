package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/controller/state"
	"github.com/provkin/tgbot/internal/model"
)

// Диалог создания события: название → дата → время → описание.
// Доступен только администратору, запускается кнопкой панели.

func (h *Handlers) handleEventNameStep(ctx context.Context, update *models.Update) {
	text := update.Message.Text

	h.sessions.Update(h.adminID, func(s *state.Session) {
		s.Event.Name = text
		s.Step = state.StepEventDate
	})
	h.sendMessage(ctx, update.Message.Chat.ID, "Введите дату события (например, 12.05.2026):")
}

func (h *Handlers) handleEventDateStep(ctx context.Context, update *models.Update) {
	text := update.Message.Text

	h.sessions.Update(h.adminID, func(s *state.Session) {
		s.Event.Date = text
		s.Step = state.StepEventTime
	})
	h.sendMessage(ctx, update.Message.Chat.ID, "Введите время события:")
}

func (h *Handlers) handleEventTimeStep(ctx context.Context, update *models.Update) {
	text := update.Message.Text

	h.sessions.Update(h.adminID, func(s *state.Session) {
		s.Event.Time = text
		s.Step = state.StepEventDetails
	})
	h.sendMessage(ctx, update.Message.Chat.ID, "Введите описание события:")
}

func (h *Handlers) handleEventDetailsStep(ctx context.Context, update *models.Update) {
	chatID := update.Message.Chat.ID

	sess, ok := h.sessions.Get(h.adminID)
	if !ok {
		return
	}

	event := model.Event{
		Name:    sess.Event.Name,
		Date:    sess.Event.Date,
		Time:    sess.Event.Time,
		Details: update.Message.Text,
	}

	if err := h.events.Create(ctx, event); err != nil {
		h.logger.Error("Failed to create event",
			zap.String("name", event.Name),
			zap.Error(err))
		h.sendError(ctx, chatID, "❌ Не удалось создать событие. Попробуйте позже.")
		return
	}

	h.sessions.Clear(h.adminID)
	h.sendWithMarkup(ctx, chatID, "✅ Событие создано!", AdminKeyboard())
}

// showEvents отправляет список событий из таблицы
func (h *Handlers) showEvents(ctx context.Context, chatID int64) {
	events, err := h.events.List(ctx)
	if err != nil {
		h.logger.Error("Failed to list events", zap.Error(err))
		h.sendError(ctx, chatID, "❌ Ошибка загрузки событий")
		return
	}

	if len(events) == 0 {
		h.sendMessage(ctx, chatID, "На ближайшее время событий нет.")
		return
	}

	items := make([]string, 0, len(events))
	for _, e := range events {
		items = append(items, fmt.Sprintf(
			"📅 %s %s\n🏷 %s\n📝 %s",
			e.Date, e.Time, e.Name, e.Details,
		))
	}
	h.sendMessage(ctx, chatID, strings.Join(items, "\n\n"))
}

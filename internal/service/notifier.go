package service

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Sender — часть API бота, нужная для исходящих уведомлений.
// Сервисы зависят только от этих двух вызовов, не от типа транспорта.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
}

// Notifier отправляет односторонние уведомления администратору и студентам.
// Ошибки отправки логируются и не прерывают вызвавший поток: недоставленное
// уведомление не должно откатывать уже сделанную запись в таблице.
type Notifier struct {
	sender  Sender
	adminID int64
	logger  *zap.Logger
}

// NewNotifier создаёт канал уведомлений
func NewNotifier(sender Sender, adminID int64, logger *zap.Logger) *Notifier {
	return &Notifier{sender: sender, adminID: adminID, logger: logger}
}

// NotifyAdmin отправляет администратору текст, при необходимости с фото.
// Текст, на который администратор может ответить суммой, обязан содержать
// строку "ID: <id>" — её разбирает протокол сверки.
func (n *Notifier) NotifyAdmin(ctx context.Context, text, photoURL string) {
	var err error
	if photoURL != "" {
		_, err = n.sender.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:  n.adminID,
			Photo:   &models.InputFileString{Data: photoURL},
			Caption: text,
		})
	} else {
		_, err = n.sender.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: n.adminID,
			Text:   text,
		})
	}
	if err != nil {
		n.logger.Error("Failed to notify admin",
			zap.Int64("admin_id", n.adminID),
			zap.Error(err))
	}
}

// NotifyUser отправляет сообщение студенту
func (n *Notifier) NotifyUser(ctx context.Context, userID int64, text string, markup models.ReplyMarkup) {
	_, err := n.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      userID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		n.logger.Error("Failed to notify user",
			zap.Int64("user_id", userID),
			zap.Error(err))
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSender записывает исходящие сообщения вместо отправки
type fakeSender struct {
	messages []*bot.SendMessageParams
	photos   []*bot.SendPhotoParams
	sendErr  error
}

func (f *fakeSender) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.messages = append(f.messages, params)
	return &models.Message{}, nil
}

func (f *fakeSender) SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.photos = append(f.photos, params)
	return &models.Message{}, nil
}

func TestNotifyAdminText(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, 100, zap.NewNop())

	n.NotifyAdmin(context.Background(), "💸 Новый платеж\nID: 42", "")

	require.Len(t, sender.messages, 1)
	assert.Equal(t, int64(100), sender.messages[0].ChatID)
	assert.Contains(t, sender.messages[0].Text, "ID: 42")
	assert.Empty(t, sender.photos)
}

func TestNotifyAdminWithPhoto(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, 100, zap.NewNop())

	n.NotifyAdmin(context.Background(), "🎓 Новый студент\nID: 42", "https://disk.example/photo.jpg")

	require.Len(t, sender.photos, 1)
	assert.Equal(t, int64(100), sender.photos[0].ChatID)
	assert.Contains(t, sender.photos[0].Caption, "ID: 42")
}

func TestNotifySwallowsSendErrors(t *testing.T) {
	sender := &fakeSender{sendErr: errors.New("network down")}
	n := NewNotifier(sender, 100, zap.NewNop())

	// Недоставленное уведомление не должно ронять вызвавший поток
	n.NotifyAdmin(context.Background(), "text", "")
	n.NotifyUser(context.Background(), 42, "text", nil)
}

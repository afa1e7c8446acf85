package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/disk/disktest"
	"github.com/provkin/tgbot/internal/model"
	"github.com/provkin/tgbot/internal/repository"
	"github.com/provkin/tgbot/internal/repository/ledger"
)

func newRegistrationService(t *testing.T) (*RegistrationService, *repository.StudentRepository, *fakeSender) {
	t.Helper()
	l := ledger.New(disktest.New(), t.TempDir(), zap.NewNop())
	students := repository.NewStudentRepository(l, zap.NewNop())
	sender := &fakeSender{}
	notifier := NewNotifier(sender, 100, zap.NewNop())
	media := NewMediaService(disktest.New(), t.TempDir(), zap.NewNop())
	svc := NewRegistrationService(students, media, notifier, model.DefaultCatalog(), zap.NewNop())
	return svc, students, sender
}

func TestFinalizeComputesNegativeBalance(t *testing.T) {
	svc, students, _ := newRegistrationService(t)
	ctx := context.Background()

	reg := model.Registration{
		Name:     "Иван",
		Surname:  "Петров",
		Phone:    "+79000000000",
		Source:   "от друга",
		PhotoURL: "https://disk.example/photo.jpg",
		UserID:   42,
	}

	student, err := svc.Finalize(ctx, reg, "basic")
	require.NoError(t, err)
	assert.Equal(t, -72000, student.Balance)

	// Запись попала в таблицу
	got, err := students.GetByUserID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, -72000, got.Balance)
	assert.Equal(t, "basic", got.Course)
	assert.Equal(t, "Иван", got.Name)
}

func TestFinalizeNotifiesAdminWithIdentityToken(t *testing.T) {
	svc, _, sender := newRegistrationService(t)

	reg := model.Registration{Name: "Иван", Surname: "Петров", PhotoURL: "https://disk.example/p.jpg", UserID: 42}
	_, err := svc.Finalize(context.Background(), reg, "intensive")
	require.NoError(t, err)

	// Сообщение уходит с фото; подпись обязана содержать токен сверки
	require.Len(t, sender.photos, 1)
	assert.Contains(t, sender.photos[0].Caption, "ID: 42")
	assert.Contains(t, sender.photos[0].Caption, "-34000")
}

func TestFinalizeUnknownCourse(t *testing.T) {
	svc, students, sender := newRegistrationService(t)

	_, err := svc.Finalize(context.Background(), model.Registration{UserID: 42}, "piano")
	assert.Error(t, err)

	// Таблица не тронута, администратор не уведомлён
	_, err = students.GetByUserID(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrStudentNotFound)
	assert.Empty(t, sender.photos)
	assert.Empty(t, sender.messages)
}

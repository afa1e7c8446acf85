package service

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/model"
	"github.com/provkin/tgbot/internal/repository"
)

// PaymentService принимает скриншоты оплат и применяет решения
// администратора к балансу студента.
type PaymentService struct {
	students *repository.StudentRepository
	media    *MediaService
	notifier *Notifier
	logger   *zap.Logger
}

// NewPaymentService создаёт сервис платежей
func NewPaymentService(
	students *repository.StudentRepository,
	media *MediaService,
	notifier *Notifier,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		students: students,
		media:    media,
		notifier: notifier,
		logger:   logger,
	}
}

// ResolveStudent возвращает запись студента по ключу сверки —
// контекст для сообщения администратору, когда платёж пришёл вне
// диалога регистрации.
func (s *PaymentService) ResolveStudent(ctx context.Context, userID int64) (*model.Student, error) {
	return s.students.GetByUserID(ctx, userID)
}

// SubmitProof сохраняет скриншот оплаты в /Payments и пересылает его
// администратору вместе с текущим балансом. Таблица при этом не меняется:
// баланс изменится только после ответа администратора.
func (s *PaymentService) SubmitProof(ctx context.Context, student model.Student, sourceURL string) error {
	link, err := s.media.StoreImage(ctx, sourceURL, repository.PaymentsFolder, student.Name, student.Surname)
	if err != nil {
		return fmt.Errorf("submit proof: %w", err)
	}

	s.notifier.NotifyAdmin(ctx, fmt.Sprintf(
		"💸 Новый платеж:\nСтудент: %s %s\nКурс: %s\nТекущий баланс: %d руб\nСкриншот: %s\nID: %d",
		student.Name, student.Surname, student.Course, student.Balance, link, student.UserID,
	), "")

	s.logger.Info("Payment proof submitted",
		zap.Int64("user_id", student.UserID))
	return nil
}

// Reconcile применяет решение администратора: прибавляет сумму к балансу
// и уведомляет студента о новом балансе.
func (s *PaymentService) Reconcile(ctx context.Context, req ReconcileRequest, studentMarkup models.ReplyMarkup) (int, error) {
	newBalance, err := s.students.ApplyBalanceDelta(ctx, req.UserID, req.Amount)
	if err != nil {
		return 0, fmt.Errorf("reconcile payment: %w", err)
	}

	s.notifier.NotifyUser(ctx, req.UserID, fmt.Sprintf(
		"✅ Ваш баланс пополнен на %d руб!\nНовый баланс: %d руб",
		req.Amount, newBalance,
	), studentMarkup)

	return newBalance, nil
}

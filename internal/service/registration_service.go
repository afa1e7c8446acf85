package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/model"
	"github.com/provkin/tgbot/internal/repository"
)

// RegistrationService завершает регистрацию студента: считает начальный
// баланс по каталогу курсов, пишет запись в таблицу и уведомляет
// администратора.
type RegistrationService struct {
	students *repository.StudentRepository
	media    *MediaService
	notifier *Notifier
	catalog  model.Catalog
	logger   *zap.Logger
}

// NewRegistrationService создаёт сервис регистрации
func NewRegistrationService(
	students *repository.StudentRepository,
	media *MediaService,
	notifier *Notifier,
	catalog model.Catalog,
	logger *zap.Logger,
) *RegistrationService {
	return &RegistrationService{
		students: students,
		media:    media,
		notifier: notifier,
		catalog:  catalog,
		logger:   logger,
	}
}

// Catalog возвращает каталог курсов — из него строится клавиатура выбора
func (s *RegistrationService) Catalog() model.Catalog {
	return s.catalog
}

// AttachPhoto сохраняет фото студента в /StudentPhotos и возвращает ссылку
func (s *RegistrationService) AttachPhoto(ctx context.Context, sourceURL, name, surname string) (string, error) {
	return s.media.StoreImage(ctx, sourceURL, repository.StudentPhotosFolder, name, surname)
}

// Finalize записывает студента с балансом -цена курса и уведомляет
// администратора. Таблица не меняется, если курс не из каталога.
func (s *RegistrationService) Finalize(ctx context.Context, reg model.Registration, course string) (*model.Student, error) {
	price, ok := s.catalog.Price(course)
	if !ok {
		return nil, fmt.Errorf("unknown course %q", course)
	}

	student := model.Student{
		Name:      reg.Name,
		Surname:   reg.Surname,
		Phone:     reg.Phone,
		Course:    course,
		Balance:   -price,
		UserID:    reg.UserID,
		PhotoLink: reg.PhotoURL,
	}

	if err := s.students.Append(ctx, student); err != nil {
		return nil, fmt.Errorf("finalize registration: %w", err)
	}

	// Токен "ID: ..." обязателен: по нему протокол сверки находит студента,
	// когда администратор отвечает на это сообщение
	s.notifier.NotifyAdmin(ctx, fmt.Sprintf(
		"🎓 Новый студент:\n%s %s\nТелефон: %s\nКурс: %s\nБаланс: %d руб\nID: %d",
		student.Name, student.Surname, student.Phone, student.Course, student.Balance, student.UserID,
	), student.PhotoLink)

	s.logger.Info("Registration finalized",
		zap.Int64("user_id", student.UserID),
		zap.String("course", course))
	return &student, nil
}

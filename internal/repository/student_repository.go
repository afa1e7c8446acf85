package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/model"
	"github.com/provkin/tgbot/internal/repository/ledger"
)

// Колонки таблицы студентов, которые пишет эта система.
// Чужие колонки документа сохраняются как есть.
const (
	colName      = "Name"
	colSurname   = "Surname"
	colPhone     = "Phone"
	colCourse    = "Course"
	colBalance   = "Balance"
	colUserID    = "UserID"
	colPhotoLink = "PhotoLink"
)

var studentColumns = []string{colName, colSurname, colPhone, colCourse, colBalance, colUserID, colPhotoLink}

// ErrStudentNotFound — в таблице нет строки с таким UserID
var ErrStudentNotFound = errors.New("student not found")

// StudentRepository работает с таблицей студентов на диске
type StudentRepository struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

// NewStudentRepository создаёт репозиторий студентов
func NewStudentRepository(l *ledger.Ledger, logger *zap.Logger) *StudentRepository {
	return &StudentRepository{ledger: l, logger: logger}
}

// Append добавляет запись о студенте в конец таблицы
func (r *StudentRepository) Append(ctx context.Context, s model.Student) error {
	row := ledger.Row{
		colName:      s.Name,
		colSurname:   s.Surname,
		colPhone:     s.Phone,
		colCourse:    s.Course,
		colBalance:   strconv.Itoa(s.Balance),
		colUserID:    strconv.FormatInt(s.UserID, 10),
		colPhotoLink: s.PhotoLink,
	}

	if err := r.ledger.AppendRow(ctx, StudentsTable, studentColumns, row); err != nil {
		return fmt.Errorf("append student: %w", err)
	}

	r.logger.Info("Student appended to ledger",
		zap.Int64("user_id", s.UserID),
		zap.String("course", s.Course),
		zap.Int("balance", s.Balance))
	return nil
}

// ApplyBalanceDelta прибавляет delta к балансу строки с данным UserID
// и возвращает новый баланс. Трогается ровно одна строка; остальные
// колонки и порядок строк не меняются.
func (r *StudentRepository) ApplyBalanceDelta(ctx context.Context, userID int64, delta int) (int, error) {
	var newBalance int

	err := r.ledger.Mutate(ctx, StudentsTable, func(t *ledger.Table) error {
		key := strconv.FormatInt(userID, 10)
		for _, row := range t.Rows {
			if row[colUserID] != key {
				continue
			}
			balance, err := strconv.Atoi(row[colBalance])
			if err != nil {
				return fmt.Errorf("balance of user %d unreadable: %w", userID, err)
			}
			newBalance = balance + delta
			row[colBalance] = strconv.Itoa(newBalance)
			return nil
		}
		return ErrStudentNotFound
	})
	if err != nil {
		return 0, err
	}

	r.logger.Info("Balance updated",
		zap.Int64("user_id", userID),
		zap.Int("delta", delta),
		zap.Int("balance", newBalance))
	return newBalance, nil
}

// GetByUserID находит студента по ключу сверки
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*model.Student, error) {
	table, err := r.ledger.Read(ctx, StudentsTable)
	if err != nil {
		return nil, fmt.Errorf("read students: %w", err)
	}

	key := strconv.FormatInt(userID, 10)
	for _, row := range table.Rows {
		if row[colUserID] != key {
			continue
		}
		balance, _ := strconv.Atoi(row[colBalance])
		return &model.Student{
			Name:      row[colName],
			Surname:   row[colSurname],
			Phone:     row[colPhone],
			Course:    row[colCourse],
			Balance:   balance,
			UserID:    userID,
			PhotoLink: row[colPhotoLink],
		}, nil
	}
	return nil, ErrStudentNotFound
}

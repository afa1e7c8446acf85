package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/disk/disktest"
	"github.com/provkin/tgbot/internal/model"
	"github.com/provkin/tgbot/internal/repository/ledger"
)

func newStudentRepo(t *testing.T) *StudentRepository {
	t.Helper()
	l := ledger.New(disktest.New(), t.TempDir(), zap.NewNop())
	return NewStudentRepository(l, zap.NewNop())
}

func TestAppendAndGetStudent(t *testing.T) {
	repo := newStudentRepo(t)
	ctx := context.Background()

	student := model.Student{
		Name:      "Иван",
		Surname:   "Петров",
		Phone:     "+7 900 000-00-00",
		Course:    "basic",
		Balance:   -72000,
		UserID:    42,
		PhotoLink: "https://disk.example/StudentPhotos/x.jpg",
	}
	require.NoError(t, repo.Append(ctx, student))

	got, err := repo.GetByUserID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, &student, got)
}

func TestGetStudentNotFound(t *testing.T) {
	repo := newStudentRepo(t)

	_, err := repo.GetByUserID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestApplyBalanceDelta(t *testing.T) {
	repo := newStudentRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, model.Student{
		Name: "Иван", Course: "intensive", Balance: -34000, UserID: 42,
	}))
	require.NoError(t, repo.Append(ctx, model.Student{
		Name: "Мария", Course: "basic", Balance: -72000, UserID: 43,
	}))

	newBalance, err := repo.ApplyBalanceDelta(ctx, 42, 5000)
	require.NoError(t, err)
	assert.Equal(t, -29000, newBalance)

	// Изменилась ровно одна строка
	first, err := repo.GetByUserID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, -29000, first.Balance)

	second, err := repo.GetByUserID(ctx, 43)
	require.NoError(t, err)
	assert.Equal(t, -72000, second.Balance)
}

func TestApplyBalanceDeltaUnknownStudent(t *testing.T) {
	repo := newStudentRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, model.Student{Name: "Иван", UserID: 42, Balance: -100}))

	_, err := repo.ApplyBalanceDelta(ctx, 99, 5000)
	assert.ErrorIs(t, err, ErrStudentNotFound)

	// Таблица не изменилась
	got, err := repo.GetByUserID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, -100, got.Balance)
}

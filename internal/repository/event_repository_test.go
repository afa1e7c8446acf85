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

func TestEventAppendAndList(t *testing.T) {
	l := ledger.New(disktest.New(), t.TempDir(), zap.NewNop())
	repo := NewEventRepository(l, zap.NewNop())
	ctx := context.Background()

	first := model.Event{Name: "Открытый урок", Date: "12.05.2026", Time: "18:00", Details: "Для всех курсов"}
	second := model.Event{Name: "Отчётный концерт", Date: "01.06.2026", Time: "19:30", Details: "Большой зал"}

	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Event{first, second}, events)
}

func TestEventListEmptyTable(t *testing.T) {
	l := ledger.New(disktest.New(), t.TempDir(), zap.NewNop())
	repo := NewEventRepository(l, zap.NewNop())

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/model"
	"github.com/provkin/tgbot/internal/repository/ledger"
)

const (
	colEventName    = "Name"
	colEventDate    = "Date"
	colEventTime    = "Time"
	colEventDetails = "Details"
)

var eventColumns = []string{colEventName, colEventDate, colEventTime, colEventDetails}

// EventRepository работает с таблицей событий на диске
type EventRepository struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

// NewEventRepository создаёт репозиторий событий
func NewEventRepository(l *ledger.Ledger, logger *zap.Logger) *EventRepository {
	return &EventRepository{ledger: l, logger: logger}
}

// Append добавляет событие в конец таблицы
func (r *EventRepository) Append(ctx context.Context, e model.Event) error {
	row := ledger.Row{
		colEventName:    e.Name,
		colEventDate:    e.Date,
		colEventTime:    e.Time,
		colEventDetails: e.Details,
	}

	if err := r.ledger.AppendRow(ctx, EventsTable, eventColumns, row); err != nil {
		return fmt.Errorf("append event: %w", err)
	}

	r.logger.Info("Event appended to ledger", zap.String("name", e.Name))
	return nil
}

// List возвращает все события в порядке добавления
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	table, err := r.ledger.Read(ctx, EventsTable)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}

	events := make([]model.Event, 0, len(table.Rows))
	for _, row := range table.Rows {
		events = append(events, model.Event{
			Name:    row[colEventName],
			Date:    row[colEventDate],
			Time:    row[colEventTime],
			Details: row[colEventDetails],
		})
	}
	return events, nil
}

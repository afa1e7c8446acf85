package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/model"
	"github.com/provkin/tgbot/internal/repository"
)

// EventService ведёт таблицу событий школы
type EventService struct {
	events *repository.EventRepository
	logger *zap.Logger
}

// NewEventService создаёт сервис событий
func NewEventService(events *repository.EventRepository, logger *zap.Logger) *EventService {
	return &EventService{events: events, logger: logger}
}

// Create добавляет событие, созданное администратором
func (s *EventService) Create(ctx context.Context, e model.Event) error {
	if err := s.events.Append(ctx, e); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	s.logger.Info("Event created", zap.String("name", e.Name))
	return nil
}

// List возвращает все события
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.events.List(ctx)
}
